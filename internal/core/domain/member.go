package domain

import (
	"fmt"
	"time"
)

type Grade string

const (
	GradeBasic Grade = "basic"
	GradeVIP   Grade = "vip"
)

// ParseGrade maps external input to a Grade, rejecting anything unknown.
func ParseGrade(s string) (Grade, error) {
	switch Grade(s) {
	case GradeBasic, GradeVIP:
		return Grade(s), nil
	}
	return "", fmt.Errorf("unknown grade %q", s)
}

// Member is immutable after construction; fields are set once.
type Member struct {
	ID        string
	Name      string
	Grade     Grade
	CreatedAt time.Time
}
