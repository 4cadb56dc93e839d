package discount

import "github.com/enderpawar/membercore/internal/core/domain"

// Policy computes the discount for a member on a given subtotal.
// Which implementation is live is decided at wiring time, not here.
type Policy interface {
	Discount(member domain.Member, subtotal int64) int64
}

// FixedPolicy grants a flat amount to VIP members, capped at the subtotal.
type FixedPolicy struct {
	Amount int64
}

func NewFixedPolicy(amount int64) *FixedPolicy {
	return &FixedPolicy{Amount: amount}
}

func (p *FixedPolicy) Discount(member domain.Member, subtotal int64) int64 {
	if member.Grade != domain.GradeVIP {
		return 0
	}
	if p.Amount > subtotal {
		return subtotal
	}
	return p.Amount
}

// RatePolicy grants a percentage of the subtotal to VIP members.
type RatePolicy struct {
	Percent int64 // 0..100
}

func NewRatePolicy(percent int64) *RatePolicy {
	return &RatePolicy{Percent: percent}
}

func (p *RatePolicy) Discount(member domain.Member, subtotal int64) int64 {
	if member.Grade != domain.GradeVIP {
		return 0
	}
	return subtotal * p.Percent / 100
}
