package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/enderpawar/membercore/internal/core/domain"
	"github.com/enderpawar/membercore/internal/core/service"
	"github.com/enderpawar/membercore/internal/port"
)

type HTTPHandler struct {
	memberService *service.MemberService
	orderService  *service.OrderService
}

func NewHTTPHandler(memberService *service.MemberService, orderService *service.OrderService) *HTTPHandler {
	return &HTTPHandler{
		memberService: memberService,
		orderService:  orderService,
	}
}

// Register wires all routes onto the mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("POST /api/members", h.JoinMember)
	mux.HandleFunc("GET /api/members/{id}", h.GetMember)
	mux.HandleFunc("GET /api/members/{id}/orders", h.ListMemberOrders)
	mux.HandleFunc("POST /api/orders", h.CreateOrder)
	mux.HandleFunc("GET /api/orders/{id}", h.GetOrder)
	mux.HandleFunc("POST /api/orders/{id}/cancel", h.CancelOrder)
}

type JoinMemberRequest struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateOrderRequest struct {
	RequestID string `json:"request_id"`
	MemberID  string `json:"member_id"`
	ItemName  string `json:"item_name"`
	ItemPrice int64  `json:"item_price"`
	Quantity  int    `json:"quantity"`
}

type OrderResponse struct {
	ID             string    `json:"id"`
	MemberID       string    `json:"member_id"`
	ItemName       string    `json:"item_name"`
	ItemPrice      int64     `json:"item_price"`
	Quantity       int       `json:"quantity"`
	DiscountAmount int64     `json:"discount_amount"`
	PaidPrice      int64     `json:"paid_price"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func (h *HTTPHandler) JoinMember(w http.ResponseWriter, r *http.Request) {
	var req JoinMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	grade, err := domain.ParseGrade(req.Grade)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.memberService.Join(r.Context(), req.Name, grade)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMemberResponse(member))
}

func (h *HTTPHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, port.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(member))
}

func (h *HTTPHandler) ListMemberOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListByMember(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), req.RequestID, req.MemberID, req.ItemName, req.ItemPrice, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrder):
			writeError(w, http.StatusBadRequest, "missing or invalid fields")
		case errors.Is(err, service.ErrDuplicateRequest):
			writeError(w, http.StatusConflict, "duplicate request")
		case errors.Is(err, port.ErrMemberNotFound):
			writeError(w, http.StatusNotFound, "member not found")
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusAccepted, toOrderResponse(order))
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, port.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Cancel(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, port.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toMemberResponse(member domain.Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Grade:     string(member.Grade),
		CreatedAt: member.CreatedAt,
	}
}

func toOrderResponse(order domain.Order) OrderResponse {
	return OrderResponse{
		ID:             order.ID,
		MemberID:       order.MemberID,
		ItemName:       order.ItemName,
		ItemPrice:      order.ItemPrice,
		Quantity:       order.Quantity,
		DiscountAmount: order.DiscountAmount,
		PaidPrice:      order.PaidPrice(),
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}
