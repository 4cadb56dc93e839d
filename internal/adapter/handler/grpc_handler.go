package handler

import (
	"context"
	"errors"

	"github.com/enderpawar/membercore/internal/adapter/handler/pb"
	"github.com/enderpawar/membercore/internal/core/service"
	"github.com/enderpawar/membercore/internal/port"
)

type GRPCHandler struct {
	pb.UnimplementedOrderServiceServer
	orderService *service.OrderService
}

func NewGRPCHandler(orderService *service.OrderService) *GRPCHandler {
	return &GRPCHandler{orderService: orderService}
}

func (h *GRPCHandler) CreateOrder(ctx context.Context, req *pb.CreateOrderRequest) (*pb.CreateOrderResponse, error) {
	order, err := h.orderService.Create(ctx, req.GetRequestId(), req.GetMemberId(), req.GetItemName(), req.GetItemPrice(), int(req.GetQuantity()))
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			return &pb.CreateOrderResponse{
				Success: false,
				Message: "missing or invalid fields",
			}, nil
		}
		if errors.Is(err, service.ErrDuplicateRequest) {
			return &pb.CreateOrderResponse{
				Success: false,
				Message: "duplicate request",
			}, nil
		}
		if errors.Is(err, port.ErrMemberNotFound) {
			return &pb.CreateOrderResponse{
				Success: false,
				Message: "member not found",
			}, nil
		}
		return &pb.CreateOrderResponse{
			Success: false,
			Message: "internal error",
		}, nil
	}

	return &pb.CreateOrderResponse{
		Success:   true,
		Message:   "order placed successfully",
		OrderId:   order.ID,
		PaidPrice: order.PaidPrice(),
	}, nil
}
