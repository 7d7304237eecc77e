package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnomesuite/petstore-api/internal/dto"
	"github.com/gnomesuite/petstore-api/internal/model"
	"github.com/gnomesuite/petstore-api/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	// Referential misses at order creation. Distinct from ErrPetNotFound /
	// ErrUserNotFound so handlers can answer 400 instead of 404.
	ErrOrderPetMissing  = errors.New("ordered pet does not exist")
	ErrOrderUserMissing = errors.New("ordering user does not exist")
)

type OrderService struct {
	orderRepo repository.OrderRepository
	petRepo   repository.PetRepository
	userRepo  repository.UserRepository
}

func NewOrderService(orderRepo repository.OrderRepository, petRepo repository.PetRepository, userRepo repository.UserRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, petRepo: petRepo, userRepo: userRepo}
}

// Create validates that the referenced pet and user exist right now; the
// check is one-shot, deleting either afterwards leaves the order in place.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	pet, err := s.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("check pet: %w", err)
	}
	if pet == nil {
		return nil, ErrOrderPetMissing
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user == nil {
		return nil, ErrOrderUserMissing
	}

	order := &model.Order{
		PetID:    req.PetID,
		UserID:   req.UserID,
		Quantity: req.Quantity,
		ShipDate: req.ShipDate,
		Status:   req.Status,
		Complete: req.Complete,
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPlaced
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) List(ctx context.Context, req dto.ListOrdersRequest) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.List(ctx, req.Status, req.Limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i]))
	}
	return items, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func toOrderResponse(o *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        o.ID,
		PetID:     o.PetID,
		UserID:    o.UserID,
		Quantity:  o.Quantity,
		ShipDate:  o.ShipDate,
		Status:    o.Status,
		Complete:  o.Complete,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
