package repository

import (
	"context"
	"sync"
	"time"

	"github.com/gnomesuite/petstore-api/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, error)
	Delete(ctx context.Context, id int64) error
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []model.Order
}

func NewOrderRepository() OrderRepository {
	return &memOrderRepo{}
}

func (r *memOrderRepo) Create(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = nextID(len(r.orders), func(i int) int64 { return r.orders[i].ID })
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = nil
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id int64) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) List(_ context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		filtered = append(filtered, o)
	}
	return paginate(filtered, limit, offset), nil
}

func (r *memOrderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
