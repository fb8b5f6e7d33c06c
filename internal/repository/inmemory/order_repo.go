package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/laundryexpress/pro/internal/domain"
)

// InMemoryOrderRepository is the only store in this design: a slice in
// insertion order plus an id index. The slice is never reordered, so
// GetAllOrders preserves creation order. IDs are handed out sequentially
// starting at 1 and are never reused; Reset rewinds the counter.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[uint64]int
	nextID uint64
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		byID:   make(map[uint64]int),
		nextID: 1,
	}
}

func (r *InMemoryOrderRepository) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.OrderID = r.nextID
	r.nextID++
	r.byID[order.OrderID] = len(r.orders)
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *InMemoryOrderRepository) GetByID(_ context.Context, orderID uint64) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.byID[orderID]
	if !exists {
		return domain.Order{}, fmt.Errorf("get: %w", domain.EntityNotFoundError("Order", fmt.Sprintf("%d", orderID)))
	}
	return r.orders[idx], nil
}

func (r *InMemoryOrderRepository) Update(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.byID[order.OrderID]
	if !exists {
		return fmt.Errorf("update: %w", domain.EntityNotFoundError("Order", fmt.Sprintf("%d", order.OrderID)))
	}
	r.orders[idx] = order
	return nil
}

func (r *InMemoryOrderRepository) GetAllOrders(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

func (r *InMemoryOrderRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = nil
	r.byID = make(map[uint64]int)
	r.nextID = 1
	return nil
}
