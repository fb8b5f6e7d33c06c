package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/laundryexpress/pro/internal/domain"
)

const (
	MethodPriority   = "priority"
	MethodEfficiency = "efficiency"
	MethodGarment    = "garment"
)

// SuggestProcessingOrder proposes in which sequence to load the machines
// with the orders still waiting. Sorting is stable, so ties stay in
// insertion order; the store itself is never reordered.
func (s *LaundryService) SuggestProcessingOrder(ctx context.Context, method string) ([]domain.Order, error) {
	var less func(a, b domain.Order) bool
	switch method {
	case MethodPriority:
		less = func(a, b domain.Order) bool { return a.Priority < b.Priority }
	case MethodEfficiency:
		less = func(a, b domain.Order) bool { return a.Weight > b.Weight }
	case MethodGarment:
		less = func(a, b domain.Order) bool { return a.Garment < b.Garment }
	default:
		return nil, fmt.Errorf("validation: %w",
			domain.ValidationFailedError(fmt.Sprintf("unknown method %q (expected %s, %s or %s)",
				method, MethodPriority, MethodEfficiency, MethodGarment)))
	}

	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	var waiting []domain.Order
	for _, o := range orders {
		if o.Status == domain.StatusWaiting {
			waiting = append(waiting, o)
		}
	}

	sort.SliceStable(waiting, func(i, j int) bool {
		return less(waiting[i], waiting[j])
	})
	return waiting, nil
}
