package app

import (
	"context"
	"fmt"

	"github.com/laundryexpress/pro/internal/domain"
)

// StatusBoard groups order ids by pipeline stage, ids in insertion
// order. Derived on demand, so there is no cap on orders per stage.
func (s *LaundryService) StatusBoard(ctx context.Context) ([]domain.StatusGroup, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	groups := make([]domain.StatusGroup, domain.StatusCancelled+1)
	for st := domain.StatusWaiting; st <= domain.StatusCancelled; st++ {
		groups[st].Status = st
	}
	for _, o := range orders {
		groups[o.Status].OrderIDs = append(groups[o.Status].OrderIDs, o.OrderID)
	}
	return groups, nil
}

func (s *LaundryService) Overview(ctx context.Context) (domain.Overview, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return domain.Overview{}, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	ov := domain.Overview{Total: len(orders)}
	for _, o := range orders {
		switch {
		case o.Status == domain.StatusDone:
			ov.Completed++
		case o.Status == domain.StatusCancelled:
			ov.Cancelled++
		default:
			ov.Active++
		}
	}
	return ov, nil
}
