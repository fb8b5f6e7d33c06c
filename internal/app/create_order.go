package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/laundryexpress/pro/internal/domain"
)

// CreateOrder is the only way an order enters the store. Price and
// discount flag are fixed here and never recomputed afterwards.
func (s *LaundryService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := req.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("validation: %w", err)
	}

	existing, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	// Prior orders of the same customer, counted before this one is
	// added. Exact name match, case-insensitive.
	priorOrders := 0
	for _, o := range existing {
		if strings.EqualFold(o.CustomerName, req.CustomerName) {
			priorOrders++
		}
	}

	price, discounted := s.tariff.Price(req.Weight, req.Garment, req.Service, priorOrders)

	order := domain.Order{
		CustomerName: req.CustomerName,
		Weight:       req.Weight,
		Garment:      req.Garment,
		Service:      req.Service,
		Priority:     req.Priority,
		Status:       domain.StatusWaiting,
		FinalPrice:   price,
		IsDiscounted: discounted,
		EntryTime:    s.nowFn(),
	}

	created, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.Create: %w", err)
	}

	s.invalidateEstimates()
	return created, nil
}
