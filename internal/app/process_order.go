package app

import (
	"context"
	"fmt"

	"github.com/laundryexpress/pro/internal/domain"
	"go.uber.org/multierr"
)

const (
	ActionAdvance = "advance"
	ActionCancel  = "cancel"
)

// AdvanceOrder moves an order one stage forward. Rejections leave the
// stored order untouched: the transition runs on a copy and is only
// written back when it succeeded.
func (s *LaundryService) AdvanceOrder(ctx context.Context, orderID uint64) (domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	if err := order.AdvanceStatus(); err != nil {
		return domain.Order{}, fmt.Errorf("transition: %w", err)
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("repo.Update: %w", err)
	}

	s.invalidateEstimates()
	return order, nil
}

func (s *LaundryService) CancelOrder(ctx context.Context, orderID uint64) (domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.GetByID: %w", err)
	}

	if err := order.CancelOrder(); err != nil {
		return domain.Order{}, fmt.Errorf("transition: %w", err)
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("repo.Update: %w", err)
	}

	s.invalidateEstimates()
	return order, nil
}

// ProcessOrders applies the same action to a batch of orders, collecting
// per-order failures instead of stopping at the first one.
func (s *LaundryService) ProcessOrders(ctx context.Context, action string, orderIDs []uint64) error {
	if action != ActionAdvance && action != ActionCancel {
		return fmt.Errorf("validation: %w",
			domain.ValidationFailedError(fmt.Sprintf("unknown action %q (expected %s or %s)", action, ActionAdvance, ActionCancel)))
	}

	var combinedErr error
	for _, orderID := range orderIDs {
		var err error
		if action == ActionAdvance {
			_, err = s.AdvanceOrder(ctx, orderID)
		} else {
			_, err = s.CancelOrder(ctx, orderID)
		}
		if err != nil {
			combinedErr = multierr.Append(combinedErr, fmt.Errorf("order %d: %w", orderID, err))
		}
	}
	return combinedErr
}
