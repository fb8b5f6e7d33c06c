package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/laundryexpress/pro/internal/domain"
)

// lessByQueueRank orders the active queue the way the shop works it off:
// orders further along the pipeline finish first (status descending),
// then more urgent priority, then lower id.
func lessByQueueRank(a, b domain.Order) bool {
	if a.Status != b.Status {
		return a.Status > b.Status
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.OrderID < b.OrderID
}

// EstimateWait sums the remaining minutes of every active order ahead of
// the target in queue rank, plus the target's own remaining time.
func (s *LaundryService) EstimateWait(ctx context.Context, orderID uint64) (domain.WaitEstimate, error) {
	if est, ok := s.estimates.Get(orderID); ok {
		return est, nil
	}

	target, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return domain.WaitEstimate{}, fmt.Errorf("repo.GetByID: %w", err)
	}
	if target.Status.IsTerminal() {
		return domain.WaitEstimate{}, fmt.Errorf("estimate: %w",
			domain.AlreadyFinishedError(orderID, target.GetStatusString()))
	}

	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return domain.WaitEstimate{}, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	queue := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsActive() {
			queue = append(queue, o)
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return lessByQueueRank(queue[i], queue[j])
	})

	est := domain.WaitEstimate{OrderID: orderID}
	for _, o := range queue {
		est.Minutes += domain.RemainingMinutes(o.Status, o.Service)
		if o.OrderID == orderID {
			break
		}
		est.QueueAhead = append(est.QueueAhead, o)
	}

	s.estimates.Set(orderID, est)
	return est, nil
}
