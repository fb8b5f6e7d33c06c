package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/laundryexpress/pro/internal/domain"
)

func (s *LaundryService) GetOrderByID(ctx context.Context, orderID uint64) (domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("repo.GetByID: %w", err)
	}
	return order, nil
}

// SearchByName matches customer names by case-insensitive substring,
// returning hits in insertion order.
func (s *LaundryService) SearchByName(ctx context.Context, text string) ([]domain.Order, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	key := strings.ToLower(text)
	var matched []domain.Order
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.CustomerName), key) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// OrdersByStatus groups the ids of orders in the given status by
// customer name, names in lexical order.
func (s *LaundryService) OrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.CustomerGroup, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("validation: %w", domain.ValidationFailedError("unknown status"))
	}

	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	grouped := make(map[string][]uint64)
	for _, o := range orders {
		if o.Status == status {
			grouped[o.CustomerName] = append(grouped[o.CustomerName], o.OrderID)
		}
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]domain.CustomerGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, domain.CustomerGroup{Name: name, OrderIDs: grouped[name]})
	}
	return groups, nil
}

// CustomerSummary lists every order whose customer name contains the
// given text and totals the money they spent.
func (s *LaundryService) CustomerSummary(ctx context.Context, name string) (domain.CustomerSummary, error) {
	matched, err := s.SearchByName(ctx, name)
	if err != nil {
		return domain.CustomerSummary{}, err
	}
	if len(matched) == 0 {
		return domain.CustomerSummary{}, fmt.Errorf("search: %w", domain.EntityNotFoundError("Customer", name))
	}

	summary := domain.CustomerSummary{Name: name, Orders: matched}
	for _, o := range matched {
		summary.TotalSpending += o.FinalPrice
	}
	return summary, nil
}
