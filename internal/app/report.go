package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/laundryexpress/pro/internal/domain"
)

// BuildReport folds the whole store into the daily business report.
// Cancelled orders are excluded everywhere except the customer ranking,
// and a store with nothing but cancelled orders has no report to give.
func (s *LaundryService) BuildReport(ctx context.Context) (domain.Report, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("repo.GetAllOrders: %w", err)
	}

	var totalWeight float64
	var validCount int
	report := domain.Report{}
	serviceCounts := make(map[domain.ServiceTier]int)

	customerCounts := make(map[string]int)
	var customerOrder []string

	for _, o := range orders {
		if _, seen := customerCounts[o.CustomerName]; !seen {
			customerOrder = append(customerOrder, o.CustomerName)
		}
		customerCounts[o.CustomerName]++

		if o.Status == domain.StatusCancelled {
			continue
		}

		report.TotalRevenue += o.FinalPrice
		totalWeight += o.Weight
		serviceCounts[o.Service]++
		validCount++

		if o.Status < domain.StatusDone {
			report.ActiveCount++
		}
	}

	if validCount == 0 {
		return domain.Report{}, fmt.Errorf("report: %w",
			domain.InsufficientDataError("not enough data to build a report"))
	}

	report.AverageWeight = totalWeight / float64(validCount)

	// First-seen max: ties resolve to the lowest-numbered tier.
	report.MostPopularService = domain.ServiceNormal
	maxCount := 0
	for _, tier := range []domain.ServiceTier{domain.ServiceNormal, domain.ServiceFast, domain.ServiceExpress} {
		if serviceCounts[tier] > maxCount {
			maxCount = serviceCounts[tier]
			report.MostPopularService = tier
		}
	}

	ranked := make([]domain.CustomerCount, 0, len(customerOrder))
	for _, name := range customerOrder {
		ranked = append(ranked, domain.CustomerCount{Name: name, Orders: customerCounts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Orders > ranked[j].Orders
	})
	if len(ranked) > s.cfg.TopCustomers {
		ranked = ranked[:s.cfg.TopCustomers]
	}
	report.TopCustomers = ranked

	return report, nil
}
