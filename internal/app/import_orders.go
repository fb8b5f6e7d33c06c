package app

import (
	"context"
	"fmt"

	"github.com/laundryexpress/pro/internal/domain"
	"go.uber.org/multierr"
)

// ImportOrders routes a batch through CreateOrder row by row, so every
// imported order gets the same validation, pricing and id assignment as
// a manual intake. Failed rows are collected, not fatal.
func (s *LaundryService) ImportOrders(ctx context.Context, rows []domain.OrderToImport) (uint64, error) {
	var importedCount uint64
	var combinedErr error

	for i, row := range rows {
		garment, err := domain.ParseGarmentType(row.Garment)
		if err != nil {
			combinedErr = multierr.Append(combinedErr, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		service, err := domain.ParseServiceTier(row.Service)
		if err != nil {
			combinedErr = multierr.Append(combinedErr, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}

		req := domain.CreateOrderRequest{
			CustomerName: row.CustomerName,
			Weight:       row.Weight,
			Garment:      garment,
			Service:      service,
			Priority:     row.Priority,
		}
		if _, err := s.CreateOrder(ctx, req); err != nil {
			combinedErr = multierr.Append(combinedErr, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		importedCount++
	}
	return importedCount, combinedErr
}
