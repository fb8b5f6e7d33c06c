package app

import (
	"context"
	"fmt"
)

// ResetAll drops every order and rewinds the id counter to 1.
func (s *LaundryService) ResetAll(ctx context.Context) error {
	if err := s.orderRepo.Reset(ctx); err != nil {
		return fmt.Errorf("repo.Reset: %w", err)
	}
	s.invalidateEstimates()
	return nil
}
