package app

import (
	"context"
	"time"

	"github.com/laundryexpress/pro/internal/domain"
	"github.com/laundryexpress/pro/pkg/cache"
)

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, orderID uint64) (domain.Order, error)
	Update(ctx context.Context, order domain.Order) error
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	Reset(ctx context.Context) error
}

type Config struct {
	TopCustomers  int
	EstimateCache cache.Config
}

func (c Config) withDefaults() Config {
	if c.TopCustomers <= 0 {
		c.TopCustomers = 5
	}
	return c
}

type LaundryService struct {
	orderRepo OrderRepository
	tariff    domain.Tariff
	cfg       Config
	// estimates depend on the whole active queue, so any store mutation
	// flushes the cache wholesale.
	estimates *cache.LRUCache[uint64, domain.WaitEstimate]
	nowFn     func() time.Time
}

func NewLaundryService(orderRepo OrderRepository, tariff domain.Tariff, cfg Config) *LaundryService {
	cfg = cfg.withDefaults()
	return &LaundryService{
		orderRepo: orderRepo,
		tariff:    tariff,
		cfg:       cfg,
		estimates: cache.New[uint64, domain.WaitEstimate](cfg.EstimateCache),
		nowFn:     time.Now,
	}
}

func (s *LaundryService) invalidateEstimates() {
	s.estimates.Clear()
}
