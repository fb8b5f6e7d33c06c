package app

import (
	"context"
	"testing"
	"time"

	"github.com/laundryexpress/pro/internal/domain"
	"github.com/laundryexpress/pro/internal/repository/inmemory"
	"github.com/laundryexpress/pro/pkg/cache"
	"github.com/stretchr/testify/require"
)

var (
	someConstTime = time.Date(2025, time.June, 28, 3, 26, 0, 0, time.UTC)
	contextBack   = context.Background()
)

func NewEnv(t *testing.T) (*inmemory.InMemoryOrderRepository, *LaundryService) {
	t.Helper()
	repo := inmemory.NewInMemoryOrderRepository()
	svc := &LaundryService{
		orderRepo: repo,
		tariff:    domain.DefaultTariff(),
		cfg:       Config{}.withDefaults(),
		estimates: cache.New[uint64, domain.WaitEstimate](cache.Config{}),
		nowFn:     func() time.Time { return someConstTime },
	}
	return repo, svc
}

func Intake(name string, weight float64, priority int, service domain.ServiceTier) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		CustomerName: name,
		Weight:       weight,
		Garment:      domain.GarmentShirt,
		Service:      service,
		Priority:     priority,
	}
}

func MustCreate(t *testing.T, svc *LaundryService, req domain.CreateOrderRequest) domain.Order {
	t.Helper()
	order, err := svc.CreateOrder(contextBack, req)
	require.NoError(t, err)
	return order
}

// AdvanceTo walks an order forward until it sits in the wanted status.
func AdvanceTo(t *testing.T, svc *LaundryService, orderID uint64, status domain.OrderStatus) {
	t.Helper()
	for {
		order, err := svc.GetOrderByID(contextBack, orderID)
		require.NoError(t, err)
		if order.Status == status {
			return
		}
		require.True(t, order.Status < status, "order %d already past %v", orderID, status)
		_, err = svc.AdvanceOrder(contextBack, orderID)
		require.NoError(t, err)
	}
}

func IdsOf(orders []domain.Order) (ids []uint64) {
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	return
}
