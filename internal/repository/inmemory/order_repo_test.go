package inmemory

import (
	"context"
	"errors"
	"testing"

	"github.com/laundryexpress/pro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Create_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	first, err := repo.Create(ctx, domain.Order{CustomerName: "Budi"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, domain.Order{CustomerName: "Sari"})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.OrderID)
	assert.Equal(t, uint64(2), second.OrderID)
}

func Test_GetAllOrders_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	names := []string{"Tono", "Budi", "Sari", "Agus"}
	for _, name := range names {
		_, err := repo.Create(ctx, domain.Order{CustomerName: name})
		require.NoError(t, err)
	}

	orders, err := repo.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, len(names))
	for i, o := range orders {
		assert.Equal(t, names[i], o.CustomerName)
		assert.Equal(t, uint64(i+1), o.OrderID)
	}

	// The snapshot is a copy: mutating it must not touch the store.
	orders[0].CustomerName = "changed"
	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tono", stored.CustomerName)
}

func Test_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	created, err := repo.Create(ctx, domain.Order{CustomerName: "Budi", Status: domain.StatusWaiting})
	require.NoError(t, err)

	created.Status = domain.StatusWashing
	require.NoError(t, repo.Update(ctx, created))

	stored, err := repo.GetByID(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWashing, stored.Status)

	err = repo.Update(ctx, domain.Order{OrderID: 42})
	var domainErr domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrorCodeNotFound, domainErr.Code)
}

func Test_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	_, err := repo.GetByID(ctx, 7)
	var domainErr domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrorCodeNotFound, domainErr.Code)
}

func Test_Reset_RewindsIDCounter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewInMemoryOrderRepository()

	_, err := repo.Create(ctx, domain.Order{CustomerName: "Budi"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Order{CustomerName: "Sari"})
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx))

	orders, err := repo.GetAllOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	created, err := repo.Create(ctx, domain.Order{CustomerName: "Tono"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.OrderID)
}
