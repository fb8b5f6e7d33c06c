package app

import (
	"errors"
	"testing"

	"github.com/laundryexpress/pro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetOrderByID(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)
	created := MustCreate(t, svc, Intake("Budi", 1.0, 3, domain.ServiceNormal))

	found, err := svc.GetOrderByID(contextBack, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	var domainErr domain.Error
	_, err = svc.GetOrderByID(contextBack, 99)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrorCodeNotFound, domainErr.Code)
}

func Test_SearchByName_Substring(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	MustCreate(t, svc, Intake("Budi Santoso", 1.0, 3, domain.ServiceNormal))
	MustCreate(t, svc, Intake("Sari", 1.0, 3, domain.ServiceNormal))
	MustCreate(t, svc, Intake("BUDIMAN", 1.0, 3, domain.ServiceNormal))

	tests := []struct {
		name    string
		query   string
		wantIDs []uint64
	}{
		{"CaseInsensitive", "budi", []uint64{1, 3}},
		{"MiddleOfName", "anto", []uint64{1}},
		{"NoMatch", "joko", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := svc.SearchByName(contextBack, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, IdsOf(orders))
		})
	}
}

func Test_OrdersByStatus_GroupsByCustomer(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	MustCreate(t, svc, Intake("Tono", 1.0, 3, domain.ServiceNormal))
	MustCreate(t, svc, Intake("Budi", 1.0, 3, domain.ServiceNormal))
	MustCreate(t, svc, Intake("Budi", 2.0, 3, domain.ServiceNormal))
	washing := MustCreate(t, svc, Intake("Budi", 3.0, 3, domain.ServiceNormal))
	AdvanceTo(t, svc, washing.OrderID, domain.StatusWashing)

	groups, err := svc.OrdersByStatus(contextBack, domain.StatusWaiting)
	require.NoError(t, err)
	assert.Equal(t, []domain.CustomerGroup{
		{Name: "Budi", OrderIDs: []uint64{2, 3}},
		{Name: "Tono", OrderIDs: []uint64{1}},
	}, groups)

	groups, err = svc.OrdersByStatus(contextBack, domain.StatusDrying)
	require.NoError(t, err)
	assert.Empty(t, groups)

	_, err = svc.OrdersByStatus(contextBack, domain.OrderStatus(9))
	var domainErr domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrorCodeValidationFailed, domainErr.Code)
}

func Test_CustomerSummary(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	first := MustCreate(t, svc, Intake("Budi", 1.0, 3, domain.ServiceNormal))
	second := MustCreate(t, svc, Intake("budi", 2.0, 3, domain.ServiceExpress))
	MustCreate(t, svc, Intake("Sari", 4.0, 3, domain.ServiceNormal))

	summary, err := svc.CustomerSummary(contextBack, "BUDI")
	require.NoError(t, err)
	assert.Equal(t, []uint64{first.OrderID, second.OrderID}, IdsOf(summary.Orders))
	assert.InDelta(t, first.FinalPrice+second.FinalPrice, summary.TotalSpending, 1e-9)

	var domainErr domain.Error
	_, err = svc.CustomerSummary(contextBack, "joko")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrorCodeNotFound, domainErr.Code)
}
