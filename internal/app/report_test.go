package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/laundryexpress/pro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireInsufficientData(t *testing.T, err error) {
	t.Helper()
	var domainErr domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrorCodeInsufficientData, domainErr.Code)
}

func Test_BuildReport_EmptyStore(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	_, err := svc.BuildReport(contextBack)
	requireInsufficientData(t, err)
}

func Test_BuildReport_AllCancelled(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	order := MustCreate(t, svc, Intake("Budi", 1.0, 3, domain.ServiceNormal))
	_, err := svc.CancelOrder(contextBack, order.OrderID)
	require.NoError(t, err)

	_, err = svc.BuildReport(contextBack)
	requireInsufficientData(t, err)
}

func Test_BuildReport_Aggregates(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	// Two normal orders and one express; one more gets cancelled and
	// must not count towards revenue, weight or service popularity.
	MustCreate(t, svc, Intake("Budi", 2.0, 3, domain.ServiceNormal))
	MustCreate(t, svc, Intake("Sari", 4.0, 3, domain.ServiceNormal))
	MustCreate(t, svc, Intake("Budi", 3.0, 1, domain.ServiceExpress))
	cancelled := MustCreate(t, svc, Intake("Tono", 6.0, 1, domain.ServiceExpress))
	_, err := svc.CancelOrder(contextBack, cancelled.OrderID)
	require.NoError(t, err)

	done := MustCreate(t, svc, Intake("Sari", 1.0, 3, domain.ServiceNormal))
	AdvanceTo(t, svc, done.OrderID, domain.StatusDone)

	report, err := svc.BuildReport(contextBack)
	require.NoError(t, err)

	wantRevenue := 2.0*5000 + 4.0*5000 + 3.0*5000*2.0 + 1.0*5000
	assert.InDelta(t, wantRevenue, report.TotalRevenue, 1e-9)
	assert.InDelta(t, (2.0+4.0+3.0+1.0)/4.0, report.AverageWeight, 1e-9)
	assert.Equal(t, domain.ServiceNormal, report.MostPopularService)
	assert.Equal(t, 3, report.ActiveCount)

	// Budi: 3 orders (one express). Sari: 2. Tono's cancelled order
	// still counts for the customer ranking.
	assert.Equal(t, []domain.CustomerCount{
		{Name: "Budi", Orders: 2},
		{Name: "Sari", Orders: 2},
		{Name: "Tono", Orders: 1},
	}, report.TopCustomers)
}

func Test_BuildReport_PopularServiceTie(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	// One fast, one express: the tie resolves to the lowest tier seen
	// at its maximum, i.e. fast beats express.
	MustCreate(t, svc, Intake("Budi", 1.0, 3, domain.ServiceExpress))
	MustCreate(t, svc, Intake("Sari", 1.0, 3, domain.ServiceFast))

	report, err := svc.BuildReport(contextBack)
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceFast, report.MostPopularService)
}

func Test_BuildReport_TopCustomersCapAndStability(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	// Six customers with one order each: all tied, so ranking keeps
	// first-encountered order and cuts off after five.
	names := []string{"Budi", "Sari", "Tono", "Dewi", "Agus", "Rina"}
	for _, name := range names {
		MustCreate(t, svc, Intake(name, 1.0, 3, domain.ServiceNormal))
	}

	report, err := svc.BuildReport(contextBack)
	require.NoError(t, err)
	require.Len(t, report.TopCustomers, 5)
	for i, c := range report.TopCustomers {
		assert.Equal(t, names[i], c.Name, fmt.Sprintf("rank %d", i))
		assert.Equal(t, 1, c.Orders)
	}
}
