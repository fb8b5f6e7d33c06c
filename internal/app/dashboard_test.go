package app

import (
	"testing"

	"github.com/laundryexpress/pro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_StatusBoard(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	MustCreate(t, svc, Intake("Budi", 1.0, 3, domain.ServiceNormal))
	washing := MustCreate(t, svc, Intake("Sari", 1.0, 3, domain.ServiceNormal))
	AdvanceTo(t, svc, washing.OrderID, domain.StatusWashing)
	MustCreate(t, svc, Intake("Tono", 1.0, 3, domain.ServiceNormal))
	cancelled := MustCreate(t, svc, Intake("Dewi", 1.0, 3, domain.ServiceNormal))
	_, err := svc.CancelOrder(contextBack, cancelled.OrderID)
	require.NoError(t, err)

	groups, err := svc.StatusBoard(contextBack)
	require.NoError(t, err)
	require.Len(t, groups, int(domain.StatusCancelled)+1)

	assert.Equal(t, []uint64{1, 3}, groups[domain.StatusWaiting].OrderIDs)
	assert.Equal(t, []uint64{2}, groups[domain.StatusWashing].OrderIDs)
	assert.Empty(t, groups[domain.StatusDone].OrderIDs)
	assert.Equal(t, []uint64{4}, groups[domain.StatusCancelled].OrderIDs)
}

func Test_Overview(t *testing.T) {
	t.Parallel()
	_, svc := NewEnv(t)

	ov, err := svc.Overview(contextBack)
	require.NoError(t, err)
	assert.Equal(t, domain.Overview{}, ov)

	MustCreate(t, svc, Intake("Budi", 1.0, 3, domain.ServiceNormal))
	done := MustCreate(t, svc, Intake("Sari", 1.0, 3, domain.ServiceNormal))
	AdvanceTo(t, svc, done.OrderID, domain.StatusDone)
	cancelled := MustCreate(t, svc, Intake("Tono", 1.0, 3, domain.ServiceNormal))
	_, err = svc.CancelOrder(contextBack, cancelled.OrderID)
	require.NoError(t, err)

	ov, err = svc.Overview(contextBack)
	require.NoError(t, err)
	assert.Equal(t, domain.Overview{Total: 3, Completed: 1, Active: 1, Cancelled: 1}, ov)
}
