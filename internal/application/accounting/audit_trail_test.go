package accounting

import (
	"context"
	"testing"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/accounting"
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/erp/erpapi/internal/infrastructure/config"
	"github.com/erp/erpapi/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuditStore(t *testing.T) *persistence.Store[accounting.AuditLog] {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.AutoMigrate(&accounting.AuditLog{}))

	store, err := persistence.NewStore[accounting.AuditLog](db.DB, resource.NewCatalog())
	require.NoError(t, err)
	return store
}

func TestAuditTrail_Record(t *testing.T) {
	ctx := context.Background()
	store := newAuditStore(t)
	trail := NewAuditTrail(store)

	vendor := map[string]any{"vendor_code": "V001", "vendor_name": "Acme"}
	require.NoError(t, trail.Record(ctx, resource.AuditEvent{
		Action:     resource.ActionCreate,
		EntityType: "Vendor",
		EntityID:   "7b0f4c1e-4a53-4f0e-9d55-0d7c2f3b9a10",
		New:        vendor,
		Actor:      resource.Actor{User: "alice", IP: "10.0.0.7"},
	}))

	logs, err := store.FindAll(ctx, shared.Where(map[string]any{"entity_type": "Vendor"}))
	require.NoError(t, err)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, accounting.AuditActionCreate, entry.Action)
	assert.Equal(t, "alice", entry.User)
	assert.Nil(t, entry.OldValue)
	assert.JSONEq(t, `{"vendor_code":"V001","vendor_name":"Acme"}`, string(entry.NewValue))
	require.NotNil(t, entry.IPAddress)
	assert.Equal(t, "10.0.0.7", *entry.IPAddress)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestAuditTrail_RecordWithoutIP(t *testing.T) {
	ctx := context.Background()
	store := newAuditStore(t)

	require.NoError(t, NewAuditTrail(store).Record(ctx, resource.AuditEvent{
		Action:     resource.ActionDelete,
		EntityType: "LedgerEntry",
		EntityID:   "42",
		Old:        map[string]any{"entry_number": "LE-1"},
		Actor:      resource.Actor{User: resource.SystemUser},
	}))

	logs, err := store.FindAll(ctx, shared.Query{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, accounting.AuditActionDelete, logs[0].Action)
	assert.Equal(t, "system", logs[0].User)
	assert.Nil(t, logs[0].IPAddress)
	assert.Nil(t, logs[0].NewValue)
}
