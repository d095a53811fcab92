package accounting

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/erp/erpapi/internal/application/resource"
	"github.com/erp/erpapi/internal/domain/accounting"
	"github.com/erp/erpapi/internal/domain/shared"
)

// AuditTrail appends an AuditLog row for every audited mutation.
type AuditTrail struct {
	logs shared.Repository[accounting.AuditLog]
}

// Ensure AuditTrail implements resource.Auditor
var _ resource.Auditor = (*AuditTrail)(nil)

// NewAuditTrail creates an audit trail writing to logs.
func NewAuditTrail(logs shared.Repository[accounting.AuditLog]) *AuditTrail {
	return &AuditTrail{logs: logs}
}

// Record implements resource.Auditor.
func (a *AuditTrail) Record(ctx context.Context, event resource.AuditEvent) error {
	entry := &accounting.AuditLog{
		BaseEntity: shared.NewBaseEntity(),
		Action:     accounting.AuditAction(event.Action),
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		User:       event.Actor.User,
	}

	var err error
	if entry.OldValue, err = snapshot(event.Old); err != nil {
		return err
	}
	if entry.NewValue, err = snapshot(event.New); err != nil {
		return err
	}
	if event.Actor.IP != "" {
		ip := event.Actor.IP
		entry.IPAddress = &ip
	}

	if err := a.logs.Create(ctx, entry); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

func snapshot(v any) (shared.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode audit snapshot: %w", err)
	}
	return shared.JSON(b), nil
}
