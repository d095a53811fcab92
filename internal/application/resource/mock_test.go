package resource

import (
	"context"
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock of shared.Repository.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) FindAll(ctx context.Context, q shared.Query) ([]T, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) Count(ctx context.Context, q shared.Query) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository[T]) Exists(ctx context.Context, conds map[string]any, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, conds, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[T]) UpdateWhere(ctx context.Context, conds map[string]any, updates map[string]any) (int64, error) {
	args := m.Called(ctx, conds, updates)
	return args.Get(0).(int64), args.Error(1)
}

// MockReferences is a testify mock of shared.ReferenceChecker.
type MockReferences struct {
	mock.Mock
}

func (m *MockReferences) ReferenceExists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, table, id)
	return args.Bool(0), args.Error(1)
}

// recordingAuditor keeps every event it is handed.
type recordingAuditor struct {
	events []AuditEvent
}

func (a *recordingAuditor) Record(_ context.Context, event AuditEvent) error {
	a.events = append(a.events, event)
	return nil
}

type gadgetStatus string

// gadget exercises every field kind the decoder knows about.
type gadget struct {
	shared.BaseEntity
	Code      string           `json:"code" validate:"required,max=10"`
	Status    gadgetStatus     `json:"status" validate:"oneof=NEW USED SCRAPPED"`
	Price     decimal.Decimal  `json:"price" validate:"required,dmin=0,dmax_digits=8,dplaces=2"`
	Discount  *decimal.Decimal `json:"discount" validate:"omitempty,dmin=0,dmax_digits=5,dplaces=2"`
	Quantity  int              `json:"quantity" validate:"min=0"`
	IsActive  bool             `json:"is_active"`
	Contact   string           `json:"contact" validate:"omitempty,email,max=254"`
	Released  *shared.Date     `json:"released"`
	Owner     *uuid.UUID       `json:"owner"`
	Total     decimal.Decimal  `json:"total"`
	Secret    string           `json:"secret,omitempty" validate:"max=20"`
	CreatedAt time.Time        `json:"created_at"`
}

func (g *gadget) ApplyDefaults() {
	g.Status = "NEW"
	g.IsActive = true
}

func (g *gadget) Prepare() error {
	g.Total = g.Price.Mul(decimal.NewFromInt(int64(g.Quantity)))
	return nil
}

func (g *gadget) Redact() { g.Secret = "" }

var gadgets = Definition{
	Module:          "workshop",
	Path:            "gadgets",
	Name:            "WorkshopGadget",
	Filters:         []string{"status", "is_active", "owner", "price"},
	Search:          []string{"code", "contact"},
	Ordering:        []string{"code", "price"},
	DefaultOrdering: []string{"-created_at"},
	Unique:          []string{"code"},
	References:      []Reference{Ref("owner", "workshop_owners", shared.SetNull)},
	ReadOnly:        []string{"total"},
}
