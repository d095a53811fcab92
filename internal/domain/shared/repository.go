package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract behind every resource collection.
// Field names in queries and conditions are wire (JSON) names; implementations
// translate them to columns.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, q Query) (int64, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, conds map[string]any, exclude uuid.UUID) (bool, error)
	UpdateWhere(ctx context.Context, conds map[string]any, updates map[string]any) (int64, error)
}

// ReferenceChecker resolves whether a row exists in another collection.
type ReferenceChecker interface {
	ReferenceExists(ctx context.Context, table string, id uuid.UUID) (bool, error)
}

// Condition is an equality predicate on one field.
type Condition struct {
	Field string
	Value any
}

// Search matches rows where every term appears, case-insensitively, in at
// least one of the fields.
type Search struct {
	Terms  []string
	Fields []string
}

// Order sorts by one field.
type Order struct {
	Field string
	Desc  bool
}

// Query describes a filtered, searched, ordered window over a collection.
type Query struct {
	Conditions []Condition
	Search     *Search
	Order      []Order
	Offset     int
	Limit      int
}

// Where returns a query holding only equality conditions.
func Where(conds map[string]any) Query {
	q := Query{}
	for k, v := range conds {
		q.Conditions = append(q.Conditions, Condition{Field: k, Value: v})
	}
	return q
}

// DeletePolicy is the behaviour applied to referencing rows when a row is deleted.
type DeletePolicy string

const (
	Cascade DeletePolicy = "CASCADE"
	Protect DeletePolicy = "PROTECT"
	SetNull DeletePolicy = "SET_NULL"
)

// InboundReference describes a column in another table pointing at a row.
type InboundReference struct {
	Table  string // referencing table
	Column string // referencing column
	Model  string // referencing entity name, used in messages
	Field  string // referencing wire field name
	Policy DeletePolicy
}

// RelationGraph answers which references point into a table.
type RelationGraph interface {
	Inbound(table string) []InboundReference
	ModelName(table string) string
}
