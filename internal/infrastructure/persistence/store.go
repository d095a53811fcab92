package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm implementation of shared.Repository for one entity type.
// Query fields are wire names and are mapped to columns through the gorm
// schema of T.
type Store[T any] struct {
	db      *gorm.DB
	graph   shared.RelationGraph
	table   string
	columns map[string]string
}

// Ensure Store implements shared.Repository
var _ shared.Repository[struct{}] = (*Store[struct{}])(nil)

// NewStore parses the schema of T and returns its store. graph supplies the
// references applied on delete.
func NewStore[T any](db *gorm.DB, graph shared.RelationGraph) (*Store[T], error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, fmt.Errorf("parse schema of %T: %w", *new(T), err)
	}

	columns := make(map[string]string, len(stmt.Schema.Fields))
	for _, f := range stmt.Schema.Fields {
		if f.DBName == "" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		columns[name] = f.DBName
	}

	return &Store[T]{
		db:      db,
		graph:   graph,
		table:   stmt.Schema.Table,
		columns: columns,
	}, nil
}

// Table returns the table holding T.
func (s *Store[T]) Table() string { return s.table }

// Column returns the column of a wire field.
func (s *Store[T]) Column(field string) (string, bool) {
	col, ok := s.columns[field]
	return col, ok
}

// FindByID returns the row with the given id.
func (s *Store[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).
		Take(&entity).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// FindAll returns the window of rows selected by q.
func (s *Store[T]) FindAll(ctx context.Context, q shared.Query) ([]T, error) {
	tx, err := s.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, o := range q.Order {
		col, ok := s.columns[o.Field]
		if !ok {
			return nil, fmt.Errorf("order by unknown field %q", o.Field)
		}
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: o.Desc})
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Count returns the number of rows matching q, ignoring its window.
func (s *Store[T]) Count(ctx context.Context, q shared.Query) (int64, error) {
	tx, err := s.filtered(ctx, q)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

// Create inserts entity.
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	return translate(s.db.WithContext(ctx).Create(entity).Error)
}

// Update writes every column of entity.
func (s *Store[T]) Update(ctx context.Context, entity *T) error {
	return translate(s.db.WithContext(ctx).Save(entity).Error)
}

// Delete removes the row and applies the delete policy of every reference
// pointing at it, in one transaction.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c := &cascade{tx: tx, graph: s.graph, seen: make(map[string]map[uuid.UUID]bool)}
		return c.remove(s.table, []uuid.UUID{id})
	})
	return translate(err)
}

// Exists reports whether a row other than exclude matches every condition.
func (s *Store[T]) Exists(ctx context.Context, conds map[string]any, exclude uuid.UUID) (bool, error) {
	tx, err := s.filtered(ctx, shared.Where(conds))
	if err != nil {
		return false, err
	}
	if exclude != uuid.Nil {
		tx = tx.Where(clause.Neq{Column: clause.Column{Name: "id"}, Value: exclude})
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

// UpdateWhere sets updates on every row matching conds and returns the
// number of rows changed.
func (s *Store[T]) UpdateWhere(ctx context.Context, conds map[string]any, updates map[string]any) (int64, error) {
	if len(conds) == 0 {
		return 0, errors.New("update without conditions")
	}
	tx, err := s.filtered(ctx, shared.Where(conds))
	if err != nil {
		return 0, err
	}
	values := make(map[string]any, len(updates))
	for field, v := range updates {
		col, ok := s.columns[field]
		if !ok {
			return 0, fmt.Errorf("update unknown field %q", field)
		}
		values[col] = v
	}
	result := tx.Updates(values)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

// filtered applies the conditions and search of q.
func (s *Store[T]) filtered(ctx context.Context, q shared.Query) (*gorm.DB, error) {
	tx := s.db.WithContext(ctx).Model(new(T))

	for _, c := range q.Conditions {
		col, ok := s.columns[c.Field]
		if !ok {
			return nil, fmt.Errorf("filter on unknown field %q", c.Field)
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: col}, Value: c.Value})
	}

	if q.Search != nil && len(q.Search.Terms) > 0 {
		expr, err := s.search(q.Search)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(expr)
	}
	return tx, nil
}

// search matches every term against at least one field.
func (s *Store[T]) search(search *shared.Search) (clause.Expression, error) {
	cols := make([]string, 0, len(search.Fields))
	for _, field := range search.Fields {
		col, ok := s.columns[field]
		if !ok {
			return nil, fmt.Errorf("search on unknown field %q", field)
		}
		cols = append(cols, col)
	}

	terms := make([]clause.Expression, 0, len(search.Terms))
	for _, term := range search.Terms {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		matches := make([]clause.Expression, 0, len(cols))
		for _, col := range cols {
			matches = append(matches, clause.Expr{
				SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
				Vars: []any{clause.Column{Name: col}, pattern},
			})
		}
		terms = append(terms, clause.Or(matches...))
	}
	return clause.And(terms...), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// translate maps gorm errors onto domain errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewConflictError("A record with the same unique values already exists.")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewConflictError("The record references, or is referenced by, a row that does not allow the change.")
	}
	return err
}
