package persistence

import (
	"context"
	"fmt"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// References resolves reference fields by counting rows in the target table.
type References struct {
	db *gorm.DB
}

// Ensure References implements shared.ReferenceChecker
var _ shared.ReferenceChecker = (*References)(nil)

// NewReferences creates a reference checker over db.
func NewReferences(db *gorm.DB) *References {
	return &References{db: db}
}

// ReferenceExists reports whether table holds a row with the given id.
func (r *References) ReferenceExists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Table(table).
		Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("look up %s %s: %w", table, id, err)
	}
	return n > 0, nil
}
