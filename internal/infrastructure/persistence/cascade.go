package persistence

import (
	"fmt"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cascade removes rows inside one transaction, following inbound references
// depth first so that children go before their parents.
type cascade struct {
	tx    *gorm.DB
	graph shared.RelationGraph
	seen  map[string]map[uuid.UUID]bool
}

func (c *cascade) remove(table string, ids []uuid.UUID) error {
	ids = c.unseen(table, ids)
	if len(ids) == 0 {
		return nil
	}

	if c.graph != nil {
		for _, ref := range c.graph.Inbound(table) {
			if err := c.apply(table, ref, ids); err != nil {
				return err
			}
		}
	}

	err := c.tx.Exec("DELETE FROM ? WHERE ?",
		clause.Table{Name: table},
		clause.IN{Column: clause.Column{Name: "id"}, Values: values(ids)},
	).Error
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return nil
}

func (c *cascade) apply(table string, ref shared.InboundReference, ids []uuid.UUID) error {
	referencing := clause.IN{Column: clause.Column{Name: ref.Column}, Values: values(ids)}

	switch ref.Policy {
	case shared.Protect:
		var n int64
		if err := c.tx.Table(ref.Table).Where(referencing).Count(&n).Error; err != nil {
			return fmt.Errorf("count %s.%s: %w", ref.Table, ref.Column, err)
		}
		if n > 0 {
			return shared.NewConflictError(fmt.Sprintf(
				"Cannot delete some instances of model '%s' because they are referenced through protected foreign keys: '%s.%s'.",
				c.graph.ModelName(table), ref.Model, ref.Field))
		}

	case shared.Cascade:
		var children []uuid.UUID
		if err := c.tx.Table(ref.Table).Where(referencing).Pluck("id", &children).Error; err != nil {
			return fmt.Errorf("collect %s.%s: %w", ref.Table, ref.Column, err)
		}
		return c.remove(ref.Table, children)

	case shared.SetNull:
		err := c.tx.Table(ref.Table).Where(referencing).
			UpdateColumn(ref.Column, gorm.Expr("NULL")).Error
		if err != nil {
			return fmt.Errorf("clear %s.%s: %w", ref.Table, ref.Column, err)
		}

	default:
		return fmt.Errorf("unknown delete policy %q on %s.%s", ref.Policy, ref.Table, ref.Column)
	}
	return nil
}

// unseen drops ids already removed from table, which stops reference cycles.
func (c *cascade) unseen(table string, ids []uuid.UUID) []uuid.UUID {
	done := c.seen[table]
	if done == nil {
		done = make(map[uuid.UUID]bool)
		c.seen[table] = done
	}
	out := ids[:0:0]
	for _, id := range ids {
		if !done[id] {
			done[id] = true
			out = append(out, id)
		}
	}
	return out
}

func values(ids []uuid.UUID) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
