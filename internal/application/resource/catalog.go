package resource

import (
	"sync"

	"github.com/erp/erpapi/internal/domain/shared"
)

// Catalog indexes registered definitions by table and answers which
// references point into a table. It implements shared.RelationGraph.
type Catalog struct {
	mu      sync.RWMutex
	tables  map[string]Definition
	order   []string
	inbound map[string][]shared.InboundReference
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tables:  make(map[string]Definition),
		inbound: make(map[string][]shared.InboundReference),
	}
}

// Add registers the definition of the entity stored in table.
func (c *Catalog) Add(table string, def Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[table]; !ok {
		c.order = append(c.order, table)
	}
	c.tables[table] = def
	for _, ref := range def.References {
		c.inbound[ref.Target] = append(c.inbound[ref.Target], shared.InboundReference{
			Table:  table,
			Column: ReferenceColumn(ref.Field),
			Model:  def.Name,
			Field:  ref.Field,
			Policy: ref.OnDelete,
		})
	}
}

// Inbound implements shared.RelationGraph.
func (c *Catalog) Inbound(table string) []shared.InboundReference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]shared.InboundReference(nil), c.inbound[table]...)
}

// ModelName implements shared.RelationGraph.
func (c *Catalog) ModelName(table string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if def, ok := c.tables[table]; ok {
		return def.Name
	}
	return table
}

// Lookup returns the definition registered for table.
func (c *Catalog) Lookup(table string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.tables[table]
	return def, ok
}

// Tables lists registered tables in registration order.
func (c *Catalog) Tables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}
