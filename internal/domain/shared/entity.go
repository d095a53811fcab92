package shared

import (
	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	EntityID() uuid.UUID
	AssignID(id uuid.UUID)
}

// BaseEntity carries the server-assigned identifier shared by every record.
type BaseEntity struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
}

// EntityID returns the entity ID
func (e *BaseEntity) EntityID() uuid.UUID {
	return e.ID
}

// AssignID sets the identifier before the first insert.
func (e *BaseEntity) AssignID(id uuid.UUID) {
	e.ID = id
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	return BaseEntity{ID: uuid.New()}
}

// Defaulter is implemented by entities with documented defaults for omitted
// fields, such as an initial status.
type Defaulter interface {
	ApplyDefaults()
}

// Preparer is implemented by entities that derive stored values from other
// fields before every save.
type Preparer interface {
	Prepare() error
}

// Redactor is implemented by entities holding write-only values that must not
// leave the service.
type Redactor interface {
	Redact()
}
