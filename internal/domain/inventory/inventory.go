// Package inventory holds product categories, products and stock movements.
package inventory

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products. A category cannot be deleted while products use it.
type Category struct {
	shared.BaseEntity
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "inventory_category" }

// Product is a stocked item.
type Product struct {
	shared.BaseEntity
	ProductCode  string          `json:"product_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Name         string          `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Description  string          `json:"description" gorm:"type:text"`
	CategoryID   uuid.UUID       `json:"category" gorm:"type:uuid;not null;index" validate:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price" gorm:"type:numeric(10,2);not null" validate:"required,dmin=0,dmax_digits=10,dplaces=2"`
	ReorderLevel int             `json:"reorder_level" gorm:"not null"`
	CurrentStock int             `json:"current_stock" gorm:"not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Product) TableName() string { return "inventory_product" }

func (p *Product) ApplyDefaults() { p.ReorderLevel = 10 }

// NeedsReorder reports whether stock has fallen to the reorder level.
func (p *Product) NeedsReorder() bool { return p.CurrentStock <= p.ReorderLevel }

// MovementType is the direction of a stock movement
type MovementType string

const (
	MovementIn     MovementType = "IN"
	MovementOut    MovementType = "OUT"
	MovementAdjust MovementType = "ADJUST"
)

// StockMovement records a quantity entering, leaving or correcting stock.
type StockMovement struct {
	shared.BaseEntity
	ProductID    uuid.UUID    `json:"product" gorm:"type:uuid;not null;index" validate:"required"`
	MovementType MovementType `json:"movement_type" gorm:"size:10;not null" validate:"required,oneof=IN OUT ADJUST"`
	Quantity     int          `json:"quantity" gorm:"not null"`
	ReferenceID  string       `json:"reference_id" gorm:"size:50" validate:"max=50"`
	Remarks      string       `json:"remarks" gorm:"type:text"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (StockMovement) TableName() string { return "inventory_stock_movement" }
