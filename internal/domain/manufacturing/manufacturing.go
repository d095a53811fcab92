// Package manufacturing holds work centers, bills of material and
// production orders.
package manufacturing

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

type WorkCenter struct {
	shared.BaseEntity
	WorkCenterCode  string          `json:"work_center_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	WorkCenterName  string          `json:"work_center_name" gorm:"size:255;not null" validate:"required,max=255"`
	Location        string          `json:"location" gorm:"size:255;not null" validate:"required,max=255"`
	CapacityPerHour decimal.Decimal `json:"capacity_per_hour" gorm:"type:numeric(15,2);not null" validate:"required,dmax_digits=15,dplaces=2"`
}

func (WorkCenter) TableName() string { return "manufacturing_work_centers" }

// BillOfMaterial lists the cost of building one product.
type BillOfMaterial struct {
	shared.BaseEntity
	BOMCode     string          `json:"bom_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	ProductName string          `json:"product_name" gorm:"size:255;not null" validate:"required,max=255"`
	Description string          `json:"description" gorm:"type:text"`
	TotalCost   decimal.Decimal `json:"total_cost" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	CreatedDate time.Time       `json:"created_date" gorm:"autoCreateTime"`
}

func (BillOfMaterial) TableName() string { return "manufacturing_bills_of_material" }

// ProductionOrderStatus is the lifecycle of a production order
type ProductionOrderStatus string

const (
	ProductionPlanned    ProductionOrderStatus = "PLANNED"
	ProductionReleased   ProductionOrderStatus = "RELEASED"
	ProductionInProgress ProductionOrderStatus = "IN_PROGRESS"
	ProductionCompleted  ProductionOrderStatus = "COMPLETED"
	ProductionCancelled  ProductionOrderStatus = "CANCELLED"
)

type ProductionOrder struct {
	shared.BaseEntity
	OrderNumber string                `json:"order_number" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	ProductName string                `json:"product_name" gorm:"size:255;not null" validate:"required,max=255"`
	Quantity    int                   `json:"quantity" gorm:"not null" validate:"required,min=1"`
	StartDate   shared.Date           `json:"start_date" gorm:"not null" validate:"required"`
	EndDate     shared.Date           `json:"end_date" gorm:"not null" validate:"required"`
	Status      ProductionOrderStatus `json:"status" gorm:"size:20;not null" validate:"oneof=PLANNED RELEASED IN_PROGRESS COMPLETED CANCELLED"`
}

func (ProductionOrder) TableName() string { return "manufacturing_production_orders" }

func (p *ProductionOrder) ApplyDefaults() { p.Status = ProductionPlanned }
