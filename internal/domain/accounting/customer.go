package accounting

import (
	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CustomerType distinguishes people from organisations
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "INDIVIDUAL"
	CustomerTypeBusiness   CustomerType = "BUSINESS"
)

// Customer is a receivables counterparty.
type Customer struct {
	shared.BaseEntity
	Code         string          `json:"code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Name         string          `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	CustomerType CustomerType    `json:"customer_type" gorm:"size:20;not null" validate:"required,oneof=INDIVIDUAL BUSINESS"`
	Email        string          `json:"email" gorm:"size:254" validate:"omitempty,email,max=254"`
	Phone        string          `json:"phone" gorm:"size:20" validate:"max=20"`
	TaxID        string          `json:"tax_id" gorm:"size:50" validate:"max=50"`
	Address      string          `json:"address" gorm:"type:text"`
	City         string          `json:"city" gorm:"size:100" validate:"max=100"`
	Country      string          `json:"country" gorm:"size:100" validate:"max=100"`
	CreditLimit  decimal.Decimal `json:"credit_limit" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	IsActive     bool            `json:"is_active" gorm:"not null"`
}

func (Customer) TableName() string { return "accounting_customers" }

func (c *Customer) ApplyDefaults() { c.IsActive = true }

// AssetType classifies a fixed asset
type AssetType string

const (
	AssetTypeBuilding  AssetType = "BUILDING"
	AssetTypeMachinery AssetType = "MACHINERY"
	AssetTypeEquipment AssetType = "EQUIPMENT"
	AssetTypeVehicle   AssetType = "VEHICLE"
	AssetTypeFurniture AssetType = "FURNITURE"
	AssetTypeOther     AssetType = "OTHER"
)

// FixedAsset is a depreciable long-lived asset.
type FixedAsset struct {
	shared.BaseEntity
	AssetCode               string          `json:"asset_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	AssetName               string          `json:"asset_name" gorm:"size:255;not null" validate:"required,max=255"`
	AssetType               AssetType       `json:"asset_type" gorm:"size:20;not null" validate:"required,oneof=BUILDING MACHINERY EQUIPMENT VEHICLE FURNITURE OTHER"`
	PurchaseDate            shared.Date     `json:"purchase_date" gorm:"not null" validate:"required"`
	PurchaseCost            decimal.Decimal `json:"purchase_cost" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	SalvageValue            decimal.Decimal `json:"salvage_value" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	UsefulLifeYears         int             `json:"useful_life_years" gorm:"not null" validate:"required,min=1"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation" gorm:"type:numeric(15,2);not null" validate:"required,dmin=0,dmax_digits=15,dplaces=2"`
	Location                string          `json:"location" gorm:"size:255" validate:"max=255"`
}

func (FixedAsset) TableName() string { return "accounting_fixed_assets" }

// BookValue is cost less accumulated depreciation.
func (a *FixedAsset) BookValue() decimal.Decimal {
	return a.PurchaseCost.Sub(a.AccumulatedDepreciation)
}
