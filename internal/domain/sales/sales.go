// Package sales keeps the legacy sales customer list, separate from
// accounting customers.
package sales

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
)

type Customer struct {
	shared.BaseEntity
	Name      string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email     string    `json:"email" gorm:"size:254;not null" validate:"required,email,max=254"`
	Phone     string    `json:"phone" gorm:"size:20;not null" validate:"required,max=20"`
	Address   string    `json:"address" gorm:"type:text;not null" validate:"required"`
	City      string    `json:"city" gorm:"size:100;not null" validate:"required,max=100"`
	Country   string    `json:"country" gorm:"size:100;not null" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
}

func (Customer) TableName() string { return "sales_customer" }
