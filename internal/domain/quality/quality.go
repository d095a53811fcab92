// Package quality records inspection results.
package quality

import (
	"time"

	"github.com/erp/erpapi/internal/domain/shared"
)

// CheckStatus is the outcome of a quality check
type CheckStatus string

const (
	CheckPassed  CheckStatus = "PASSED"
	CheckFailed  CheckStatus = "FAILED"
	CheckPending CheckStatus = "PENDING"
)

type Check struct {
	shared.BaseEntity
	CheckDate shared.Date `json:"check_date" gorm:"not null" validate:"required"`
	Status    CheckStatus `json:"status" gorm:"size:10;not null" validate:"required,oneof=PASSED FAILED PENDING"`
	Remarks   string      `json:"remarks" gorm:"type:text"`
	CreatedAt time.Time   `json:"created_at"`
}

func (Check) TableName() string { return "quality_check" }
