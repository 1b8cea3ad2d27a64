package models

import (
	"gorm.io/gorm"
)

// Earning is one append-only ledger entry for a provider withdrawal.
type Earning struct {
	gorm.Model
	ProviderID  uint   `json:"provider_id"`
	Provider    User   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Method      string `json:"method"`
	Amount      int64  `json:"amount"` // withdrawn amount, validated to [100, 100000]
	Description string `json:"description"`
}
