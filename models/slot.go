package models

import (
	"gorm.io/gorm"
)

// UnavailableSlot marks one (date, time-slot) pair as not bookable for a
// provider. Slots are atomic units, compared by exact equality, never by
// interval overlap.
type UnavailableSlot struct {
	gorm.Model
	ProviderID uint   `json:"provider_id" gorm:"uniqueIndex:idx_provider_date_slot"`
	Provider   User   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Date       string `json:"date" gorm:"uniqueIndex:idx_provider_date_slot"`      // dd-mm-yyyy
	TimeSlot   string `json:"time_slot" gorm:"uniqueIndex:idx_provider_date_slot"` // one of utils.TimeSlots()
}
