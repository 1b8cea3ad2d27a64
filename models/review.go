package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int    `json:"rating" gorm:"not null"`
	Message    string `json:"message"`
	ProviderID uint   `json:"provider_id"`
	Provider   User   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	CustomerID uint   `json:"customer_id"`
	Customer   User   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceID  uint   `json:"service_id"`
	BookingID  uint   `json:"booking_id" gorm:"uniqueIndex"`
}

// BeforeCreate hook to keep the rating in range
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	return nil
}

// HasExistingReview checks whether the customer already reviewed this booking.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("customer_id = ? AND booking_id = ? AND deleted_at IS NULL",
			r.CustomerID, r.BookingID).
		Count(&count).Error

	return count > 0, err
}
