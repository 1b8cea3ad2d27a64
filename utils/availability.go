package utils

import (
	"github.com/meinhoongagan/service-marketplace/db"
	"github.com/meinhoongagan/service-marketplace/models"
)

// AvailableSlots filters the full label set down to the slots still bookable
// on the given date. A label is excluded when an unavailability entry matches
// the exact (date, slot) pair. An empty result means a fully booked day.
func AvailableSlots(date string, unavailable []models.UnavailableSlot) []string {
	excluded := make(map[string]bool)
	for _, slot := range unavailable {
		if slot.Date == date {
			excluded[slot.TimeSlot] = true
		}
	}

	available := make([]string, 0, len(TimeSlots()))
	for _, label := range TimeSlots() {
		if !excluded[label] {
			available = append(available, label)
		}
	}
	return available
}

// IsSlotUnavailable reports whether the (date, slot) pair appears in the
// provider's unavailability entries. Used to render the availability grid.
func IsSlotUnavailable(date, timeSlot string, unavailable []models.UnavailableSlot) bool {
	for _, slot := range unavailable {
		if slot.Date == date && slot.TimeSlot == timeSlot {
			return true
		}
	}
	return false
}

// CheckAvailability checks if a provider can take a booking for the given
// date and time slot: the slot must not be declared unavailable and no live
// booking may already hold it.
func CheckAvailability(providerID uint, date, timeSlot string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.UnavailableSlot{}).
		Where("provider_id = ? AND date = ? AND time_slot = ?", providerID, date, timeSlot).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err = db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND date = ? AND time_slot = ? AND work_status <> ?",
			providerID, date, timeSlot, models.StatusRejected).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count == 0, nil
}
