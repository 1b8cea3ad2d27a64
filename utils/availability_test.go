package utils

import (
	"testing"

	"github.com/meinhoongagan/service-marketplace/models"
)

func unavailable(date string, slots ...string) []models.UnavailableSlot {
	out := make([]models.UnavailableSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, models.UnavailableSlot{Date: date, TimeSlot: s})
	}
	return out
}

func TestAvailableSlotsNoExclusions(t *testing.T) {
	got := AvailableSlots("14-03-2025", nil)
	if len(got) != 18 {
		t.Fatalf("expected full label set, got %d slots", len(got))
	}
	for i, label := range TimeSlots() {
		if got[i] != label {
			t.Errorf("slot %d = %q, want %q (ordering must be chronological)", i, got[i], label)
		}
	}
}

func TestAvailableSlotsExcludesMarkedSlot(t *testing.T) {
	marked := "10:00 AM to 11:00 AM"
	got := AvailableSlots("14-03-2025", unavailable("14-03-2025", marked))

	if len(got) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(got))
	}
	for _, s := range got {
		if s == marked {
			t.Fatalf("excluded slot %q still present", marked)
		}
	}
}

func TestAvailableSlotsIgnoresOtherDates(t *testing.T) {
	got := AvailableSlots("15-03-2025", unavailable("14-03-2025", "10:00 AM to 11:00 AM"))
	if len(got) != 18 {
		t.Errorf("exclusions on another date must not apply, got %d slots", len(got))
	}
}

func TestAvailableSlotsFullyBookedDay(t *testing.T) {
	all := unavailable("14-03-2025", TimeSlots()...)
	got := AvailableSlots("14-03-2025", all)
	if len(got) != 0 {
		t.Errorf("fully booked day should yield an empty (non-nil) set, got %v", got)
	}
	if got == nil {
		t.Error("empty result must be distinguishable from a missing one")
	}
}

// Output and exclusions must partition the full label set: their
// intersection is empty and their union restores every label.
func TestAvailableSlotsPartition(t *testing.T) {
	date := "14-03-2025"
	excluded := []string{"6:00 AM to 7:00 AM", "12:00 PM to 1:00 PM", "11:00 PM to 12:00 AM"}
	got := AvailableSlots(date, unavailable(date, excluded...))

	inOutput := make(map[string]bool, len(got))
	for _, s := range got {
		inOutput[s] = true
	}
	for _, s := range excluded {
		if inOutput[s] {
			t.Errorf("excluded slot %q appears in output", s)
		}
	}
	if len(got)+len(excluded) != len(TimeSlots()) {
		t.Errorf("output (%d) + excluded (%d) should cover all %d labels",
			len(got), len(excluded), len(TimeSlots()))
	}
}

func TestIsSlotUnavailable(t *testing.T) {
	slots := unavailable("14-03-2025", "10:00 AM to 11:00 AM")

	if !IsSlotUnavailable("14-03-2025", "10:00 AM to 11:00 AM", slots) {
		t.Error("marked slot should report unavailable")
	}
	if IsSlotUnavailable("14-03-2025", "11:00 AM to 12:00 PM", slots) {
		t.Error("unmarked slot should report available")
	}
	if IsSlotUnavailable("15-03-2025", "10:00 AM to 11:00 AM", slots) {
		t.Error("same slot on another date should report available")
	}
}
