package utils

import (
	"fmt"
	"time"
)

const (
	slotOpenHour  = 6  // 6 AM
	slotCloseHour = 24 // midnight
	gridDays      = 10
)

// TimeSlots returns the 18 fixed hourly labels spanning the operating window
// (06:00-24:00) in chronological order, e.g. "6:00 AM to 7:00 AM".
func TimeSlots() []string {
	slots := make([]string, 0, slotCloseHour-slotOpenHour)
	for hour := slotOpenHour; hour < slotCloseHour; hour++ {
		slots = append(slots, fmt.Sprintf("%s to %s", clockLabel(hour), clockLabel(hour+1)))
	}
	return slots
}

func clockLabel(hour int) string {
	period := "PM"
	if hour < 12 || hour == 24 {
		period = "AM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:00 %s", h, period)
}

// FormatDate renders a time as dd-mm-yyyy, the calendar-day key used for
// slots and bookings.
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// Next10Days returns today plus the nine following days as dd-mm-yyyy
// strings. These are the columns of the provider availability grid.
func Next10Days() []string {
	days := make([]string, 0, gridDays)
	today := time.Now()
	for i := 0; i < gridDays; i++ {
		days = append(days, FormatDate(today.AddDate(0, 0, i)))
	}
	return days
}

// FormatRequestID renders the display id shown for service requests,
// SRN001, SRN002, ...
func FormatRequestID(index int) string {
	return fmt.Sprintf("SRN%03d", index+1)
}
