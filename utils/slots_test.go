package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}

	// Chronological boundaries, including the noon and midnight edges
	expect := map[int]string{
		0:  "6:00 AM to 7:00 AM",
		5:  "11:00 AM to 12:00 PM",
		6:  "12:00 PM to 1:00 PM",
		16: "10:00 PM to 11:00 PM",
		17: "11:00 PM to 12:00 AM",
	}
	for i, want := range expect {
		if slots[i] != want {
			t.Errorf("slots[%d] = %q, want %q", i, slots[i], want)
		}
	}

	seen := make(map[string]bool)
	for _, s := range slots {
		if seen[s] {
			t.Errorf("duplicate slot label %q", s)
		}
		seen[s] = true
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "14-03-2025" {
		t.Errorf("FormatDate = %q, want 14-03-2025", got)
	}
}

func TestNext10Days(t *testing.T) {
	days := Next10Days()
	if len(days) != 10 {
		t.Fatalf("expected 10 days, got %d", len(days))
	}

	pattern := regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	for _, d := range days {
		if !pattern.MatchString(d) {
			t.Errorf("day %q is not dd-mm-yyyy", d)
		}
	}

	if days[0] != FormatDate(time.Now()) {
		t.Errorf("first day %q should be today", days[0])
	}
	if days[1] != FormatDate(time.Now().AddDate(0, 0, 1)) {
		t.Errorf("second day %q should be tomorrow", days[1])
	}
}

func TestFormatRequestID(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "SRN001"},
		{1, "SRN002"},
		{99, "SRN100"},
	}
	for _, tt := range tests {
		if got := FormatRequestID(tt.index); got != tt.want {
			t.Errorf("FormatRequestID(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
