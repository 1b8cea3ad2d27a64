package models

import (
	"reflect"
	"testing"
)

func TestApplyLegalTransitions(t *testing.T) {
	steps := []struct {
		from  WorkStatus
		event Event
		to    WorkStatus
	}{
		{StatusPending, EventAccept, StatusAccepted},
		{StatusAccepted, EventStart, StatusInProgress},
		{StatusInProgress, EventComplete, StatusCompleted},
	}
	for _, s := range steps {
		got, err := Apply(s.from, s.event)
		if err != nil {
			t.Fatalf("Apply(%s, %s) returned error: %v", s.from, s.event, err)
		}
		if got != s.to {
			t.Errorf("Apply(%s, %s) = %s, want %s", s.from, s.event, got, s.to)
		}
	}

	if got, err := Apply(StatusPending, EventReject); err != nil || got != StatusRejected {
		t.Errorf("Apply(Pending, reject) = %s, %v; want Rejected", got, err)
	}
}

func TestApplyIllegalTransitionsLeaveStatusUnchanged(t *testing.T) {
	all := []WorkStatus{StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusRejected}
	events := []Event{EventAccept, EventReject, EventStart, EventComplete}

	legal := map[WorkStatus]map[Event]bool{
		StatusPending:    {EventAccept: true, EventReject: true},
		StatusAccepted:   {EventStart: true},
		StatusInProgress: {EventComplete: true},
	}

	for _, s := range all {
		for _, e := range events {
			if legal[s][e] {
				continue
			}
			got, err := Apply(s, e)
			if err == nil {
				t.Errorf("Apply(%s, %s) should fail", s, e)
			}
			if got != s {
				t.Errorf("Apply(%s, %s) changed status to %s", s, e, got)
			}
		}
	}
}

func TestApplyUnknownEvent(t *testing.T) {
	got, err := Apply(StatusPending, Event("launch"))
	if err == nil {
		t.Error("unknown event should fail")
	}
	if got != StatusPending {
		t.Errorf("unknown event changed status to %s", got)
	}
}

func TestSkippingStatesNotAllowed(t *testing.T) {
	if _, err := Apply(StatusPending, EventComplete); err == nil {
		t.Error("Pending must not jump straight to Completed")
	}
	if _, err := Apply(StatusPending, EventStart); err == nil {
		t.Error("Pending must not jump straight to In Progress")
	}
}

func TestTerminalStatesAcceptNoEvents(t *testing.T) {
	for _, s := range []WorkStatus{StatusCompleted, StatusRejected} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
		if actions := NextActions(s); len(actions) != 0 {
			t.Errorf("NextActions(%s) = %v, want none", s, actions)
		}
	}

	// Re-accepting a completed booking is a no-op
	got, err := Apply(StatusCompleted, EventAccept)
	if err == nil || got != StatusCompleted {
		t.Errorf("Apply(Completed, accept) = %s, %v; want unchanged + error", got, err)
	}
}

func TestNextActions(t *testing.T) {
	tests := []struct {
		status WorkStatus
		want   []Event
	}{
		{StatusPending, []Event{EventAccept, EventReject}},
		{StatusAccepted, []Event{EventStart}},
		{StatusInProgress, []Event{EventComplete}},
		{StatusCompleted, nil},
		{StatusRejected, nil},
	}
	for _, tt := range tests {
		got := NextActions(tt.status)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NextActions(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		status WorkStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusAccepted, true},
		{StatusInProgress, true},
		{StatusCompleted, false},
		{StatusRejected, false},
	}
	for _, tt := range tests {
		b := Booking{WorkStatus: tt.status}
		if got := b.CanCancel(); got != tt.want {
			t.Errorf("CanCancel with %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestReviewUnlockedOnlyWhenCompleted(t *testing.T) {
	for _, s := range []WorkStatus{StatusPending, StatusAccepted, StatusInProgress, StatusRejected} {
		b := Booking{WorkStatus: s}
		if b.ReviewUnlocked() {
			t.Errorf("review should stay locked while %s", s)
		}
	}
	b := Booking{WorkStatus: StatusCompleted}
	if !b.ReviewUnlocked() {
		t.Error("completed booking should unlock the review")
	}
}

// Full lifecycle: Pending -> accept -> start -> complete, then nothing more.
func TestFullLifecycle(t *testing.T) {
	status := StatusPending

	for _, e := range []Event{EventAccept, EventStart, EventComplete} {
		next, err := Apply(status, e)
		if err != nil {
			t.Fatalf("Apply(%s, %s): %v", status, e, err)
		}
		status = next
	}

	if status != StatusCompleted {
		t.Fatalf("lifecycle ended at %s, want Completed", status)
	}
	if got, err := Apply(status, EventAccept); err == nil || got != StatusCompleted {
		t.Error("accept after completion must be rejected without changing status")
	}
}
