package models

import (
	"fmt"

	"gorm.io/gorm"
)

type WorkStatus string

const (
	StatusPending    WorkStatus = "Pending"
	StatusAccepted   WorkStatus = "Accepted"
	StatusRejected   WorkStatus = "Rejected"
	StatusInProgress WorkStatus = "In Progress"
	StatusCompleted  WorkStatus = "Completed"
)

// Event is a provider action that moves a booking through its lifecycle.
type Event string

const (
	EventAccept   Event = "accept"
	EventReject   Event = "reject"
	EventStart    Event = "start"
	EventComplete Event = "complete"
)

type PaymentMode string

const (
	PaymentCash      PaymentMode = "Cash"
	PaymentPhonePe   PaymentMode = "PhonePe"
	PaymentGooglePay PaymentMode = "Google Pay"
)

type Booking struct {
	gorm.Model
	CustomerID    uint        `json:"customer_id"`
	Customer      User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID    uint        `json:"provider_id"`
	Provider      User        `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID     uint        `json:"service_id"`
	ServiceName   string      `json:"service_name"`
	Price         int         `json:"price"`
	Date          string      `json:"date"`      // dd-mm-yyyy
	TimeSlot      string      `json:"time_slot"` // one of utils.TimeSlots()
	PaymentMode   PaymentMode `json:"payment_mode"`
	PaymentStatus string      `json:"payment_status"`
	WorkStatus    WorkStatus  `json:"work_status"`
	Version       uint        `json:"version" gorm:"default:1"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.WorkStatus == "" {
		b.WorkStatus = StatusPending
	}
	return nil
}

// transitions maps each event to the single (from, to) edge it is legal on.
var transitions = map[Event][2]WorkStatus{
	EventAccept:   {StatusPending, StatusAccepted},
	EventReject:   {StatusPending, StatusRejected},
	EventStart:    {StatusAccepted, StatusInProgress},
	EventComplete: {StatusInProgress, StatusCompleted},
}

// eventOrder keeps NextActions output deterministic.
var eventOrder = []Event{EventAccept, EventReject, EventStart, EventComplete}

// IsTerminal reports whether no further transitions are allowed from s.
func (s WorkStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Apply returns the status reached by applying e from s. Events outside the
// transition table leave the status unchanged and return an error.
func Apply(s WorkStatus, e Event) (WorkStatus, error) {
	edge, ok := transitions[e]
	if !ok {
		return s, fmt.Errorf("unknown event %q", e)
	}
	if edge[0] != s {
		return s, fmt.Errorf("invalid transition: cannot %s from %s", e, s)
	}
	return edge[1], nil
}

// NextActions returns the events legal from the given status, in a fixed
// order. Terminal statuses yield an empty set.
func NextActions(s WorkStatus) []Event {
	var actions []Event
	for _, e := range eventOrder {
		if transitions[e][0] == s {
			actions = append(actions, e)
		}
	}
	return actions
}

// CanCancel reports whether a customer may still remove the booking. Cancel
// is a deletion, not a status transition, and is only allowed while the
// booking has not reached a terminal status.
func (b *Booking) CanCancel() bool {
	return !b.WorkStatus.IsTerminal()
}

// ApplyEvent advances the booking through the state machine and persists it
// with a conditional versioned write. The in-memory status is only mutated
// after the write succeeds, so a failed or conflicting write leaves the
// booking as displayed.
func (b *Booking) ApplyEvent(tx *gorm.DB, e Event) error {
	next, err := Apply(b.WorkStatus, e)
	if err != nil {
		return err
	}

	result := tx.Model(&Booking{}).
		Where("id = ? AND version = ?", b.ID, b.Version).
		Updates(map[string]interface{}{
			"work_status": next,
			"version":     b.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("booking %d was modified concurrently, retry", b.ID)
	}

	b.WorkStatus = next
	b.Version++
	return nil
}

// ReviewUnlocked reports whether the customer may leave a review: only a
// completed booking qualifies.
func (b *Booking) ReviewUnlocked() bool {
	return b.WorkStatus == StatusCompleted
}
