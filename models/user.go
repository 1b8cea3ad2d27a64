package models

import (
	"time"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "service_provider"
)

type User struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name"`
	Email            string            `json:"email" gorm:"unique"`
	Phone            string            `json:"phone"`
	Age              int               `json:"age"`
	Address          string            `json:"address"`
	Pincode          string            `json:"pincode"`
	Password         string            `json:"password,omitempty"`
	Role             Role              `json:"role"`
	ProfileImage     string            `json:"profile_image"`
	Balance          int64             `json:"balance"`
	Services         []Service         `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
	Bookings         []Booking         `json:"bookings,omitempty" gorm:"foreignKey:CustomerID"`
	UnavailableSlots []UnavailableSlot `json:"unavailable_slots,omitempty" gorm:"foreignKey:ProviderID"`
	Earnings         []Earning         `json:"earnings,omitempty" gorm:"foreignKey:ProviderID"`
	Reviews          []Review          `json:"reviews,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
