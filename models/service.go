package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name        string `json:"name"`
	Price       int    `json:"price"` // whole rupees, validated to [50, 200000]
	Description string `json:"description"`
	ProviderID  uint   `json:"provider_id"`
	Provider    User   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Version     uint   `json:"version" gorm:"default:1"`
}
