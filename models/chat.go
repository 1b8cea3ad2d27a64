package models

import (
	"fmt"

	"gorm.io/gorm"
)

type ChatMessage struct {
	gorm.Model
	ConversationKey string `json:"conversation_key" gorm:"index"`
	SenderID        uint   `json:"sender_id"`
	SenderRole      Role   `json:"sender_role"`
	Text            string `json:"text"`
}

// ConversationKey derives the stable key addressing a two-party chat thread.
// The lower user id always comes first so both participants compute the same
// key.
func ConversationKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}
