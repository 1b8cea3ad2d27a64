package models

import "testing"

func TestConversationKeySymmetry(t *testing.T) {
	if ConversationKey(7, 3) != ConversationKey(3, 7) {
		t.Error("conversation key must not depend on argument order")
	}
	if got := ConversationKey(3, 7); got != "3_7" {
		t.Errorf("ConversationKey(3, 7) = %q, want 3_7", got)
	}
}

func TestConversationKeyDistinctPairs(t *testing.T) {
	if ConversationKey(1, 23) == ConversationKey(12, 3) {
		t.Error("different pairs must produce different keys")
	}
}
