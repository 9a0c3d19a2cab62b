package dto

import "github.com/stellarsoil/marketplace/pkg/assistant"

// ChatMessageRequest is one conversational turn from the client. PendingToken
// echoes the pendingConfirmation value from the previous response, if any.
type ChatMessageRequest struct {
	Message      string             `json:"message" binding:"required"`
	PendingToken string             `json:"pendingToken"`
	History      []ChatHistoryEntry `json:"history"`
}

// ChatHistoryEntry is one prior turn of the conversation, client-held
type ChatHistoryEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ChatAddToCartRequest adds a resolved product straight to the cart, skipping
// the conversational round trip.
type ChatAddToCartRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// ToHistory converts wire history entries to the pipeline's type
func ToHistory(entries []ChatHistoryEntry) []assistant.HistoryEntry {
	if len(entries) == 0 {
		return nil
	}
	history := make([]assistant.HistoryEntry, len(entries))
	for i, e := range entries {
		history[i] = assistant.HistoryEntry{Sender: e.Sender, Text: e.Text}
	}
	return history
}
