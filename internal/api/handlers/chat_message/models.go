package chat_message

import (
	"github.com/smart-taythanh/STT-CitizenService/internal/integrations/gemini"
)

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	Message string `json:"message"`
}

// ReplyResponse HTTP response model ответа ассистента
type ReplyResponse struct {
	Reply string `json:"reply"`
	// Fallback true, если бэкенд был недоступен и возвращен текст-заглушка
	Fallback bool `json:"fallback"`
}

// HistoryResponse HTTP response model истории диалога
type HistoryResponse struct {
	Messages []MessageItem `json:"messages"`
}

// MessageItem одно сообщение диалога
type MessageItem struct {
	Role string `json:"role"` // "user" или "model"
	Text string `json:"text"`
}

// FromHistory конвертирует историю диалога в HTTP модель
func FromHistory(history []gemini.Message) *HistoryResponse {
	messages := make([]MessageItem, 0, len(history))
	for _, m := range history {
		messages = append(messages, MessageItem{Role: string(m.Role), Text: m.Text})
	}
	return &HistoryResponse{Messages: messages}
}
