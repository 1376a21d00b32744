package chat_message

import (
	"errors"
	"net/http"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/assistant"
)

const (
	msgInvalidRequestBody = "nội dung yêu cầu không hợp lệ"
	msgEmptyMessage       = "tin nhắn không được để trống"
	msgRequestInFlight    = "yêu cầu trước đó đang được xử lý, vui lòng chờ"
)

type Handler struct {
	assistantSvc AssistantService
	logger       Logger
}

func NewHandler(assistantSvc AssistantService, logger Logger) *Handler {
	return &Handler{
		assistantSvc: assistantSvc,
		logger:       logger,
	}
}

// HandleSend POST /api/v1/assistant/messages
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reply, err := h.assistantSvc.Send(r.Context(), deviceID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyInput):
			handlers.RespondBadRequest(w, msgEmptyMessage)

		case errors.Is(err, assistant.ErrRequestInFlight):
			h.logger.Warn("POST /assistant/messages - Request in flight: device=%s", deviceID)
			handlers.RespondError(w, http.StatusConflict, msgRequestInFlight)

		default:
			h.logger.Error("POST /assistant/messages - Failed: device=%s, error=%v", deviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReplyResponse{Reply: reply.Text, Fallback: reply.Fallback})
}

// HandleHistory GET /api/v1/assistant/messages
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	history, err := h.assistantSvc.History(r.Context(), deviceID)
	if err != nil {
		h.logger.Error("GET /assistant/messages - Failed: device=%s, error=%v", deviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromHistory(history))
}
