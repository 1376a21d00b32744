package chat_preferences

import (
	"errors"
	"net/http"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/assistant"
)

const (
	msgInvalidRequestBody  = "nội dung yêu cầu không hợp lệ"
	msgUnsupportedLanguage = "ngôn ngữ không được hỗ trợ, chọn \"vi\" hoặc \"en\""
)

// PreferencesModel HTTP модель персонализации чата
type PreferencesModel struct {
	Avatar   string `json:"avatar"`
	Language string `json:"language"`
}

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

// HandleGet GET /api/v1/assistant/preferences
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	prefs, err := h.assistantSvc.GetPreferences(r.Context(), deviceID)
	if err != nil {
		h.logger.Error("GET /assistant/preferences - Failed: device=%s, error=%v", deviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PreferencesModel{
		Avatar:   prefs.Avatar,
		Language: prefs.Language,
	})
}

// HandleSet PUT /api/v1/assistant/preferences
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	var req PreferencesModel
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /assistant/preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.assistantSvc.SetPreferences(r.Context(), deviceID, assistant.Preferences{
		Avatar:   req.Avatar,
		Language: req.Language,
	})
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrUnsupportedLanguage):
			handlers.RespondBadRequest(w, msgUnsupportedLanguage)

		default:
			h.logger.Error("PUT /assistant/preferences - Failed: device=%s, error=%v", deviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	prefs, err := h.assistantSvc.GetPreferences(r.Context(), deviceID)
	if err != nil {
		h.logger.Error("PUT /assistant/preferences - Failed to reread: device=%s, error=%v", deviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PreferencesModel{
		Avatar:   prefs.Avatar,
		Language: prefs.Language,
	})
}
