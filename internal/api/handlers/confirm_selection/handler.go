package confirm_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

const (
	msgSessionNotFound     = "không tìm thấy phiên đặt lịch"
	msgAccessDenied        = "phiên đặt lịch thuộc về thiết bị khác"
	msgWrongStep           = "thao tác không hợp lệ ở bước hiện tại"
	msgSelectionIncomplete = "vui lòng chọn dịch vụ và khung giờ trước khi tiếp tục"
)

type Handler struct {
	sessionSvc SessionService
	logger     Logger
}

func NewHandler(sessionSvc SessionService, logger Logger) *Handler {
	return &Handler{
		sessionSvc: sessionSvc,
		logger:     logger,
	}
}

// Handle POST /api/v1/booking/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.sessionSvc.ConfirmSelection(r.Context(), deviceID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /booking/sessions/{id}/confirm - Not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("POST /booking/sessions/{id}/confirm - Access denied: session=%s, device=%s", sessionID, deviceID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, sessions.ErrWrongStep):
			h.logger.Warn("POST /booking/sessions/{id}/confirm - Wrong step: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, sessions.ErrSelectionIncomplete):
			h.logger.Warn("POST /booking/sessions/{id}/confirm - Selection incomplete: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgSelectionIncomplete)

		default:
			h.logger.Error("POST /booking/sessions/{id}/confirm - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/sessions/{id}/confirm - Session advanced: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
