package get_booking_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

const (
	msgSessionNotFound = "không tìm thấy phiên đặt lịch"
	msgAccessDenied    = "phiên đặt lịch thuộc về thiết bị khác"
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

// Handle GET /api/v1/booking/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.sessionSvc.Get(r.Context(), deviceID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /booking/sessions/{id} - Not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /booking/sessions/{id} - Access denied: session=%s, device=%s", sessionID, deviceID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("GET /booking/sessions/{id} - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
