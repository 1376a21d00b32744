package start_booking

import (
	"net/http"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
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

// Handle POST /api/v1/booking/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	session, err := h.sessionSvc.Start(r.Context(), deviceID)
	if err != nil {
		h.logger.Error("POST /booking/sessions - Failed to start session: device=%s, error=%v", deviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking/sessions - Session started: id=%s, device=%s", session.ID, deviceID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSession(session))
}
