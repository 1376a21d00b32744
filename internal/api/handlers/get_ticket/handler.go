package get_ticket

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/ticket"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

const (
	msgSessionNotFound = "không tìm thấy phiên đặt lịch"
	msgAccessDenied    = "phiên đặt lịch thuộc về thiết bị khác"
	msgNotCompleted    = "phiên đặt lịch chưa hoàn tất, chưa có phiếu hẹn"
)

type Handler struct {
	sessionSvc SessionService
	renderer   TicketRenderer
	logger     Logger
}

func NewHandler(sessionSvc SessionService, renderer TicketRenderer, logger Logger) *Handler {
	return &Handler{
		sessionSvc: sessionSvc,
		renderer:   renderer,
		logger:     logger,
	}
}

// Handle GET /api/v1/booking/sessions/{sessionId}/ticket
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.sessionSvc.Get(r.Context(), deviceID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /booking/sessions/{id}/ticket - Not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("GET /booking/sessions/{id}/ticket - Access denied: session=%s, device=%s", sessionID, deviceID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("GET /booking/sessions/{id}/ticket - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if session.Step != domain.StepCompleted || session.Record == nil {
		h.logger.Warn("GET /booking/sessions/{id}/ticket - Session not completed: session=%s, step=%s",
			sessionID, session.Step)
		handlers.RespondError(w, http.StatusConflict, msgNotCompleted)
		return
	}

	png, err := h.renderer.Render(session.Record)
	if err != nil {
		h.logger.Error("GET /booking/sessions/{id}/ticket - Render failed: code=%s, error=%v",
			session.Record.Code, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", ticket.FileName(session.Record.Code)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)

	h.logger.Info("GET /booking/sessions/{id}/ticket - Ticket served: code=%s, bytes=%d",
		session.Record.Code, len(png))
}
