package update_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "nội dung yêu cầu không hợp lệ"
	msgInvalidDate        = "định dạng ngày không hợp lệ, yêu cầu YYYY-MM-DD"
	msgSessionNotFound    = "không tìm thấy phiên đặt lịch"
	msgAccessDenied       = "phiên đặt lịch thuộc về thiết bị khác"
	msgWrongStep          = "thao tác không hợp lệ ở bước hiện tại"
	msgUnknownService     = "dịch vụ không có trong danh mục"
	msgDateNotBookable    = "ngày đã chọn không nằm trong lịch tiếp nhận"
	msgSlotNotAvailable   = "khung giờ không khả dụng cho ngày đã chọn"
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

// Handle PUT /api/v1/booking/sessions/{sessionId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking/sessions/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	upd, err := req.ToServiceUpdate()
	if err != nil {
		h.logger.Warn("PUT /booking/sessions/{id}/selection - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	session, err := h.sessionSvc.UpdateSelection(r.Context(), deviceID, sessionID, upd)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PUT /booking/sessions/{id}/selection - Not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrAccessDenied):
			h.logger.Warn("PUT /booking/sessions/{id}/selection - Access denied: session=%s, device=%s", sessionID, deviceID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, sessions.ErrWrongStep):
			h.logger.Warn("PUT /booking/sessions/{id}/selection - Wrong step: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, sessions.ErrUnknownService):
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, sessions.ErrDateNotBookable):
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, sessions.ErrSlotNotAvailable):
			handlers.RespondBadRequest(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PUT /booking/sessions/{id}/selection - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
