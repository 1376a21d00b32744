package complete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	completeBooking "github.com/smart-taythanh/STT-CitizenService/internal/usecase/complete_booking"
)

const (
	msgInvalidRequestBody   = "nội dung yêu cầu không hợp lệ"
	msgSessionNotFound      = "không tìm thấy phiên đặt lịch"
	msgAccessDenied         = "phiên đặt lịch thuộc về thiết bị khác"
	msgWrongStep            = "thao tác không hợp lệ ở bước hiện tại"
	msgInvalidPersonalInfo  = "vui lòng kiểm tra họ tên, số CCCD (12 chữ số) và số điện thoại"
)

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/sessions/{sessionId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())
	sessionID := mux.Vars(r)["sessionId"]

	var req CompleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/sessions/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(deviceID, sessionID))
	if err != nil {
		switch {
		case errors.Is(err, completeBooking.ErrSessionNotFound):
			h.logger.Warn("POST /booking/sessions/{id}/complete - Not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, completeBooking.ErrAccessDenied):
			h.logger.Warn("POST /booking/sessions/{id}/complete - Access denied: session=%s, device=%s", sessionID, deviceID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, completeBooking.ErrWrongStep):
			h.logger.Warn("POST /booking/sessions/{id}/complete - Wrong step: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgWrongStep)

		case errors.Is(err, completeBooking.ErrInvalidPersonalInfo),
			errors.Is(err, completeBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking/sessions/{id}/complete - Invalid personal info: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidPersonalInfo)

		default:
			h.logger.Error("POST /booking/sessions/{id}/complete - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/sessions/{id}/complete - Booking confirmed: code=%s, session=%s",
		result.Code, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
