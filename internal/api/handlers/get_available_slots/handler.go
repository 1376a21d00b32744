package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	getAvailableSlots "github.com/smart-taythanh/STT-CitizenService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "thiếu tham số date"
	msgInvalidDate     = "định dạng ngày không hợp lệ, yêu cầu YYYY-MM-DD"
	msgDateInPast      = "ngày đã chọn nằm trong quá khứ"
	msgDateNotBookable = "ngày đã chọn không nằm trong lịch tiếp nhận"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /booking/available-slots - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /booking/available-slots - Date in the past: %s", raw)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateNotBookable):
			h.logger.Warn("GET /booking/available-slots - Date not bookable: %s", raw)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /booking/available-slots - Failed: date=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
