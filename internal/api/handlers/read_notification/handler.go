package read_notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/service/notifications"
)

const (
	msgInvalidID            = "định danh thông báo không hợp lệ"
	msgNotificationNotFound = "không tìm thấy thông báo"
)

// ReadResponse HTTP response model
type ReadResponse struct {
	ID     int64 `json:"id"`
	IsRead bool  `json:"isRead"`
}

type Handler struct {
	notificationSvc NotificationService
	logger          Logger
}

func NewHandler(notificationSvc NotificationService, logger Logger) *Handler {
	return &Handler{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// Handle PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	item, err := h.notificationSvc.MarkRead(r.Context(), deviceID, id)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/{id}/read - Not found: id=%d, device=%s", id, deviceID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		default:
			h.logger.Error("PATCH /notifications/{id}/read - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReadResponse{ID: item.ID, IsRead: item.IsRead})
}
