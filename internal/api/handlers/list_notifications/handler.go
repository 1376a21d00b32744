package list_notifications

import (
	"net/http"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
)

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

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	items, err := h.notificationSvc.List(r.Context(), deviceID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed: device=%s, error=%v", deviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	unread, err := h.notificationSvc.UnreadCount(r.Context(), deviceID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to count unread: device=%s, error=%v", deviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(items, unread))
}
