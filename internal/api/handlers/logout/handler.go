package logout

import (
	"net/http"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/storage/profile"
)

type Handler struct {
	profileStore ProfileStore
	logger       Logger
}

func NewHandler(profileStore ProfileStore, logger Logger) *Handler {
	return &Handler{
		profileStore: profileStore,
		logger:       logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	if err := h.profileStore.Clear(r.Context(), deviceID, profile.UserKeys...); err != nil {
		h.logger.Error("POST /auth/logout - Failed to clear profile: device=%s, error=%v", deviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Profile cleared: device=%s", deviceID)
	w.WriteHeader(http.StatusNoContent)
}
