package get_profile

import (
	"errors"
	"net/http"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/storage/profile"
)

// ProfileResponse HTTP response model префилла формы.
// Отсутствующие ключи отдаются пустыми строками.
type ProfileResponse struct {
	Name  string `json:"name"`
	CCCD  string `json:"cccd"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

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

// Handle GET /api/v1/auth/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	resp := ProfileResponse{}
	fields := map[string]*string{
		profile.KeyUserName:  &resp.Name,
		profile.KeyUserCCCD:  &resp.CCCD,
		profile.KeyUserPhone: &resp.Phone,
		profile.KeyUserEmail: &resp.Email,
	}

	for key, target := range fields {
		value, err := h.profileStore.Get(r.Context(), deviceID, key)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				continue
			}
			h.logger.Error("GET /auth/profile - Failed to read %s: device=%s, error=%v", key, deviceID, err)
			handlers.RespondInternalError(w)
			return
		}
		*target = value
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
