package login

import (
	"net/http"
	"strings"

	"github.com/smart-taythanh/STT-CitizenService/internal/api/handlers"
	"github.com/smart-taythanh/STT-CitizenService/internal/api/middleware"
	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/internal/infra/storage/profile"
)

const (
	msgInvalidRequestBody = "nội dung yêu cầu không hợp lệ"
	msgMissingName        = "vui lòng nhập họ tên"
	msgInvalidCCCD        = "số CCCD phải gồm đúng 12 chữ số"
	msgMissingPhone       = "vui lòng nhập số điện thoại"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Name  string  `json:"name"`
	CCCD  string  `json:"cccd"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Name  string  `json:"name"`
	CCCD  string  `json:"cccd"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" {
		handlers.RespondBadRequest(w, msgMissingName)
		return
	}
	if !domain.IsValidCCCD(req.CCCD) {
		handlers.RespondBadRequest(w, msgInvalidCCCD)
		return
	}
	if req.Phone == "" {
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	values := map[string]string{
		profile.KeyUserName:  req.Name,
		profile.KeyUserCCCD:  req.CCCD,
		profile.KeyUserPhone: req.Phone,
	}
	if req.Email != nil && *req.Email != "" {
		values[profile.KeyUserEmail] = *req.Email
	}

	for key, value := range values {
		if err := h.profileStore.Set(r.Context(), deviceID, key, value); err != nil {
			h.logger.Error("POST /auth/login - Failed to store %s: device=%s, error=%v", key, deviceID, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("POST /auth/login - Profile stored: device=%s", deviceID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Name:  req.Name,
		CCCD:  req.CCCD,
		Phone: req.Phone,
		Email: req.Email,
	})
}
