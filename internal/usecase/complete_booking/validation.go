package complete_booking

import (
	"fmt"
	"strings"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.DeviceID) == "" {
		return fmt.Errorf("%w: deviceID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SessionID) == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPersonalInfo)
	}

	if !domain.IsValidCCCD(req.CCCD) {
		return fmt.Errorf("%w: cccd must be exactly %d digits", ErrInvalidPersonalInfo, domain.CCCDLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidPersonalInfo)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note is too long", ErrInvalidInput)
	}

	return nil
}
