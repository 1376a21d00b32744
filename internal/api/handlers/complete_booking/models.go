package complete_booking

import (
	"time"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	completeBooking "github.com/smart-taythanh/STT-CitizenService/internal/usecase/complete_booking"
)

// CompleteBookingRequest HTTP request model
type CompleteBookingRequest struct {
	Name  string  `json:"name"`
	CCCD  string  `json:"cccd"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
	Note  *string `json:"note,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompleteBookingRequest) ToUseCaseRequest(deviceID, sessionID string) *completeBooking.Request {
	return &completeBooking.Request{
		DeviceID:  deviceID,
		SessionID: sessionID,
		Name:      r.Name,
		CCCD:      r.CCCD,
		Phone:     r.Phone,
		Email:     r.Email,
		Note:      r.Note,
	}
}

// ConfirmationResponse HTTP response model подтвержденной записи
type ConfirmationResponse struct {
	SessionID      string `json:"sessionId"`
	Code           string `json:"code"`
	Service        string `json:"service"`
	Counter        string `json:"counter"`
	Date           string `json:"date"`      // YYYY-MM-DD
	DateLabel      string `json:"dateLabel"` // DD/MM/YYYY
	TimeSlot       string `json:"timeSlot"`
	StartTime      string `json:"startTime"`
	Name           string `json:"name"`
	CCCD           string `json:"cccd"`
	NotificationID int64  `json:"notificationId"`
	CreatedAt      string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeBooking.Response) *ConfirmationResponse {
	return &ConfirmationResponse{
		SessionID:      resp.SessionID,
		Code:           resp.Code,
		Service:        resp.Service,
		Counter:        resp.Counter,
		Date:           resp.Date.Format(domain.DateFormat),
		DateLabel:      resp.DateLabel,
		TimeSlot:       resp.TimeSlot,
		StartTime:      resp.StartTime.String(),
		Name:           resp.Name,
		CCCD:           resp.CCCD,
		NotificationID: resp.NotificationID,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
