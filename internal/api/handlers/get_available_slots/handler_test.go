package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/smart-taythanh/STT-CitizenService/internal/usecase/get_available_slots"
	"github.com/smart-taythanh/STT-CitizenService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	useCase := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:        time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC),
			MorningOnly: true,
			Slots: []getAvailableSlots.Slot{
				{Label: "07:30 - 08:00", StartTime: types.TimeString("07:30"), EndTime: types.TimeString("08:00")},
			},
		},
	}
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking/available-slots?date=2025-05-24", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-05-24", resp.Date)
	assert.True(t, resp.MorningOnly)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "07:30 - 08:00", resp.Slots[0].Label)
	assert.Equal(t, "07:30", resp.Slots[0].StartTime)
}

func TestHandleBadRequests(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		useCaseErr error
		wantStatus int
	}{
		{
			name:       "missing date",
			url:        "/api/v1/booking/available-slots",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed date",
			url:        "/api/v1/booking/available-slots?date=24-05-2025",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "past date",
			url:        "/api/v1/booking/available-slots?date=2025-05-01",
			useCaseErr: getAvailableSlots.ErrInvalidDate,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "outside horizon",
			url:        "/api/v1/booking/available-slots?date=2025-07-01",
			useCaseErr: getAvailableSlots.ErrDateNotBookable,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.useCaseErr}, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
