package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/pkg/ptr"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-05-15 - четверг
func newTestService() (*Service, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)}
	svc := NewService(domain.HorizonBusinessDays, nopLogger{}).WithTimeProvider(clock)
	return svc, clock
}

func TestStart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "device-1", session.DeviceID)
	assert.Equal(t, domain.StepSelection, session.Step)
	assert.Empty(t, session.Draft.Service)
	assert.Empty(t, session.Draft.TimeSlot)
	// Дата по умолчанию - первая доступная (завтра)
	assert.Equal(t, "2025-05-16", session.Draft.Date.Format(domain.DateFormat))

	_, err = svc.Start(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "device-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.Get(ctx, "device-1", "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Get(ctx, "device-2", session.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateSelection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	updated, err := svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Service:  ptr.Ptr(domain.Services[0]),
		Date:     ptr.Ptr(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
		TimeSlot: ptr.Ptr("08:00 - 08:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Services[0], updated.Draft.Service)
	assert.Equal(t, "2025-05-20", updated.Draft.Date.Format(domain.DateFormat))
	assert.Equal(t, "08:00 - 08:30", updated.Draft.TimeSlot)
}

func TestUpdateSelectionValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Service: ptr.Ptr("Dịch vụ không tồn tại"),
	})
	assert.ErrorIs(t, err, ErrUnknownService)

	// Воскресенье внутри горизонта
	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Date: ptr.Ptr(time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC)),
	})
	assert.ErrorIs(t, err, ErrDateNotBookable)

	// Дневной слот по субботе
	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Date: ptr.Ptr(time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		TimeSlot: ptr.Ptr("14:00 - 14:30"),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUpdateSelectionClearsInvalidSlotOnDateChange(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	// Будний день, дневной слот
	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Date:     ptr.Ptr(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
		TimeSlot: ptr.Ptr("14:00 - 14:30"),
	})
	require.NoError(t, err)

	// Переход на субботу: дневной слот сбрасывается
	updated, err := svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Date: ptr.Ptr(time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Draft.TimeSlot)

	// Утренний слот переживает смену даты на будний день
	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		TimeSlot: ptr.Ptr("08:00 - 08:30"),
	})
	require.NoError(t, err)
	updated, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Date: ptr.Ptr(time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00 - 08:30", updated.Draft.TimeSlot)
}

func TestConfirmSelection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	// Гард: без услуги и слота подтверждение невозможно
	_, err = svc.ConfirmSelection(ctx, "device-1", session.ID)
	assert.ErrorIs(t, err, ErrSelectionIncomplete)

	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Service:  ptr.Ptr(domain.Services[0]),
		TimeSlot: ptr.Ptr("08:00 - 08:30"),
	})
	require.NoError(t, err)

	confirmed, err := svc.ConfirmSelection(ctx, "device-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPersonalInfo, confirmed.Step)

	// На шаге PersonalInfo выбор менять нельзя
	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		TimeSlot: ptr.Ptr("09:00 - 09:30"),
	})
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestBackPreservesDraft(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Service:  ptr.Ptr(domain.Services[1]),
		TimeSlot: ptr.Ptr("09:00 - 09:30"),
	})
	require.NoError(t, err)
	_, err = svc.ConfirmSelection(ctx, "device-1", session.ID)
	require.NoError(t, err)

	back, err := svc.Back(ctx, "device-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelection, back.Step)
	assert.Equal(t, domain.Services[1], back.Draft.Service)
	assert.Equal(t, "09:00 - 09:30", back.Draft.TimeSlot)

	// Back разрешен только с шага PersonalInfo
	_, err = svc.Back(ctx, "device-1", session.ID)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestComplete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Service:  ptr.Ptr(domain.Services[0]),
		TimeSlot: ptr.Ptr("08:00 - 08:30"),
	})
	require.NoError(t, err)
	_, err = svc.ConfirmSelection(ctx, "device-1", session.ID)
	require.NoError(t, err)

	info := PersonalInfo{
		Name:  "Nguyễn Văn An",
		CCCD:  "079123456789",
		Phone: "0901234567",
	}
	record := &domain.BookingRecord{Code: "TT-1605-0800-42"}

	completed, err := svc.Complete(ctx, "device-1", session.ID, info, record)
	require.NoError(t, err)
	assert.Equal(t, domain.StepCompleted, completed.Step)
	require.NotNil(t, completed.Record)
	assert.Equal(t, "TT-1605-0800-42", completed.Record.Code)

	// Терминальный шаг: повторное завершение невозможно
	_, err = svc.Complete(ctx, "device-1", session.ID, info, record)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestCompleteRejectsInvalidPersonalInfo(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	session, err := svc.Start(ctx, "device-1")
	require.NoError(t, err)

	_, err = svc.UpdateSelection(ctx, "device-1", session.ID, SelectionUpdate{
		Service:  ptr.Ptr(domain.Services[0]),
		TimeSlot: ptr.Ptr("08:00 - 08:30"),
	})
	require.NoError(t, err)
	_, err = svc.ConfirmSelection(ctx, "device-1", session.ID)
	require.NoError(t, err)

	info := PersonalInfo{Name: "Nguyễn Văn An", CCCD: "123", Phone: "0901234567"}
	_, err = svc.Complete(ctx, "device-1", session.ID, info, &domain.BookingRecord{})
	assert.ErrorIs(t, err, ErrInvalidPersonalInfo)

	// Сессия осталась на шаге PersonalInfo с введенными данными
	got, err := svc.Get(ctx, "device-1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPersonalInfo, got.Step)
	assert.Equal(t, "Nguyễn Văn An", got.Draft.Name)
}
