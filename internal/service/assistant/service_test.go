package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-taythanh/STT-CitizenService/internal/infra/storage/profile"
	"github.com/smart-taythanh/STT-CitizenService/internal/integrations/gemini"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBackend struct {
	reply   string
	err     error
	entered chan struct{} // закрывается при входе в Send (если задан)
	release chan struct{} // Send блокируется до закрытия (если задан)

	gotHistory []gemini.Message
	gotInput   string
}

func (b *fakeBackend) Send(_ context.Context, history []gemini.Message, input string) (string, error) {
	b.gotHistory = history
	b.gotInput = input
	if b.entered != nil {
		close(b.entered)
		b.entered = nil
	}
	if b.release != nil {
		<-b.release
	}
	return b.reply, b.err
}

func newTestService(backend *fakeBackend) *Service {
	return NewService(backend, profile.NewMemoryStore(), nil, nopLogger{})
}

func TestSend(t *testing.T) {
	backend := &fakeBackend{reply: "Chào anh/chị!"}
	svc := newTestService(backend)
	ctx := context.Background()

	reply, err := svc.Send(ctx, "device-1", "  Xin chào  ")
	require.NoError(t, err)
	assert.Equal(t, "Chào anh/chị!", reply.Text)
	assert.False(t, reply.Fallback)
	assert.Equal(t, "Xin chào", backend.gotInput, "input is trimmed")

	// Диалог пополнился парой сообщений
	history, err := svc.History(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, gemini.RoleUser, history[0].Role)
	assert.Equal(t, "Xin chào", history[0].Text)
	assert.Equal(t, gemini.RoleModel, history[1].Role)
}

func TestSendEmptyInput(t *testing.T) {
	svc := newTestService(&fakeBackend{})
	_, err := svc.Send(context.Background(), "device-1", "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSendBackendFailureYieldsFallback(t *testing.T) {
	backend := &fakeBackend{err: errors.New("backend down")}
	svc := newTestService(backend)
	ctx := context.Background()

	reply, err := svc.Send(ctx, "device-1", "Xin chào")
	require.NoError(t, err, "backend failure is not an error for the caller")
	assert.True(t, reply.Fallback)
	assert.Equal(t, packFor("vi").Fallback, reply.Text)

	// История консистентна: вопрос и заглушка на месте
	history, err := svc.History(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, packFor("vi").Fallback, history[1].Text)
}

func TestSendRejectsConcurrentRequest(t *testing.T) {
	backend := &fakeBackend{
		reply:   "ok",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newTestService(backend)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Send(ctx, "device-1", "first")
		done <- err
	}()

	<-backend.entered

	// Второй запрос того же устройства отклоняется, пока первый в полете
	_, err := svc.Send(ctx, "device-1", "second")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(backend.release)
	require.NoError(t, <-done)

	// После завершения слот освобожден
	reply, err := svc.Send(ctx, "device-1", "third")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply.Text)
}

func TestHistorySeedsGreeting(t *testing.T) {
	svc := newTestService(&fakeBackend{})
	ctx := context.Background()

	history, err := svc.History(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, gemini.RoleModel, history[0].Role)
	assert.Equal(t, packFor("vi").Greeting, history[0].Text)
}

func TestPreferences(t *testing.T) {
	svc := newTestService(&fakeBackend{})
	ctx := context.Background()

	// Дефолты
	prefs, err := svc.GetPreferences(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "vi", prefs.Language)
	assert.Empty(t, prefs.Avatar)

	err = svc.SetPreferences(ctx, "device-1", Preferences{Language: "en", Avatar: "robot"})
	require.NoError(t, err)

	prefs, err = svc.GetPreferences(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, "en", prefs.Language)
	assert.Equal(t, "robot", prefs.Avatar)

	// Английское приветствие для нового диалога
	history, err := svc.History(ctx, "device-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, packFor("en").Greeting, history[0].Text)

	err = svc.SetPreferences(ctx, "device-1", Preferences{Language: "fr"})
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}
