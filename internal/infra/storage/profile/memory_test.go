package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	values := map[string]string{
		KeyUserName:  "Nguyễn Văn An",
		KeyUserCCCD:  "079123456789",
		KeyUserPhone: "0901234567",
		KeyUserEmail: "an@example.com",
	}

	for key, value := range values {
		require.NoError(t, store.Set(ctx, "device-1", key, value))
	}

	for key, want := range values {
		got, err := store.Get(ctx, "device-1", key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Ключи изолированы по устройствам
	_, err := store.Get(ctx, "device-2", KeyUserName)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "device-1", KeyUserName)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "device-1", KeyChatLanguage, "vi"))
	require.NoError(t, store.Set(ctx, "device-1", KeyChatLanguage, "en"))

	got, err := store.Get(ctx, "device-1", KeyChatLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", got)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "device-1", KeyUserName, "Nguyễn Văn An"))
	require.NoError(t, store.Set(ctx, "device-1", KeyUserPhone, "0901234567"))
	require.NoError(t, store.Set(ctx, "device-1", KeyChatLanguage, "en"))

	// Выход очищает только пользовательские ключи
	require.NoError(t, store.Clear(ctx, "device-1", UserKeys...))

	_, err := store.Get(ctx, "device-1", KeyUserName)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, "device-1", KeyUserPhone)
	assert.ErrorIs(t, err, ErrNotFound)

	language, err := store.Get(ctx, "device-1", KeyChatLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", language)
}
