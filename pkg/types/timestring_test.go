package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "08:30"},
		{name: "midnight", input: "00:00"},
		{name: "last minute", input: "23:59"},
		{name: "single digit hour", input: "8:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "08:60", wantErr: true},
		{name: "no colon", input: "0830", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 5, 15, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
	assert.NoError(t, ts.Validate())
}

func TestTimeStringMinutesOfDay(t *testing.T) {
	ts := TimeString("13:30")
	minutes, err := ts.MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 13*60+30, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("16:30")
	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "17:00", shifted.String())
}

func TestTimeStringComparison(t *testing.T) {
	a := TimeString("08:00")
	b := TimeString("08:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("08:00").IsZero())
}
