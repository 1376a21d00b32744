package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		wantErr bool
	}{
		{name: "valid morning slot", label: "07:30 - 08:00"},
		{name: "valid afternoon slot", label: "16:30 - 17:00"},
		{name: "missing separator", label: "07:30-08:00", wantErr: true},
		{name: "bad start time", label: "7:30 - 08:00", wantErr: true},
		{name: "bad end time", label: "07:30 - 8:00", wantErr: true},
		{name: "start equals end", label: "08:00 - 08:00", wantErr: true},
		{name: "start after end", label: "09:00 - 08:30", wantErr: true},
		{name: "empty", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := ParseTimeSlot(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSlotLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.label, slot.Label)
			assert.True(t, slot.Start.IsBefore(slot.End))
		})
	}
}

func TestTimeSlotIsMorning(t *testing.T) {
	morning, err := ParseTimeSlot("11:00 - 11:30")
	require.NoError(t, err)
	assert.True(t, morning.IsMorning())

	afternoon, err := ParseTimeSlot("13:30 - 14:00")
	require.NoError(t, err)
	assert.False(t, afternoon.IsMorning())
}
