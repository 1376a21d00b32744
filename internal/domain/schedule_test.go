package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-05-15 - четверг
func thursday() time.Time {
	return time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
}

func TestAvailableDates(t *testing.T) {
	today := thursday()
	dates := AvailableDates(today, HorizonBusinessDays)

	require.Len(t, dates, HorizonBusinessDays)

	// Первая дата - завтра, сегодняшний день не предлагается
	assert.Equal(t, "2025-05-16", dates[0].Format(DateFormat))

	for i, date := range dates {
		assert.NotEqual(t, time.Sunday, date.Weekday(),
			"date %s must not be a Sunday", date.Format(DateFormat))
		assert.True(t, date.After(today.Truncate(24*time.Hour)),
			"date %s must be in the future", date.Format(DateFormat))

		if i > 0 {
			assert.True(t, dates[i-1].Before(date), "dates must be strictly increasing")
		}
	}

	// Два воскресенья (18 и 25 мая) пропущены, горизонт закрывается 31 мая
	assert.Equal(t, "2025-05-31", dates[len(dates)-1].Format(DateFormat))
}

func TestAvailableDatesSkipsSundayStart(t *testing.T) {
	// Суббота: завтра воскресенье, первая дата - понедельник
	saturday := time.Date(2025, 5, 17, 9, 0, 0, 0, time.UTC)
	dates := AvailableDates(saturday, 5)

	require.NotEmpty(t, dates)
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, "2025-05-19", dates[0].Format(DateFormat))
}

func TestIsBookableDate(t *testing.T) {
	today := thursday()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{
			name: "tomorrow is bookable",
			date: time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "today is not bookable",
			date: today,
			want: false,
		},
		{
			name: "sunday inside the horizon is not bookable",
			date: time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "last horizon date is bookable",
			date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "date beyond the horizon is not bookable",
			date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "past date is not bookable",
			date: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBookableDate(tt.date, today, HorizonBusinessDays))
		})
	}
}

func TestValidSlotsForWeekday(t *testing.T) {
	now := thursday()
	// Будний день в будущем: каталог целиком
	date := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	slots := ValidSlotsFor(date, now)
	assert.Len(t, slots, 15)
}

func TestValidSlotsForSaturday(t *testing.T) {
	now := thursday()
	saturday := time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	slots := ValidSlotsFor(saturday, now)
	require.Len(t, slots, 8, "saturday keeps only the morning block")
	for _, slot := range slots {
		assert.True(t, slot.IsMorning(), "slot %q must be a morning slot", slot.Label)
	}
}

func TestValidSlotsForToday(t *testing.T) {
	// Сегодня 10:00: слоты с началом не позже 10:00 отфильтрованы
	now := thursday()

	slots := ValidSlotsFor(now, now)
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:30 - 11:00", slots[0].Label,
		"slot starting exactly now is already unavailable")
	for _, slot := range slots {
		assert.Greater(t, slot.Start.String(), "10:00")
	}
}

func TestValidSlotsForSaturdayToday(t *testing.T) {
	// Оба фильтра вместе: суббота, 09:15 утра
	now := time.Date(2025, 5, 24, 9, 15, 0, 0, time.UTC)

	slots := ValidSlotsFor(now, now)
	require.Len(t, slots, 4)
	assert.Equal(t, "09:30 - 10:00", slots[0].Label)
	assert.Equal(t, "11:00 - 11:30", slots[len(slots)-1].Label)
}

func TestIsValidSlotFor(t *testing.T) {
	now := thursday()
	saturday := time.Date(2025, 5, 24, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsValidSlotFor("08:00 - 08:30", saturday, now))
	assert.False(t, IsValidSlotFor("14:00 - 14:30", saturday, now),
		"afternoon slot is not selectable on Saturday")
	assert.False(t, IsValidSlotFor("bogus", saturday, now))
}
