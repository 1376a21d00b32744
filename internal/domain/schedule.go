package domain

import "time"

// AvailableDates returns the ordered list of dates open for booking:
// count business dates starting from the day after today, Sundays skipped.
// Recomputed fresh on every call, deterministic for a fixed today.
func AvailableDates(today time.Time, count int) []time.Time {
	dates := make([]time.Time, 0, count)

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for len(dates) < count {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, day)
	}

	return dates
}

// IsBookableDate returns true if date belongs to AvailableDates(today, count)
func IsBookableDate(date, today time.Time, count int) bool {
	for _, d := range AvailableDates(today, count) {
		if IsSameDay(d, date) {
			return true
		}
	}
	return false
}

// ValidSlotsFor returns the catalog slots selectable for the given date.
// Saturday keeps only morning slots; a date equal to now's calendar day
// keeps only slots starting strictly after now. Both filters compose.
func ValidSlotsFor(date, now time.Time) []TimeSlot {
	slots := AllTimeSlots()

	if date.Weekday() == time.Saturday {
		morning := make([]TimeSlot, 0, len(slots))
		for _, slot := range slots {
			if slot.IsMorning() {
				morning = append(morning, slot)
			}
		}
		slots = morning
	}

	if IsSameDay(date, now) {
		nowTime := now.Format(TimeFormat)
		future := make([]TimeSlot, 0, len(slots))
		for _, slot := range slots {
			// Строгое неравенство: слот, начинающийся ровно сейчас, уже недоступен
			if slot.Start.String() > nowTime {
				future = append(future, slot)
			}
		}
		slots = future
	}

	return slots
}

// IsValidSlotFor returns true if the slot label is selectable for the date
func IsValidSlotFor(label string, date, now time.Time) bool {
	for _, slot := range ValidSlotsFor(date, now) {
		if slot.Label == label {
			return true
		}
	}
	return false
}

// IsSameDay проверяет, что две даты относятся к одному календарному дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
