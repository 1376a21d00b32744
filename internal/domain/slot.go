package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smart-taythanh/STT-CitizenService/pkg/types"
)

var (
	// ErrInvalidSlotLabel возвращается при некорректной метке слота
	ErrInvalidSlotLabel = errors.New("domain: invalid time slot label")
)

// TimeSlot represents one fixed half-hour appointment window
type TimeSlot struct {
	Label string           // "08:00 - 08:30"
	Start types.TimeString // "08:00"
	End   types.TimeString // "08:30"
}

// ParseTimeSlot разбирает метку вида "HH:MM - HH:MM"
func ParseTimeSlot(label string) (TimeSlot, error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	start, err := types.NewTimeStringFromString(parts[0])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	end, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	if !start.IsBefore(end) {
		return TimeSlot{}, fmt.Errorf("%w: start is not before end in %q", ErrInvalidSlotLabel, label)
	}

	return TimeSlot{Label: label, Start: start, End: end}, nil
}

// StartHour returns the hour the slot starts at (0-23)
func (s TimeSlot) StartHour() int {
	hour, err := s.Start.Hour()
	if err != nil {
		return 0
	}
	return hour
}

// IsMorning returns true for slots starting before noon
func (s TimeSlot) IsMorning() bool {
	return s.StartHour() < SaturdayLastHour
}
