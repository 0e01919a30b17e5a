package utils

import (
	"time"
)

// DefaultSlotStep is used when no service duration is known yet.
const DefaultSlotStep = 30 * time.Minute

// SlotsForDate projects the weekly schedule onto a concrete date: the
// matching weekday rule decides, and an available day yields candidate start
// times stepping [StartTime, EndTime) by step. A closed day yields nothing.
func SlotsForDate(professionalID uint, date time.Time, step time.Duration) ([]string, error) {
	week, err := LoadWeek(professionalID)
	if err != nil {
		return nil, err
	}
	rule := week[int(date.Weekday())]
	if !rule.IsAvailable {
		return []string{}, nil
	}

	start, err := ParseClock(rule.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(rule.EndTime)
	if err != nil {
		return nil, err
	}
	if step <= 0 {
		step = DefaultSlotStep
	}

	slots := []string{}
	for t := start; t.Before(end); t = t.Add(step) {
		slots = append(slots, t.Format(ClockLayout))
	}
	return slots, nil
}
