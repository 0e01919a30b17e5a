package models

import (
	"fmt"

	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d DayOfWeek) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d]
}

// AvailabilityRule is the per-weekday open/closed flag plus time window for a
// professional. A professional always has exactly 7 logical rules; days that
// were never persisted are filled in with defaults at load time.
type AvailabilityRule struct {
	gorm.Model
	ProfessionalID uint      `json:"professional_id" gorm:"index"`
	Professional   User      `json:"-" gorm:"foreignKey:ProfessionalID"`
	DayOfWeek      DayOfWeek `json:"day_of_week"`
	IsAvailable    bool      `json:"is_available"`
	StartTime      string    `json:"start_time"` // "HH:MM", 24h
	EndTime        string    `json:"end_time"`   // "HH:MM", 24h
}

// DefaultWeek is the schedule a professional starts with: Monday to Friday
// 09:00-18:00 open, weekend closed.
func DefaultWeek(professionalID uint) []AvailabilityRule {
	week := make([]AvailabilityRule, 7)
	for d := Sunday; d <= Saturday; d++ {
		week[d] = AvailabilityRule{
			ProfessionalID: professionalID,
			DayOfWeek:      d,
			StartTime:      "09:00",
			EndTime:        "18:00",
			IsAvailable:    d != Sunday && d != Saturday,
		}
	}
	return week
}

// MergeWeek overlays persisted rules on the default week so the result always
// has exactly one rule per weekday, indexed by DayOfWeek.
func MergeWeek(professionalID uint, persisted []AvailabilityRule) []AvailabilityRule {
	week := DefaultWeek(professionalID)
	for d := range week {
		if DayOfWeek(d) != Sunday && DayOfWeek(d) != Saturday {
			// Persisted-day absence means closed, not the signup default.
			week[d].IsAvailable = false
		}
	}
	if len(persisted) == 0 {
		return DefaultWeek(professionalID)
	}
	for _, rule := range persisted {
		if rule.DayOfWeek < Sunday || rule.DayOfWeek > Saturday {
			continue
		}
		week[rule.DayOfWeek] = rule
	}
	return week
}

// DayValidationError flags a single invalid day so callers can point at the
// offending row instead of failing the whole schedule at once.
type DayValidationError struct {
	Day    DayOfWeek `json:"day_of_week"`
	Reason string    `json:"reason"`
}

func (e DayValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Day, e.Reason)
}

// ValidateWeek checks every rule and returns one error per invalid day. A day
// marked available must have StartTime strictly before EndTime; "HH:MM"
// strings order lexicographically.
func ValidateWeek(rules []AvailabilityRule) []DayValidationError {
	var errs []DayValidationError
	for _, rule := range rules {
		if !rule.IsAvailable {
			continue
		}
		switch {
		case rule.StartTime == "" || rule.EndTime == "":
			errs = append(errs, DayValidationError{Day: rule.DayOfWeek, Reason: "start and end time are required"})
		case rule.StartTime >= rule.EndTime:
			errs = append(errs, DayValidationError{Day: rule.DayOfWeek, Reason: "end time must be after start time"})
		}
	}
	return errs
}
