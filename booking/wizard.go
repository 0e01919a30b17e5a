package booking

import (
	"time"

	"github.com/tucita/tucita-api/models"
	"github.com/tucita/tucita-api/utils"
)

// Step is the wizard position. The flow is strictly linear:
// service -> date -> time -> review -> done.
type Step int

const (
	StepService Step = iota + 1
	StepDate
	StepTime
	StepReview
	StepDone
)

// DateWindowDays is the fixed forward window of the date strip. Fully closed
// days are not suppressed; the strip always covers the whole window.
const DateWindowDays = 14

// Wizard holds the in-progress booking selection for one customer against
// one professional. Selections survive backward navigation, except that
// picking a new date drops any previously chosen time.
type Wizard struct {
	CustomerID     uint    `json:"customer_id"`
	ProfessionalID uint    `json:"professional_id"`
	Step           Step    `json:"step"`
	ServiceID      uint    `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	Price          float64 `json:"price"`
	DurationMin    int     `json:"duration_minutes"`
	Date           string  `json:"date"` // "YYYY-MM-DD"
	Time           string  `json:"time"` // "HH:MM"
}

func New(customerID, professionalID uint) *Wizard {
	return &Wizard{
		CustomerID:     customerID,
		ProfessionalID: professionalID,
		Step:           StepService,
	}
}

// SelectService records the chosen service, snapshotting price and duration.
func (w *Wizard) SelectService(svc models.Service) {
	w.ServiceID = svc.ID
	w.ServiceName = svc.Name
	w.Price = svc.Price
	w.DurationMin = svc.DurationMinutes
	if w.Step < StepDate {
		w.Step = StepDate
	}
}

// SelectDate records the chosen date. A time picked for a previous date is
// invalidated: the time belongs to the date and is not valid on its own.
func (w *Wizard) SelectDate(date string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return err
	}
	if w.Time != "" && w.Date != date {
		w.Time = ""
	}
	w.Date = date
	if w.Step < StepTime {
		w.Step = StepTime
	} else if w.Time == "" {
		w.Step = StepTime
	}
	return nil
}

// SelectTime records the chosen start time for the already chosen date.
func (w *Wizard) SelectTime(t string) error {
	if _, err := utils.ParseClock(t); err != nil {
		return err
	}
	w.Time = t
	if w.Step < StepReview {
		w.Step = StepReview
	}
	return nil
}

// Validate reports the selections still missing for submission. A non-empty
// result blocks confirmation before any store call is made.
func (w *Wizard) Validate() map[string]string {
	problems := make(map[string]string)
	if w.ServiceID == 0 {
		problems["service"] = "select a service"
	}
	if w.Date == "" {
		problems["date"] = "select a date"
	}
	if w.Time == "" {
		problems["time"] = "select a time"
	}
	return problems
}

// Complete moves the wizard to its terminal step.
func (w *Wizard) Complete() {
	w.Step = StepDone
}

// DateStrip returns the bookable date strip: today plus the next 13 days,
// unconditionally. It deliberately does not consult the weekly schedule to
// hide closed days.
func DateStrip(today time.Time) []string {
	dates := make([]string, 0, DateWindowDays)
	for i := 0; i < DateWindowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(utils.DateLayout))
	}
	return dates
}
