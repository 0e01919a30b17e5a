// Package notify is the best-effort notification side channel. Events are
// emitted fire-and-forget: a failed delivery is logged and dropped, never
// surfaced, retried, or allowed to affect the primary operation.
package notify

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/tucita/tucita-api/utils"
)

type EventType string

const (
	EventCreated   EventType = "created"
	EventConfirmed EventType = "confirmed"
	EventCancelled EventType = "cancelled"
)

// Event describes one appointment notification to deliver.
type Event struct {
	ID            string            `json:"id"`
	Type          EventType         `json:"type"`
	AppointmentID uint              `json:"appointment_id"`
	TargetContact string            `json:"target_contact"`
	TemplateData  map[string]string `json:"template_data"`
}

// Dispatcher delivers a single event. Implementations may fail; Emit owns
// swallowing those failures.
type Dispatcher interface {
	Dispatch(e Event) error
}

var dispatcher Dispatcher = EmailDispatcher{}

// SetDispatcher swaps the delivery transport. Tests install a recorder here.
func SetDispatcher(d Dispatcher) {
	dispatcher = d
}

// Emit delivers e asynchronously. It never blocks the caller and never
// reports failure: the result of the side channel is not the caller's
// concern.
func Emit(e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("notify: panic dispatching event %s: %v", e.ID, r)
			}
		}()
		if err := dispatcher.Dispatch(e); err != nil {
			log.Printf("notify: dropping event %s (%s for appointment %d): %v", e.ID, e.Type, e.AppointmentID, err)
		}
	}()
}

var subjects = map[EventType]string{
	EventCreated:   "New Appointment Scheduled",
	EventConfirmed: "Appointment Confirmed",
	EventCancelled: "Appointment Cancelled",
}

// EmailDispatcher renders the event as an HTML email and sends it over SMTP.
type EmailDispatcher struct{}

func (EmailDispatcher) Dispatch(e Event) error {
	if e.TargetContact == "" {
		return fmt.Errorf("event %s has no target contact", e.ID)
	}
	subject, ok := subjects[e.Type]
	if !ok {
		return fmt.Errorf("unknown event type %q", e.Type)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Appointment update: <strong>%s</strong>.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>The TuCita Team</p>
	`, e.TemplateData["recipient_name"], e.Type,
		e.TemplateData["service_name"], e.TemplateData["date"], e.TemplateData["time"])

	return utils.SendEmail(e.TargetContact, subject, body)
}
