package domain

import "time"

type WebhookEvent string

const (
	WebhookIncidentCreated WebhookEvent = "incidentCreated"
	WebhookIncidentUpdated WebhookEvent = "incidentUpdated"
	WebhookIncidentDeleted WebhookEvent = "incidentDeleted"
)

type WebhookPayload struct {
	Event      WebhookEvent `json:"event"`
	IncidentID string       `json:"incidentId"`
	Incident   *Incident    `json:"incident,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}
