package domain

import "time"

// ProximityNotification is created when a candidate satisfies an alert
// preference. It carries a denormalized snapshot of the matched candidate's
// display fields so the history list stays stable even if the pool changes.
// Only the Read flag is ever mutated after creation.
type ProximityNotification struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	AlertKind AlertKind `json:"alert_kind"`
	MatchName string    `json:"match_name"`
	Detail    string    `json:"detail"`
	Distance  string    `json:"distance"`
	Initial   string    `json:"initial"`
	Color     string    `json:"color"`
	Read      bool      `json:"read"`
}

// PhoneConfig is the user's SMS relay configuration, persisted locally.
// WebhookURL points at a user-supplied dispatch endpoint (e.g. a Twilio
// function); when empty the relay is effectively disabled.
type PhoneConfig struct {
	PhoneNumber     string `json:"phone_number" db:"phone_number"`
	Verified        bool   `json:"verified" db:"verified"`
	WebhookURL      string `json:"webhook_url" db:"webhook_url"`
	NotifyOnAlert   bool   `json:"notify_on_alert" db:"notify_on_alert"`
	NotifyOnMessage bool   `json:"notify_on_message" db:"notify_on_message"`
}

// SMSEnabled reports whether proximity match texts should go out
func (p *PhoneConfig) SMSEnabled() bool {
	return p != nil && p.Verified && p.NotifyOnAlert
}
