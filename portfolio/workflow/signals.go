package workflow

import "time"

const (
	ModerationSignalName = "moderation"
	HistoryQueryName     = "history"
)

// ModerationSignal reports an admin action on the testimonial. Action is
// "approve", "reject" or "delete".
type ModerationSignal struct {
	Action string    `json:"action"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
}

const ActionDelete = "delete"

// WorkflowID names the moderation workflow of a testimonial.
func WorkflowID(testimonialID string) string {
	return "testimonial-" + testimonialID
}
