package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"noiruxe.app/portfolio/business/testimonial"
	"noiruxe.app/portfolio/model"
)

type ModerationParams struct {
	TestimonialID string    `json:"testimonial_id"`
	SubmittedAt   time.Time `json:"submitted_at"`
	// ReminderAfter is the pending time between two reminders.
	ReminderAfter time.Duration `json:"reminder_after"`
	MaxReminders  int           `json:"max_reminders"`
	// Retention keeps the audit trail queryable after the last decision.
	Retention time.Duration `json:"retention"`
}

// ModerationEvent is one entry of the audit trail.
type ModerationEvent struct {
	Action string                  `json:"action"`
	Actor  string                  `json:"actor,omitempty"`
	From   model.TestimonialStatus `json:"from"`
	To     model.TestimonialStatus `json:"to"`
	At     time.Time               `json:"at"`
}

type ModerationResult struct {
	Status    model.TestimonialStatus `json:"status"`
	Reminders int                     `json:"reminders"`
	History   []ModerationEvent       `json:"history"`
}

const (
	defaultReminderAfter = 72 * time.Hour
	defaultRetention     = 30 * 24 * time.Hour
)

// Moderation follows one testimonial from submission until it is deleted or
// the retention period after its last decision ends. While the testimonial
// is pending the owner is reminded every ReminderAfter.
func Moderation(ctx workflow.Context, params ModerationParams) (*ModerationResult, error) {
	logger := workflow.GetLogger(ctx)
	if params.ReminderAfter <= 0 {
		params.ReminderAfter = defaultReminderAfter
	}
	if params.Retention <= 0 {
		params.Retention = defaultRetention
	}

	result := &ModerationResult{Status: model.TestimonialStatusPending}
	result.History = append(result.History, ModerationEvent{
		Action: string(testimonial.ActionSubmit),
		To:     model.TestimonialStatusPending,
		At:     params.SubmittedAt,
	})
	if err := workflow.SetQueryHandler(ctx, HistoryQueryName, func() ([]ModerationEvent, error) {
		return result.History, nil
	}); err != nil {
		return nil, err
	}
	logger.Info("Moderation started", "testimonialID", params.TestimonialID)

	signals := workflow.GetSignalChannel(ctx, ModerationSignalName)
	pendingSince := workflow.Now(ctx)
	done := false

	for !done {
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		wait := params.Retention
		if result.Status == model.TestimonialStatusPending {
			wait = params.ReminderAfter
		}
		timer := workflow.NewTimer(timerCtx, wait)

		selector := workflow.NewSelector(ctx)
		selector.AddReceive(signals, func(c workflow.ReceiveChannel, more bool) {
			var signal ModerationSignal
			c.Receive(ctx, &signal)
			at := signal.At
			if at.IsZero() {
				at = workflow.Now(ctx)
			}

			if signal.Action == ActionDelete {
				logger.Info("Testimonial deleted", "testimonialID", params.TestimonialID)
				result.History = append(result.History, ModerationEvent{
					Action: ActionDelete, Actor: signal.Actor, From: result.Status, At: at,
				})
				result.Status = ""
				done = true
				return
			}

			next, err := testimonial.Next(result.Status, testimonial.Action(signal.Action))
			if err != nil {
				logger.Warn("Ignoring moderation signal", "testimonialID", params.TestimonialID, "action", signal.Action, "error", err)
				return
			}
			if next == result.Status {
				return
			}
			result.History = append(result.History, ModerationEvent{
				Action: signal.Action, Actor: signal.Actor, From: result.Status, To: next, At: at,
			})
			logger.Info("Testimonial moderated", "testimonialID", params.TestimonialID, "from", result.Status, "to", next)
			result.Status = next
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			if err := f.Get(ctx, nil); err != nil {
				return
			}
			if result.Status != model.TestimonialStatusPending {
				logger.Info("Retention ended", "testimonialID", params.TestimonialID)
				done = true
				return
			}

			status, err := checkStatus(ctx, params.TestimonialID)
			if err != nil {
				logger.Error("Failed to check testimonial status", "testimonialID", params.TestimonialID, "error", err)
				return
			}
			if status != model.TestimonialStatusPending {
				logger.Info("Testimonial left pending outside the workflow", "testimonialID", params.TestimonialID, "status", status)
				result.History = append(result.History, ModerationEvent{
					Action: "sync", From: result.Status, To: status, At: workflow.Now(ctx),
				})
				result.Status = status
				done = status == ""
				return
			}
			if params.MaxReminders > 0 && result.Reminders >= params.MaxReminders {
				return
			}
			if err := remind(ctx, params.TestimonialID, workflow.Now(ctx).Sub(pendingSince)); err != nil {
				logger.Error("Failed to send reminder", "testimonialID", params.TestimonialID, "error", err)
				return
			}
			result.Reminders++
		})

		selector.Select(ctx)
		cancelTimer()
	}

	logger.Info("Moderation completed", "testimonialID", params.TestimonialID, "status", result.Status)
	return result, nil
}

func checkStatus(ctx workflow.Context, testimonialID string) (model.TestimonialStatus, error) {
	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	})
	var status model.TestimonialStatus
	err := workflow.ExecuteActivity(activityCtx, CheckStatusActivity, testimonialID).Get(ctx, &status)
	return status, err
}

func remind(ctx workflow.Context, testimonialID string, waiting time.Duration) error {
	activityCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    3,
		},
	})
	return workflow.ExecuteActivity(activityCtx, RemindActivity, testimonialID, waiting).Get(ctx, nil)
}
