package portfolio

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"noiruxe.app/portfolio/model"
	"noiruxe.app/portfolio/workflow"
)

// startModeration starts the moderation workflow of a new testimonial.
func (s *Service) startModeration(ctx context.Context, rec model.Record) error {
	if s.temporal == nil {
		return nil
	}
	id := rec.ID()
	if id == "" {
		return fmt.Errorf("testimonial has no id")
	}
	workflowID := workflow.WorkflowID(id)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}
	params := workflow.ModerationParams{
		TestimonialID: id,
		SubmittedAt:   time.Now(),
		ReminderAfter: s.reminderAfter,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.Moderation, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("moderation workflow already started", "testimonial_id", id, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// signalModeration reports an admin action to the testimonial's workflow in
// the background.
func (s *Service) signalModeration(id, action string) {
	if s.temporal == nil {
		return
	}
	signal := workflow.ModerationSignal{Action: action, Actor: actor(), At: time.Now()}
	runAsync("signal_moderation", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflow.WorkflowID(id), "", workflow.ModerationSignalName, signal)
	})
}
