package workflow

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
)

// Notifier tells the site owner a testimonial is still waiting.
type Notifier interface {
	PendingTestimonial(ctx context.Context, testimonialID string, waiting time.Duration) error
}

type ActivityDependencies struct {
	Client   backend.Client
	Notifier Notifier
}

var activityDeps *ActivityDependencies

func SetActivityDependencies(client backend.Client, notifier Notifier) {
	if client == nil && notifier == nil {
		activityDeps = nil
		return
	}
	activityDeps = &ActivityDependencies{Client: client, Notifier: notifier}
}

func dependencies() (*ActivityDependencies, error) {
	if activityDeps == nil || activityDeps.Client == nil {
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return activityDeps, nil
}

// CheckStatusActivity reads the testimonial status from the backend. A
// deleted testimonial reports the empty status.
func CheckStatusActivity(ctx context.Context, testimonialID string) (model.TestimonialStatus, error) {
	logger := activity.GetLogger(ctx)
	deps, err := dependencies()
	if err != nil {
		logger.Error("Activity dependencies not set")
		return "", err
	}

	rec, err := deps.Client.Get(ctx, model.ResourceTestimonials, testimonialID)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) && be.Status == http.StatusNotFound {
			logger.Info("Testimonial no longer exists", "testimonialID", testimonialID)
			return "", nil
		}
		logger.Error("Failed to read testimonial", "testimonialID", testimonialID, "error", err)
		return "", err
	}
	return rec.Status(), nil
}

// RemindActivity notifies that a testimonial has been pending for waiting.
func RemindActivity(ctx context.Context, testimonialID string, waiting time.Duration) error {
	logger := activity.GetLogger(ctx)
	deps, err := dependencies()
	if err != nil {
		return err
	}
	if deps.Notifier == nil {
		logger.Warn("No notifier configured, skipping reminder", "testimonialID", testimonialID)
		return nil
	}
	if err := deps.Notifier.PendingTestimonial(ctx, testimonialID, waiting); err != nil {
		logger.Error("Failed to send moderation reminder", "testimonialID", testimonialID, "error", err)
		return err
	}
	logger.Info("Sent moderation reminder", "testimonialID", testimonialID, "waiting", waiting)
	return nil
}
