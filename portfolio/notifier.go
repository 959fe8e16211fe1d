package portfolio

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// logNotifier surfaces testimonials awaiting moderation in the service logs.
type logNotifier struct{}

func (logNotifier) PendingTestimonial(_ context.Context, testimonialID string, waiting time.Duration) error {
	rlog.Warn("testimonial awaiting moderation", "testimonial_id", testimonialID, "waiting", waiting.String())
	return nil
}
