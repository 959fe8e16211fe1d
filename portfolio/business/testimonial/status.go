package testimonial

import (
	"errors"
	"fmt"

	"noiruxe.app/portfolio/model"
)

type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ErrInvalidTransition is wrapped by Next for transitions the status machine
// does not allow.
var ErrInvalidTransition = errors.New("invalid testimonial transition")

// Next returns the status after applying action to current. A new
// testimonial has the empty status. Re-applying the current state is a
// no-op; no action leads back to pending.
func Next(current model.TestimonialStatus, action Action) (model.TestimonialStatus, error) {
	switch action {
	case ActionSubmit:
		if current == "" {
			return model.TestimonialStatusPending, nil
		}
	case ActionApprove:
		switch current {
		case model.TestimonialStatusPending, model.TestimonialStatusRejected, model.TestimonialStatusApproved:
			return model.TestimonialStatusApproved, nil
		}
	case ActionReject:
		switch current {
		case model.TestimonialStatusPending, model.TestimonialStatusApproved, model.TestimonialStatusRejected:
			return model.TestimonialStatusRejected, nil
		}
	}
	return current, fmt.Errorf("%w: cannot %s a testimonial in status %q", ErrInvalidTransition, action, current)
}
