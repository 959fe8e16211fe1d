package portfolio

import (
	"context"

	"encore.dev/rlog"

	"noiruxe.app/portfolio/business/testimonial"
	"noiruxe.app/portfolio/model"
)

type ModerationResponse struct {
	Testimonial model.Record            `json:"testimonial"`
	From        model.TestimonialStatus `json:"from"`
	To          model.TestimonialStatus `json:"to"`
	Changed     bool                    `json:"changed"`
}

//encore:api auth path=/v1/admin/testimonials/:id/approve method=POST
func (s *Service) ApproveTestimonial(ctx context.Context, id string) (*ModerationResponse, error) {
	t, err := s.testimonials.Approve(withToken(ctx), id)
	if err != nil {
		rlog.Error("failed to approve testimonial", "id", id, "error", err)
		return nil, err
	}
	return s.moderated(id, testimonial.ActionApprove, t), nil
}

//encore:api auth path=/v1/admin/testimonials/:id/reject method=POST
func (s *Service) RejectTestimonial(ctx context.Context, id string) (*ModerationResponse, error) {
	t, err := s.testimonials.Reject(withToken(ctx), id)
	if err != nil {
		rlog.Error("failed to reject testimonial", "id", id, "error", err)
		return nil, err
	}
	return s.moderated(id, testimonial.ActionReject, t), nil
}

func (s *Service) moderated(id string, action testimonial.Action, t *testimonial.Transition) *ModerationResponse {
	if t.Changed {
		s.signalModeration(id, string(action))
	}
	return &ModerationResponse{Testimonial: t.Record, From: t.From, To: t.To, Changed: t.Changed}
}
