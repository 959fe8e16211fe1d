package portfolio

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"noiruxe.app/portfolio/business/testimonial"
	"noiruxe.app/portfolio/model"
	"noiruxe.app/translation/lang"
)

type SubmitTestimonialRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	AuthorName string `json:"author_name" validate:"required,max=120"`
	AuthorRole string `json:"author_role" validate:"max=120"`
	Company    string `json:"company" validate:"max=120"`
	Content    string `json:"content" validate:"required,max=2000"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty,url"`
	Language   string `json:"language" validate:"omitempty,oneof=en fr"`
}

type TestimonialResponse struct {
	Testimonial model.Record `json:"testimonial"`
}

// SubmitTestimonial records a visitor testimonial as pending moderation.
//
//encore:api public path=/v1/testimonials method=POST tag:idempotency
func (s *Service) SubmitTestimonial(ctx context.Context, req *SubmitTestimonialRequest) (*TestimonialResponse, error) {
	rec, err := s.testimonials.Submit(ctx, &testimonial.Submission{
		AuthorName:     req.AuthorName,
		AuthorRole:     req.AuthorRole,
		Company:        req.Company,
		Content:        req.Content,
		Rating:         req.Rating,
		AvatarURL:      req.AvatarURL,
		Language:       lang.Code(req.Language),
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to submit testimonial", "error", err)
		return nil, err
	}

	if wfErr := s.startModeration(ctx, rec); wfErr != nil {
		rlog.Error("workflow start issue", "testimonial_id", rec.ID(), "error", wfErr)
	}
	return &TestimonialResponse{Testimonial: rec}, nil
}

func (r *SubmitTestimonialRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
