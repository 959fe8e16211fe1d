package portfolio

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"noiruxe.app/portfolio/business/message"
	"noiruxe.app/portfolio/model"
)

type SubmitMessageRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type MessageResponse struct {
	Message model.Record `json:"message"`
}

//encore:api public path=/v1/messages method=POST tag:idempotency
func (s *Service) SubmitMessage(ctx context.Context, req *SubmitMessageRequest) (*MessageResponse, error) {
	rec, err := s.messages.Submit(ctx, &message.Submission{
		Name:           req.Name,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to submit message", "error", err)
		return nil, err
	}
	return &MessageResponse{Message: rec}, nil
}

func (r *SubmitMessageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

//encore:api auth path=/v1/admin/messages/:id/read method=POST
func (s *Service) MarkMessageRead(ctx context.Context, id string) (*MessageResponse, error) {
	rec, err := s.messages.MarkRead(withToken(ctx), id)
	if err != nil {
		rlog.Error("failed to mark message read", "id", id, "error", err)
		return nil, err
	}
	return &MessageResponse{Message: rec}, nil
}
