package message

import (
	"context"
	"strings"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
)

// Submission is a contact form message from a visitor.
type Submission struct {
	Name           string
	Email          string
	Subject        string
	Message        string
	IdempotencyKey string
}

type Business interface {
	Submit(ctx context.Context, s *Submission) (model.Record, error)
	MarkRead(ctx context.Context, id string) (model.Record, error)
}

type business struct {
	client backend.Client
}

func NewMessageBusiness(client backend.Client) Business {
	return &business{client: client}
}

func (b *business) Submit(ctx context.Context, s *Submission) (model.Record, error) {
	rec := model.Record{
		"name":    strings.TrimSpace(s.Name),
		"email":   strings.TrimSpace(s.Email),
		"subject": nil,
		"message": s.Message,
		"is_read": false,
	}
	if subject := strings.TrimSpace(s.Subject); subject != "" {
		rec["subject"] = subject
	}
	if s.IdempotencyKey != "" {
		ctx = backend.WithIdempotencyKey(ctx, s.IdempotencyKey)
	}
	created, err := b.client.Create(ctx, model.ResourceMessages, rec)
	if err != nil {
		return nil, backend.APIError(err, "failed to send message")
	}
	return created, nil
}

func (b *business) MarkRead(ctx context.Context, id string) (model.Record, error) {
	rec, err := b.client.MarkRead(ctx, id)
	if err != nil {
		return nil, backend.APIError(err, "failed to mark message as read")
	}
	return rec, nil
}
