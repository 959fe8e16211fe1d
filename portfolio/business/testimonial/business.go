package testimonial

import (
	"context"
	"errors"
	"strings"

	"encore.dev/beta/errs"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
	"noiruxe.app/translation/lang"
)

// Submission is a public testimonial. Text fields are written in Language;
// the other language is filled when an admin edits the testimonial.
type Submission struct {
	AuthorName     string
	AuthorRole     string
	Company        string
	Content        string
	Rating         int
	AvatarURL      string
	Language       lang.Code
	IdempotencyKey string
}

// Transition reports a moderation action.
type Transition struct {
	Record  model.Record
	From    model.TestimonialStatus
	To      model.TestimonialStatus
	Changed bool
}

type Business interface {
	Submit(ctx context.Context, s *Submission) (model.Record, error)
	Approve(ctx context.Context, id string) (*Transition, error)
	Reject(ctx context.Context, id string) (*Transition, error)
}

type business struct {
	client backend.Client
}

func NewTestimonialBusiness(client backend.Client) Business {
	return &business{client: client}
}

func (b *business) Submit(ctx context.Context, s *Submission) (model.Record, error) {
	status, err := Next("", ActionSubmit)
	if err != nil {
		return nil, err
	}
	language := s.Language
	if _, ok := lang.Parse(string(language)); !ok {
		language = lang.Default
	}
	rec := model.Record{
		"author_name": strings.TrimSpace(s.AuthorName),
		"company":     optional(s.Company),
		"rating":      s.Rating,
		"avatar_url":  optional(s.AvatarURL),
		"status":      string(status),
	}
	rec["author_role_"+string(language)] = optional(s.AuthorRole)
	rec["content_"+string(language)] = strings.TrimSpace(s.Content)
	if s.IdempotencyKey != "" {
		ctx = backend.WithIdempotencyKey(ctx, s.IdempotencyKey)
	}
	created, err := b.client.Create(ctx, model.ResourceTestimonials, rec)
	if err != nil {
		return nil, backend.APIError(err, "failed to submit testimonial")
	}
	return created, nil
}

func (b *business) Approve(ctx context.Context, id string) (*Transition, error) {
	return b.moderate(ctx, id, ActionApprove)
}

func (b *business) Reject(ctx context.Context, id string) (*Transition, error) {
	return b.moderate(ctx, id, ActionReject)
}

func (b *business) moderate(ctx context.Context, id string, action Action) (*Transition, error) {
	current, err := b.client.Get(ctx, model.ResourceTestimonials, id)
	if err != nil {
		return nil, backend.APIError(err, "failed to load testimonial")
	}
	from := current.Status()
	to, err := Next(from, action)
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			return nil, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
		}
		return nil, err
	}
	if to == from {
		return &Transition{Record: current, From: from, To: to}, nil
	}

	var updated model.Record
	if action == ActionApprove {
		updated, err = b.client.Approve(ctx, id)
	} else {
		updated, err = b.client.Reject(ctx, id)
	}
	if err != nil {
		return nil, backend.APIError(err, "failed to "+string(action)+" testimonial")
	}
	if updated == nil {
		updated = current.Clone()
	}
	if updated.Status() == "" {
		updated["status"] = string(to)
	}
	return &Transition{Record: updated, From: from, To: to, Changed: true}, nil
}

func optional(s string) any {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return s
}
