package translation

import (
	"context"

	"encore.dev/beta/errs"

	"noiruxe.app/translation/lang"
)

type TranslateRequest struct {
	Text string `json:"text" validate:"max=5000"`
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type TranslateResponse struct {
	Text string `json:"text"`
}

// Translate returns the translation of a single text. Provider failures
// return the input unchanged.
//
//encore:api public path=/v1/translate method=POST
func (s *Service) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	from, to := languagePair(req.From, req.To)
	return &TranslateResponse{Text: s.cache.Translate(ctx, req.Text, from, to)}, nil
}

func (r *TranslateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return validateLanguages(r.From, r.To)
}

func validateLanguages(tags ...string) error {
	for _, tag := range tags {
		if _, err := lang.Normalize(tag); err != nil {
			return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
		}
	}
	return nil
}

// languagePair reduces validated tags to their base language so "fr-CA" and
// "fr" share cache entries.
func languagePair(from, to string) (string, string) {
	f, _ := lang.Normalize(from)
	t, _ := lang.Normalize(to)
	return f, t
}
