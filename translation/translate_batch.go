package translation

import (
	"context"

	"encore.dev/beta/errs"
)

type TranslateBatchRequest struct {
	Texts []string `json:"texts" validate:"max=200,dive,max=5000"`
	From  string   `json:"from" validate:"required"`
	To    string   `json:"to" validate:"required"`
}

type TranslateBatchResponse struct {
	Texts []string `json:"texts"`
}

// TranslateBatch translates texts with at most one provider call. The
// response has the same length and order as the request.
//
//encore:api public path=/v1/translate/batch method=POST
func (s *Service) TranslateBatch(ctx context.Context, req *TranslateBatchRequest) (*TranslateBatchResponse, error) {
	from, to := languagePair(req.From, req.To)
	texts := s.cache.TranslateBatch(ctx, req.Texts, from, to)
	if texts == nil {
		texts = []string{}
	}
	return &TranslateBatchResponse{Texts: texts}, nil
}

func (r *TranslateBatchRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return validateLanguages(r.From, r.To)
}
