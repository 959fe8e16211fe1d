package translation

import (
	"context"

	"noiruxe.app/translation/lang"
)

type LanguageRequest struct {
	AcceptLanguage string `header:"Accept-Language"`
}

type LanguageResponse struct {
	Language  lang.Code   `json:"language"`
	Supported []lang.Code `json:"supported"`
}

// Language picks the initial display language for a visitor without a
// stored preference.
//
//encore:api public path=/v1/language method=GET
func (s *Service) Language(ctx context.Context, req *LanguageRequest) (*LanguageResponse, error) {
	return &LanguageResponse{
		Language:  lang.Match(req.AcceptLanguage),
		Supported: lang.Supported(),
	}, nil
}
