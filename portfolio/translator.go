package portfolio

import (
	"context"

	"noiruxe.app/translation"
)

var translateBatch = translation.TranslateBatch

// serviceTranslator fills secondary-language fields through the translation
// service, so the admin engine shares its cache.
type serviceTranslator struct{}

func (serviceTranslator) TranslateBatch(ctx context.Context, texts []string, from, to string) ([]string, error) {
	resp, err := translateBatch(ctx, &translation.TranslateBatchRequest{Texts: texts, From: from, To: to})
	if err != nil {
		return nil, err
	}
	return resp.Texts, nil
}
