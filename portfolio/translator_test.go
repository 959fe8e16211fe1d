package portfolio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiruxe.app/translation"
)

func TestServiceTranslator(t *testing.T) {
	prev := translateBatch
	t.Cleanup(func() { translateBatch = prev })

	translateBatch = func(ctx context.Context, req *translation.TranslateBatchRequest) (*translation.TranslateBatchResponse, error) {
		assert.Equal(t, "en", req.From)
		assert.Equal(t, "fr", req.To)
		out := make([]string, len(req.Texts))
		for i, s := range req.Texts {
			out[i] = "fr:" + s
		}
		return &translation.TranslateBatchResponse{Texts: out}, nil
	}
	got, err := serviceTranslator{}.TranslateBatch(context.Background(), []string{"Hello", "Music"}, "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, []string{"fr:Hello", "fr:Music"}, got)

	translateBatch = func(ctx context.Context, req *translation.TranslateBatchRequest) (*translation.TranslateBatchResponse, error) {
		return nil, errors.New("translation service unavailable")
	}
	_, err = serviceTranslator{}.TranslateBatch(context.Background(), []string{"Hello"}, "en", "fr")
	assert.Error(t, err)
}
