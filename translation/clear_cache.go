package translation

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type ClearCacheResponse struct {
	Cleared int `json:"cleared"`
}

//encore:api auth path=/v1/translate/cache method=DELETE
func (s *Service) ClearCache(ctx context.Context) (*ClearCacheResponse, error) {
	n := s.cache.Len()
	if err := s.cache.Clear(ctx); err != nil {
		rlog.Error("failed to clear translation cache", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to clear translation cache"}
	}
	rlog.Info("translation cache cleared", "entries", n)
	return &ClearCacheResponse{Cleared: n}, nil
}
