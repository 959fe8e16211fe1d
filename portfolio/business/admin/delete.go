package admin

import (
	"context"

	"encore.dev/beta/errs"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
)

// ReloadError reports a delete the backend accepted whose collection could
// not be fetched afterwards.
type ReloadError struct {
	Err error
}

func (e *ReloadError) Error() string { return e.Err.Error() }

func (e *ReloadError) Unwrap() error { return e.Err }

// Delete removes one record and returns the refetched collection.
func (b *business) Delete(ctx context.Context, resource model.ResourceType, id string) ([]model.Record, error) {
	if _, ok := model.SchemaFor(resource); !ok {
		return nil, unknownResource(resource)
	}
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "id is required"}
	}
	if err := b.client.Delete(ctx, resource, id); err != nil {
		return nil, backend.APIError(err, "failed to delete "+resource.Singular())
	}
	items, err := b.List(ctx, resource)
	if err != nil {
		return nil, &ReloadError{Err: err}
	}
	return items, nil
}
