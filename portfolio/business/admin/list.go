package admin

import (
	"context"

	"encore.dev/beta/errs"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
)

// List returns the backend's items in backend order.
func (b *business) List(ctx context.Context, resource model.ResourceType) ([]model.Record, error) {
	if _, ok := model.SchemaFor(resource); !ok {
		return nil, unknownResource(resource)
	}
	items, err := b.client.List(ctx, resource)
	if err != nil {
		return nil, backend.APIError(err, "failed to load "+string(resource))
	}
	return items, nil
}

func unknownResource(resource model.ResourceType) error {
	return &errs.Error{Code: errs.NotFound, Message: "unknown resource " + string(resource)}
}
