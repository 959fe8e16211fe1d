package portfolio

import (
	"context"
	"errors"

	"encore.dev/rlog"

	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/portfolio/model"
	"noiruxe.app/portfolio/workflow"
)

// DeleteResource removes a record. The admin UI asks for confirmation
// before calling it.
//
//encore:api auth path=/v1/admin/resources/:resource/:id method=DELETE
func (s *Service) DeleteResource(ctx context.Context, resource, id string) (*ListResourcesResponse, error) {
	rt := model.ResourceType(resource)
	items, err := s.admin.Delete(withToken(ctx), rt, id)
	var reload *admin.ReloadError
	if err != nil && !errors.As(err, &reload) {
		rlog.Error("failed to delete resource", "resource", resource, "id", id, "error", err)
		return nil, err
	}

	if rt == model.ResourceTestimonials {
		s.signalModeration(id, workflow.ActionDelete)
	}
	if reload != nil {
		rlog.Error("resource deleted but reload failed", "resource", resource, "id", id, "error", reload.Err)
		return nil, reload.Err
	}
	if items == nil {
		items = []model.Record{}
	}
	return &ListResourcesResponse{Items: items}, nil
}
