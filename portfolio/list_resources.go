package portfolio

import (
	"context"

	"encore.dev/rlog"

	"noiruxe.app/portfolio/model"
)

type ListResourcesResponse struct {
	Items []model.Record `json:"items"`
}

//encore:api auth path=/v1/admin/resources/:resource method=GET
func (s *Service) ListResources(ctx context.Context, resource string) (*ListResourcesResponse, error) {
	items, err := s.admin.List(withToken(ctx), model.ResourceType(resource))
	if err != nil {
		rlog.Error("failed to list resources", "resource", resource, "error", err)
		return nil, err
	}
	if items == nil {
		items = []model.Record{}
	}
	return &ListResourcesResponse{Items: items}, nil
}
