package portfolio

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/portfolio/model"
)

type UpdateResourceRequest struct {
	Form model.Form `json:"form" validate:"required"`
}

//encore:api auth path=/v1/admin/resources/:resource/:id method=PUT
func (s *Service) UpdateResource(ctx context.Context, resource, id string, req *UpdateResourceRequest) (*ResourceResponse, error) {
	result, err := s.admin.Save(withToken(ctx), &admin.SaveRequest{
		Resource: model.ResourceType(resource),
		Op:       model.OpUpdate,
		ID:       id,
		Form:     req.Form,
	})
	if err != nil {
		rlog.Error("failed to update resource", "resource", resource, "id", id, "error", err)
		return nil, err
	}
	return newResourceResponse(result), nil
}

func (r *UpdateResourceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
