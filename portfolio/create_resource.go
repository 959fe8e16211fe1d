package portfolio

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/portfolio/model"
)

type CreateResourceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Form model.Form `json:"form" validate:"required"`
}

type ResourceResponse struct {
	Record model.Record   `json:"record"`
	Items  []model.Record `json:"items"`
}

// CreateResource saves a new record from an admin form. Secondary-language
// fields left empty are translated from English.
//
//encore:api auth path=/v1/admin/resources/:resource method=POST tag:idempotency
func (s *Service) CreateResource(ctx context.Context, resource string, req *CreateResourceRequest) (*ResourceResponse, error) {
	rt := model.ResourceType(resource)
	result, err := s.admin.Save(withToken(ctx), &admin.SaveRequest{
		Resource:       rt,
		Op:             model.OpCreate,
		Form:           req.Form,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to create resource", "resource", resource, "error", err)
		return nil, err
	}

	if rt == model.ResourceTestimonials {
		if wfErr := s.startModeration(ctx, result.Record); wfErr != nil {
			rlog.Error("workflow start issue", "testimonial_id", result.Record.ID(), "error", wfErr)
		}
	}
	return newResourceResponse(result), nil
}

func (r *CreateResourceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

func newResourceResponse(result *admin.SaveResult) *ResourceResponse {
	items := result.Items
	if items == nil {
		items = []model.Record{}
	}
	return &ResourceResponse{Record: result.Record, Items: items}
}
