package admin

import (
	"context"

	"github.com/go-playground/validator/v10"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
)

// Translator fills secondary-language fields. An error or a result of the
// wrong length makes the caller fall back to copying the source text.
type Translator interface {
	TranslateBatch(ctx context.Context, texts []string, from, to string) ([]string, error)
}

type Business interface {
	List(ctx context.Context, resource model.ResourceType) ([]model.Record, error)
	Save(ctx context.Context, req *SaveRequest) (*SaveResult, error)
	Delete(ctx context.Context, resource model.ResourceType, id string) ([]model.Record, error)
	Upload(ctx context.Context, req *UploadRequest) (*UploadResult, error)
}

type SaveRequest struct {
	Resource       model.ResourceType
	Op             model.Operation
	ID             string
	Form           model.Form
	IdempotencyKey string
}

type SaveResult struct {
	Record model.Record
	Items  []model.Record
}

type UploadRequest struct {
	Resource model.ResourceType
	Field    string
	// Current is the field value before the upload.
	Current string
	Files   []backend.File
}

type UploadError struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

type UploadResult struct {
	Value  string        `json:"value"`
	Errors []UploadError `json:"errors,omitempty"`
}

type business struct {
	client     backend.Client
	translator Translator
	validate   *validator.Validate
}

func NewAdminBusiness(client backend.Client, translator Translator) Business {
	return &business{
		client:     client,
		translator: translator,
		validate:   validator.New(),
	}
}
