package admin

import (
	"context"
	"strings"

	"encore.dev/beta/errs"

	"noiruxe.app/portfolio/model"
)

// Upload sends every file independently. A single-valued field keeps the
// last successful URL, a multi-valued field appends each success to the
// current list. Failed files are reported without touching prior values.
func (b *business) Upload(ctx context.Context, req *UploadRequest) (*UploadResult, error) {
	schema, ok := model.SchemaFor(req.Resource)
	if !ok {
		return nil, unknownResource(req.Resource)
	}
	field, ok := schema.Field(req.Field)
	if !ok || field.Kind != model.KindFile {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: req.Field + " is not a file field"}
	}
	if len(req.Files) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no files to upload"}
	}

	result := &UploadResult{Value: req.Current}
	urls := SplitList(req.Current)
	for _, file := range req.Files {
		url, err := b.client.Upload(ctx, req.Resource, file)
		if err != nil {
			result.Errors = append(result.Errors, UploadError{File: file.Name, Message: err.Error()})
			continue
		}
		if field.Multiple {
			urls = append(urls, url)
		} else {
			result.Value = url
		}
	}
	if field.Multiple {
		result.Value = strings.Join(urls, ",")
	}
	return result, nil
}
