package portfolio

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/business/admin"
	"noiruxe.app/portfolio/model"
)

const (
	maxUploadMemory = 32 << 20
	filesField      = "files"
	currentField    = "current"
)

// Upload stores the multipart "files" for a file field and returns the new
// field value. Files are uploaded in order; a failed file is reported and
// the others are kept.
//
//encore:api auth raw path=/v1/admin/uploads/:resource/:field method=POST
func (s *Service) Upload(w http.ResponseWriter, req *http.Request) {
	params := encore.CurrentRequest().PathParams
	s.upload(w, req, params.Get("resource"), params.Get("field"))
}

func (s *Service) upload(w http.ResponseWriter, req *http.Request, resource, field string) {
	ctx := withToken(req.Context())

	if err := req.ParseMultipartForm(maxUploadMemory); err != nil {
		errs.HTTPError(w, &errs.Error{Code: errs.InvalidArgument, Message: "invalid multipart form"})
		return
	}
	defer req.MultipartForm.RemoveAll()

	headers := req.MultipartForm.File[filesField]
	if len(headers) == 0 {
		errs.HTTPError(w, &errs.Error{Code: errs.InvalidArgument, Message: "no files to upload"})
		return
	}
	files := make([]backend.File, 0, len(headers))
	for _, h := range headers {
		f, err := readFile(h)
		if err != nil {
			rlog.Error("failed to read uploaded file", "file", h.Filename, "error", err)
			errs.HTTPError(w, &errs.Error{Code: errs.InvalidArgument, Message: "failed to read " + h.Filename})
			return
		}
		files = append(files, f)
	}

	result, err := s.admin.Upload(ctx, &admin.UploadRequest{
		Resource: model.ResourceType(resource),
		Field:    field,
		Current:  req.FormValue(currentField),
		Files:    files,
	})
	if err != nil {
		rlog.Error("failed to upload files", "resource", resource, "field", field, "error", err)
		errs.HTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		rlog.Error("failed to write upload response", "error", err)
	}
}

func readFile(h *multipart.FileHeader) (backend.File, error) {
	src, err := h.Open()
	if err != nil {
		return backend.File{}, err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return backend.File{}, err
	}
	return backend.File{
		Name:        h.Filename,
		ContentType: h.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
