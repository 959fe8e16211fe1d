package admin

import (
	"context"
	"errors"
	"sync"

	"encore.dev/beta/errs"
	"github.com/google/uuid"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
)

type Mode string

const (
	ModeIdle   Mode = "idle"
	ModeAdd    Mode = "add"
	ModeEdit   Mode = "edit"
	ModeSaving Mode = "saving"
)

var (
	ErrNotEditing      = errors.New("no add or edit in progress")
	ErrSaveInProgress  = errors.New("save already in progress")
	ErrNoPendingDelete = errors.New("no delete awaiting confirmation")
)

// Session is the admin form state of one resource type: the loaded items,
// the open add/edit form and the delete confirmation gate.
type Session struct {
	business Business
	resource model.ResourceType
	schema   model.Schema
	newKey   func() string

	mu            sync.Mutex
	mode          Mode
	formMode      Mode
	editID        string
	form          model.Form
	items         []model.Record
	errMsg        string
	alert         string
	pendingDelete string
	idemKey       string
	uploadErrors  []UploadError

	onField func(name, value string)
}

func NewSession(b Business, resource model.ResourceType) (*Session, error) {
	schema, ok := model.SchemaFor(resource)
	if !ok {
		return nil, unknownResource(resource)
	}
	s := &Session{
		business: b,
		resource: resource,
		schema:   schema,
		newKey:   uuid.NewString,
		mode:     ModeIdle,
	}
	s.onField = s.setField
	return s, nil
}

// Load replaces the items with the backend's current collection.
func (s *Session) Load(ctx context.Context) error {
	items, err := s.business.List(ctx, s.resource)
	if err != nil {
		s.mu.Lock()
		s.alert = message(err)
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Add opens an empty form. Its idempotency key is reused by every retry of
// the same form. It fails while a save is in flight.
func (s *Session) Add() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeSaving {
		return ErrSaveInProgress
	}
	s.mode, s.formMode = ModeAdd, ModeAdd
	s.editID = ""
	s.form = s.schema.DefaultForm()
	s.idemKey = s.newKey()
	s.errMsg = ""
	s.uploadErrors = nil
	return nil
}

// Edit opens the form on an existing record. It fails while a save is in
// flight.
func (s *Session) Edit(r model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeSaving {
		return ErrSaveInProgress
	}
	s.mode, s.formMode = ModeEdit, ModeEdit
	s.editID = r.ID()
	s.form = s.schema.FormFrom(r)
	s.idemKey = ""
	s.errMsg = ""
	s.uploadErrors = nil
	return nil
}

// FieldHandler returns the field-change handler. It is the same function for
// the whole life of the session.
func (s *Session) FieldHandler() func(name, value string) {
	return s.onField
}

func (s *Session) setField(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return
	}
	s.form[name] = value
}

// Save submits the open form. On success the form closes and the items are
// replaced by the refetched collection; on failure the form stays open with
// its values and Error reports the reason.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	switch s.mode {
	case ModeSaving:
		s.mu.Unlock()
		return ErrSaveInProgress
	case ModeAdd, ModeEdit:
	default:
		s.mu.Unlock()
		return ErrNotEditing
	}
	req := &SaveRequest{
		Resource:       s.resource,
		Op:             model.OpCreate,
		ID:             s.editID,
		Form:           s.form.Clone(),
		IdempotencyKey: s.idemKey,
	}
	if s.formMode == ModeEdit {
		req.Op = model.OpUpdate
	}
	s.mode = ModeSaving
	s.errMsg = ""
	s.mu.Unlock()

	result, err := s.business.Save(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.mode = s.formMode
		s.errMsg = message(err)
		return err
	}
	s.items = result.Items
	s.close()
	return nil
}

// Cancel closes the form without saving.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeSaving {
		return
	}
	s.close()
}

func (s *Session) close() {
	s.mode, s.formMode = ModeIdle, ModeIdle
	s.editID = ""
	s.form = nil
	s.idemKey = ""
	s.errMsg = ""
	s.uploadErrors = nil
}

// RequestDelete arms the confirmation gate. Nothing is removed until
// ConfirmDelete.
func (s *Session) RequestDelete(id string) {
	s.mu.Lock()
	s.pendingDelete = id
	s.mu.Unlock()
}

func (s *Session) CancelDelete() {
	s.mu.Lock()
	s.pendingDelete = ""
	s.mu.Unlock()
}

// ConfirmDelete deletes the pending record. A failure raises Alert and
// leaves the items as they were. When the record is gone but the collection
// could not be reloaded, the record is dropped from the items.
func (s *Session) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	id := s.pendingDelete
	s.pendingDelete = ""
	s.mu.Unlock()
	if id == "" {
		return ErrNoPendingDelete
	}

	items, err := s.business.Delete(ctx, s.resource, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	var reload *ReloadError
	if errors.As(err, &reload) {
		s.items = without(s.items, id)
		return nil
	}
	if err != nil {
		s.alert = message(err)
		return err
	}
	s.items = items
	return nil
}

func without(items []model.Record, id string) []model.Record {
	out := make([]model.Record, 0, len(items))
	for _, r := range items {
		if r.ID() != id {
			out = append(out, r)
		}
	}
	return out
}

// Upload uploads files into a file field of the open form. Per-file
// failures are kept in UploadErrors; the field keeps every URL that did
// upload.
func (s *Session) Upload(ctx context.Context, field string, files []backend.File) error {
	s.mu.Lock()
	if s.form == nil {
		s.mu.Unlock()
		return ErrNotEditing
	}
	current := s.form[field]
	s.mu.Unlock()

	result, err := s.business.Upload(ctx, &UploadRequest{
		Resource: s.resource,
		Field:    field,
		Current:  current,
		Files:    files,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.uploadErrors = []UploadError{{Message: message(err)}}
		return err
	}
	s.uploadErrors = result.Errors
	if s.form != nil {
		s.form[field] = result.Value
	}
	return nil
}

func (s *Session) DismissAlert() {
	s.mu.Lock()
	s.alert = ""
	s.mu.Unlock()
}

func (s *Session) Resource() model.ResourceType { return s.resource }

func (s *Session) Schema() model.Schema { return s.schema }

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Form returns a copy of the open form, or nil when idle.
func (s *Session) Form() model.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return nil
	}
	return s.form.Clone()
}

func (s *Session) Items() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Record{}, s.items...)
}

func (s *Session) EditID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editID
}

func (s *Session) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Session) Alert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alert
}

func (s *Session) PendingDelete() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingDelete
}

func (s *Session) IdempotencyKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idemKey
}

func (s *Session) UploadErrors() []UploadError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]UploadError{}, s.uploadErrors...)
}

func message(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
