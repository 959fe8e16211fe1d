package admin

import (
	"context"
	"strings"

	"encore.dev/beta/errs"

	"noiruxe.app/portfolio/backend"
	"noiruxe.app/portfolio/model"
	"noiruxe.app/translation/lang"
)

// Save runs the save pipeline for one form and returns the saved record
// together with the refetched collection.
func (b *business) Save(ctx context.Context, req *SaveRequest) (*SaveResult, error) {
	schema, ok := model.SchemaFor(req.Resource)
	if !ok {
		return nil, unknownResource(req.Resource)
	}
	if req.Op == model.OpUpdate && req.ID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "id is required to update a " + req.Resource.Singular()}
	}
	if req.Op != model.OpCreate && req.Op != model.OpUpdate {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unknown operation " + string(req.Op)}
	}

	form := schema.Filter(req.Form)
	b.fillSecondary(ctx, schema, form)

	payload, err := b.buildPayload(schema, form)
	if err != nil {
		return nil, err
	}
	payload = schema.Transform(req.Op, payload)

	var saved model.Record
	if req.Op == model.OpCreate {
		if req.IdempotencyKey != "" {
			ctx = backend.WithIdempotencyKey(ctx, req.IdempotencyKey)
		}
		saved, err = b.client.Create(ctx, req.Resource, payload)
	} else {
		saved, err = b.client.Update(ctx, req.Resource, req.ID, payload)
	}
	if err != nil {
		return nil, backend.APIError(err, "failed to save "+req.Resource.Singular())
	}

	items, err := b.List(ctx, req.Resource)
	if err != nil {
		return nil, err
	}
	return &SaveResult{Record: saved, Items: items}, nil
}

// fillSecondary populates every empty _fr field whose _en field is set,
// using one batch translation. Slots the translator could not fill get the
// English text verbatim.
func (b *business) fillSecondary(ctx context.Context, schema model.Schema, form model.Form) {
	var (
		pairs   []model.Pair
		sources []string
	)
	for _, p := range schema.Pairs() {
		en := form[p.EN]
		if strings.TrimSpace(en) == "" || strings.TrimSpace(form[p.FR]) != "" {
			continue
		}
		pairs = append(pairs, p)
		sources = append(sources, en)
	}
	if len(pairs) == 0 {
		return
	}

	var translated []string
	if b.translator != nil {
		out, err := b.translator.TranslateBatch(ctx, sources, string(lang.EN), string(lang.FR))
		if err == nil && len(out) == len(sources) {
			translated = out
		}
	}
	for i, p := range pairs {
		v := sources[i]
		if translated != nil && strings.TrimSpace(translated[i]) != "" {
			v = translated[i]
		}
		form[p.FR] = v
	}
}
