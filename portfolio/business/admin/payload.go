package admin

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"encore.dev/beta/errs"
	"github.com/go-playground/validator/v10"

	"noiruxe.app/portfolio/model"
)

// buildPayload converts form text into the typed values the backend stores.
func (b *business) buildPayload(schema model.Schema, form model.Form) (model.Record, error) {
	payload := make(model.Record, len(schema.Fields))
	for _, f := range schema.Fields {
		raw, present := form[f.Name]
		if !present {
			raw = f.Default
		}
		v, err := convert(f, raw)
		if err != nil {
			return nil, err
		}
		if f.Required && isEmpty(v) {
			return nil, invalid("%s is required", f.Name)
		}
		if err := b.checkRules(f, v); err != nil {
			return nil, err
		}
		payload[f.Name] = v
	}
	return payload, nil
}

func convert(f model.Field, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	switch f.Kind {
	case model.KindCheckbox:
		if trimmed == "" {
			trimmed = f.Default
		}
		return parseBool(trimmed), nil
	case model.KindRange, model.KindNumber:
		if trimmed == "" {
			if f.Nullable {
				return nil, nil
			}
			trimmed = f.Default
		}
		if trimmed == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, invalid("%s must be a whole number", f.Name)
		}
		return n, nil
	case model.KindList:
		return SplitList(raw), nil
	default:
		if trimmed == "" {
			if f.Nullable {
				return nil, nil
			}
			return "", nil
		}
		if f.Kind == model.KindSelect && len(f.Options) > 0 && !slices.Contains(f.Options, trimmed) {
			return nil, invalid("%s must be one of %s", f.Name, strings.Join(f.Options, ", "))
		}
		return raw, nil
	}
}

// SplitList turns comma-separated text into trimmed non-empty items, or nil
// when nothing is left.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	default:
		return false
	}
}

func (b *business) checkRules(f model.Field, v any) error {
	if f.Rules == "" || isEmpty(v) {
		return nil
	}
	if err := b.validate.Var(v, f.Rules); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return invalid("%s failed %s validation", f.Name, verrs[0].Tag())
		}
		return invalid("%s is invalid", f.Name)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf(format, args...)}
}
