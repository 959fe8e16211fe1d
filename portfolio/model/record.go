package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is a resource item as exchanged with the REST backend.
type Record map[string]any

// Form is the flat name/value state of an admin form.
type Form map[string]string

// ID returns the record identifier, whatever JSON type the backend used.
func (r Record) ID() string {
	return r.Text("id")
}

// Text renders a field as form text. Lists are joined with ", ".
func (r Record) Text(name string) string {
	switch v := r[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (f Form) Clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
