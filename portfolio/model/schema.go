package model

import "strings"

// FieldKind selects how a form value is edited and converted before save.
type FieldKind string

const (
	KindText      FieldKind = "text"
	KindMultiline FieldKind = "multiline"
	KindSelect    FieldKind = "select"
	KindCheckbox  FieldKind = "checkbox"
	KindRange     FieldKind = "range"
	KindNumber    FieldKind = "number"
	KindDate      FieldKind = "date"
	KindURL       FieldKind = "url"
	KindFile      FieldKind = "file"
	KindList      FieldKind = "list"
)

// Field describes one form field of a resource.
type Field struct {
	Name string
	Kind FieldKind
	// Nullable fields are sent as null instead of an empty string.
	Nullable bool
	// Multiple file fields hold a comma-joined list of URLs.
	Multiple bool
	Required bool
	// Rules is a validator tag applied to the converted value.
	Rules   string
	Options []string
	Default string
}

// Operation is the kind of save the admin form performs.
type Operation string

const (
	OpCreate Operation = "add"
	OpUpdate Operation = "edit"
)

// Pair is a canonical/secondary bilingual field pair.
type Pair struct {
	Base string
	EN   string
	FR   string
}

// TransformFunc adjusts a converted payload right before it is sent.
type TransformFunc func(op Operation, payload Record) Record

// Schema is the field layout and save hook of a resource type.
type Schema struct {
	Resource ResourceType
	Fields   []Field
	Hook     TransformFunc
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Pairs derives the bilingual pairs from fields named <base>_en and
// <base>_fr, in declaration order of the _en field.
func (s Schema) Pairs() []Pair {
	var pairs []Pair
	for _, f := range s.Fields {
		base, ok := strings.CutSuffix(f.Name, "_en")
		if !ok {
			continue
		}
		if _, ok := s.Field(base + "_fr"); !ok {
			continue
		}
		pairs = append(pairs, Pair{Base: base, EN: f.Name, FR: base + "_fr"})
	}
	return pairs
}

// Transform runs the resource hook, if any.
func (s Schema) Transform(op Operation, payload Record) Record {
	if s.Hook == nil {
		return payload
	}
	return s.Hook(op, payload)
}

// Filter keeps the form values that belong to a schema field.
func (s Schema) Filter(form Form) Form {
	out := make(Form, len(s.Fields))
	for _, f := range s.Fields {
		if v, ok := form[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

// DefaultForm is the form state of a new record.
func (s Schema) DefaultForm() Form {
	out := make(Form, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = f.Default
	}
	return out
}

// FormFrom loads an existing record into form state.
func (s Schema) FormFrom(r Record) Form {
	out := make(Form, len(s.Fields))
	for _, f := range s.Fields {
		out[f.Name] = r.Text(f.Name)
	}
	return out
}
