package portfolio

import (
	"context"

	"noiruxe.app/portfolio/model"
)

type FieldInfo struct {
	Name     string          `json:"name"`
	Kind     model.FieldKind `json:"kind"`
	Required bool            `json:"required,omitempty"`
	Nullable bool            `json:"nullable,omitempty"`
	Multiple bool            `json:"multiple,omitempty"`
	Options  []string        `json:"options,omitempty"`
	Default  string          `json:"default,omitempty"`
}

type ResourceInfo struct {
	Name     model.ResourceType `json:"name"`
	Singular string             `json:"singular"`
	Fields   []FieldInfo        `json:"fields"`
}

type SessionResponse struct {
	UserID    string         `json:"user_id"`
	Resources []ResourceInfo `json:"resources"`
}

// Session confirms the caller is signed in and describes the admin forms.
//
//encore:api auth path=/v1/admin/session method=GET
func (s *Service) Session(ctx context.Context) (*SessionResponse, error) {
	types := model.ResourceTypes()
	resources := make([]ResourceInfo, 0, len(types))
	for _, rt := range types {
		schema, ok := model.SchemaFor(rt)
		if !ok {
			continue
		}
		info := ResourceInfo{
			Name:     schema.Resource,
			Singular: schema.Resource.Singular(),
			Fields:   make([]FieldInfo, 0, len(schema.Fields)),
		}
		for _, f := range schema.Fields {
			info.Fields = append(info.Fields, FieldInfo{
				Name:     f.Name,
				Kind:     f.Kind,
				Required: f.Required,
				Nullable: f.Nullable,
				Multiple: f.Multiple,
				Options:  f.Options,
				Default:  f.Default,
			})
		}
		resources = append(resources, info)
	}
	return &SessionResponse{UserID: actor(), Resources: resources}, nil
}
