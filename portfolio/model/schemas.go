package model

var (
	displayOrder = Field{Name: "display_order", Kind: KindNumber, Default: "0", Rules: "min=0"}
	isActive     = Field{Name: "is_active", Kind: KindCheckbox, Default: "true"}
)

func bilingual(base string, kind FieldKind, required, nullable bool) []Field {
	return []Field{
		{Name: base + "_en", Kind: kind, Required: required, Nullable: nullable},
		{Name: base + "_fr", Kind: kind, Nullable: nullable},
	}
}

func fields(groups ...[]Field) []Field {
	var out []Field
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var registry = map[ResourceType]Schema{
	ResourceSkills: {
		Resource: ResourceSkills,
		Fields: fields(
			bilingual("name", KindText, true, false),
			[]Field{
				{Name: "category", Kind: KindSelect, Required: true, Default: "frontend",
					Options: []string{"frontend", "backend", "devops", "design", "language", "other"}},
				{Name: "level", Kind: KindRange, Default: "50", Rules: "min=0,max=100"},
				{Name: "icon_url", Kind: KindURL, Nullable: true, Rules: "url"},
				isActive,
				displayOrder,
			},
		),
	},
	ResourceProjects: {
		Resource: ResourceProjects,
		Fields: fields(
			bilingual("title", KindText, true, false),
			bilingual("description", KindMultiline, false, true),
			[]Field{
				{Name: "technologies", Kind: KindList},
				{Name: "image_url", Kind: KindFile, Nullable: true},
				{Name: "gallery_urls", Kind: KindFile, Nullable: true, Multiple: true},
				{Name: "demo_url", Kind: KindURL, Nullable: true, Rules: "url"},
				{Name: "repo_url", Kind: KindURL, Nullable: true, Rules: "url"},
				{Name: "start_date", Kind: KindDate, Nullable: true, Rules: "datetime=2006-01-02"},
				{Name: "end_date", Kind: KindDate, Nullable: true, Rules: "datetime=2006-01-02"},
				{Name: "is_featured", Kind: KindCheckbox, Default: "false"},
				isActive,
				displayOrder,
			},
		),
	},
	ResourceExperience: {
		Resource: ResourceExperience,
		Fields: fields(
			[]Field{{Name: "company", Kind: KindText, Required: true}},
			bilingual("position", KindText, true, false),
			bilingual("description", KindMultiline, false, true),
			bilingual("achievements", KindList, false, false),
			[]Field{
				{Name: "location", Kind: KindText, Nullable: true},
				{Name: "company_url", Kind: KindURL, Nullable: true, Rules: "url"},
				{Name: "logo_url", Kind: KindFile, Nullable: true},
				{Name: "start_date", Kind: KindDate, Required: true, Rules: "datetime=2006-01-02"},
				{Name: "end_date", Kind: KindDate, Nullable: true, Rules: "datetime=2006-01-02"},
				{Name: "is_current", Kind: KindCheckbox, Default: "false"},
				isActive,
				displayOrder,
			},
		),
		Hook: func(op Operation, p Record) Record {
			if current, _ := p["is_current"].(bool); current {
				p["end_date"] = nil
			}
			return p
		},
	},
	ResourceEducation: {
		Resource: ResourceEducation,
		Fields: fields(
			[]Field{{Name: "institution", Kind: KindText, Required: true}},
			bilingual("degree", KindText, true, false),
			bilingual("field_of_study", KindText, false, true),
			bilingual("description", KindMultiline, false, true),
			[]Field{
				{Name: "grade", Kind: KindText, Nullable: true},
				{Name: "logo_url", Kind: KindFile, Nullable: true},
				{Name: "start_date", Kind: KindDate, Required: true, Rules: "datetime=2006-01-02"},
				{Name: "end_date", Kind: KindDate, Nullable: true, Rules: "datetime=2006-01-02"},
				isActive,
				displayOrder,
			},
		),
	},
	ResourceHobbies: {
		Resource: ResourceHobbies,
		Fields: fields(
			bilingual("name", KindText, true, false),
			bilingual("description", KindMultiline, false, true),
			[]Field{
				{Name: "icon", Kind: KindText, Nullable: true},
				{Name: "image_url", Kind: KindFile, Nullable: true},
				isActive,
				displayOrder,
			},
		),
	},
	ResourceResumes: {
		Resource: ResourceResumes,
		Fields: fields(
			bilingual("title", KindText, true, false),
			[]Field{
				{Name: "language", Kind: KindSelect, Required: true, Default: "en", Options: []string{"en", "fr"}},
				{Name: "file_url", Kind: KindFile, Required: true},
				isActive,
				displayOrder,
			},
		),
	},
	ResourceTestimonials: {
		Resource: ResourceTestimonials,
		Fields: fields(
			[]Field{{Name: "author_name", Kind: KindText, Required: true}},
			bilingual("author_role", KindText, false, true),
			[]Field{{Name: "company", Kind: KindText, Nullable: true}},
			bilingual("content", KindMultiline, true, false),
			[]Field{
				{Name: "rating", Kind: KindRange, Default: "5", Rules: "min=1,max=5"},
				{Name: "avatar_url", Kind: KindFile, Nullable: true},
				{Name: "status", Kind: KindSelect, Default: string(TestimonialStatusPending),
					Options: []string{
						string(TestimonialStatusPending),
						string(TestimonialStatusApproved),
						string(TestimonialStatusRejected),
					}},
				displayOrder,
			},
		),
		// Status changes go through the approve/reject sub-actions only.
		Hook: func(op Operation, p Record) Record {
			if op == OpCreate {
				p["status"] = string(TestimonialStatusPending)
			} else {
				delete(p, "status")
			}
			return p
		},
	},
	ResourceMessages: {
		Resource: ResourceMessages,
		Fields: []Field{
			{Name: "name", Kind: KindText, Required: true},
			{Name: "email", Kind: KindText, Required: true, Rules: "email"},
			{Name: "subject", Kind: KindText, Nullable: true},
			{Name: "message", Kind: KindMultiline, Required: true},
			{Name: "is_read", Kind: KindCheckbox, Default: "false"},
		},
	},
}

// Schemas returns the schema of every resource type.
func Schemas() map[ResourceType]Schema {
	out := make(map[ResourceType]Schema, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}

func SchemaFor(r ResourceType) (Schema, bool) {
	s, ok := registry[r]
	return s, ok
}
