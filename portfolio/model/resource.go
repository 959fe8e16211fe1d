package model

// ResourceType names one of the admin-managed collections.
type ResourceType string

const (
	ResourceSkills       ResourceType = "skills"
	ResourceProjects     ResourceType = "projects"
	ResourceExperience   ResourceType = "experience"
	ResourceEducation    ResourceType = "education"
	ResourceHobbies      ResourceType = "hobbies"
	ResourceResumes      ResourceType = "resumes"
	ResourceTestimonials ResourceType = "testimonials"
	ResourceMessages     ResourceType = "messages"
)

var resourceTypes = []ResourceType{
	ResourceSkills,
	ResourceProjects,
	ResourceExperience,
	ResourceEducation,
	ResourceHobbies,
	ResourceResumes,
	ResourceTestimonials,
	ResourceMessages,
}

// ResourceTypes returns every resource type in admin tab order.
func ResourceTypes() []ResourceType {
	return append([]ResourceType{}, resourceTypes...)
}

func ParseResourceType(s string) (ResourceType, bool) {
	for _, r := range resourceTypes {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Path is the collection path on the REST backend.
func (r ResourceType) Path() string {
	switch r {
	case ResourceExperience:
		return "work-experience"
	case ResourceMessages:
		return "contact-messages"
	default:
		return string(r)
	}
}

// Singular is used in user-facing messages such as "failed to save skill".
func (r ResourceType) Singular() string {
	switch r {
	case ResourceSkills:
		return "skill"
	case ResourceProjects:
		return "project"
	case ResourceHobbies:
		return "hobby"
	case ResourceResumes:
		return "resume"
	case ResourceTestimonials:
		return "testimonial"
	case ResourceMessages:
		return "message"
	default:
		return string(r)
	}
}
