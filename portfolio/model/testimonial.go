package model

type TestimonialStatus string

const (
	TestimonialStatusPending  TestimonialStatus = "pending"
	TestimonialStatusApproved TestimonialStatus = "approved"
	TestimonialStatusRejected TestimonialStatus = "rejected"
)

// Status reads the testimonial status field. A record without one is new.
func (r Record) Status() TestimonialStatus {
	return TestimonialStatus(r.Text("status"))
}
