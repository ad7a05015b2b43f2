package model

import "time"

// Contact form subjects offered by the site. The frontend sends the slug.
const (
	SubjectWebDevelopment = "web-development"
	SubjectWebDesign      = "web-design"
	SubjectConsultation   = "consultation"
)

// Subjects lists every accepted contact form subject.
var Subjects = []string{SubjectWebDevelopment, SubjectWebDesign, SubjectConsultation}

// ContactSubmission represents a message submitted via the contact form.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message,omitempty"`
	IPAddress string    `json:"ipAddress"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactListOptions carries pagination parameters for the admin listing.
// Results are always newest first.
type ContactListOptions struct {
	Limit  int
	Offset int
}
