package domain

import "time"

// Profile is a student profile captured during CVP Lite onboarding.
type Profile struct {
	StudentID          string    `json:"student_id"`
	Name               string    `json:"name"`
	Grade              string    `json:"grade"`
	SchoolName         string    `json:"school_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	City               string    `json:"city,omitempty"`
	Country            string    `json:"country,omitempty"`
	SubjectStream      string    `json:"subject_stream,omitempty"`
	HobbiesAndPassions []string  `json:"hobbies_and_passions"`
	DreamJob           string    `json:"dream_job,omitempty"`
	FutureSelfInfo     string    `json:"future_self_info,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SetupRequest is the body of POST /user/setup. StudentID is optional; when
// absent the service composes one from the name and grade.
type SetupRequest struct {
	StudentID          string   `json:"student_id,omitempty"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Grade              string   `json:"grade"`
	SchoolName         string   `json:"school_name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone,omitempty"`
	City               string   `json:"city,omitempty"`
	Country            string   `json:"country,omitempty"`
	SubjectStream      string   `json:"subject_stream,omitempty"`
	HobbiesAndPassions []string `json:"hobbies_and_passions,omitempty"`
	DreamJob           string   `json:"dream_job,omitempty"`
	FutureSelfInfo     string   `json:"future_self_info,omitempty"`
}
