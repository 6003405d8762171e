package domain

import "errors"

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrStudentIDRequired = errors.New("student_id is required")
	ErrNameRequired      = errors.New("first_name and last_name are required")
)
