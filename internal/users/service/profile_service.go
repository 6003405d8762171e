package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ypd-labs/cvp-lite-backend/internal/users/domain"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/repository"
)

// ProfileService implements the CVP Lite onboarding flow on top of a
// ProfileStore.
type ProfileService struct {
	store repository.ProfileStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store repository.ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// Setup creates or updates a profile from the onboarding form and returns
// the stored profile together with the formatted confirmation message.
// When the request carries no student_id one is composed as
// first-last-grade-YYYYMMDDHHMMSS.
func (s *ProfileService) Setup(ctx context.Context, req *domain.SetupRequest) (*domain.Profile, string, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, "", domain.ErrNameRequired
	}

	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		studentID = composeStudentID(req.FirstName, req.LastName, req.Grade)
	}

	p := &domain.Profile{
		StudentID:          studentID,
		Name:               strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName)),
		Grade:              strings.TrimSpace(req.Grade),
		SchoolName:         strings.TrimSpace(req.SchoolName),
		Email:              strings.TrimSpace(req.Email),
		Phone:              strings.TrimSpace(req.Phone),
		City:               strings.TrimSpace(req.City),
		Country:            strings.TrimSpace(req.Country),
		SubjectStream:      strings.TrimSpace(req.SubjectStream),
		HobbiesAndPassions: req.HobbiesAndPassions,
		DreamJob:           strings.TrimSpace(req.DreamJob),
		FutureSelfInfo:     strings.TrimSpace(req.FutureSelfInfo),
	}
	if p.HobbiesAndPassions == nil {
		p.HobbiesAndPassions = []string{}
	}

	if err := s.store.Upsert(ctx, p); err != nil {
		return nil, "", err
	}

	return p, setupMessage(p), nil
}

// Upsert creates or updates a profile submitted directly (POST /user/) and
// returns the stored copy.
func (s *ProfileService) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if strings.TrimSpace(p.StudentID) == "" {
		return nil, domain.ErrStudentIDRequired
	}
	if p.HobbiesAndPassions == nil {
		p.HobbiesAndPassions = []string{}
	}

	if err := s.store.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, p.StudentID)
}

func (s *ProfileService) Get(ctx context.Context, studentID string) (*domain.Profile, error) {
	return s.store.Get(ctx, studentID)
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.store.List(ctx)
}

func (s *ProfileService) Delete(ctx context.Context, studentID string) error {
	return s.store.Delete(ctx, studentID)
}

func composeStudentID(first, last, grade string) string {
	suffix := time.Now().UTC().Format("20060102150405")
	return fmt.Sprintf("%s-%s-%s-%s",
		sanitizeIDPart(first, 12),
		sanitizeIDPart(last, 12),
		strings.ToLower(strings.TrimSpace(grade)),
		suffix,
	)
}

func sanitizeIDPart(s string, max int) string {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	// Truncate on runes so multi-byte names keep valid UTF-8
	if r := []rune(s); len(r) > max {
		s = string(r[:max])
	}
	return s
}

func setupMessage(p *domain.Profile) string {
	location := strings.Trim(p.City+", "+p.Country, ", ")
	if location == "" {
		location = "—"
	}
	hobbies := strings.Join(p.HobbiesAndPassions, ", ")

	return "Amazing! Your Profile is Complete\n" +
		"Here's what I learned about you:\n" +
		fmt.Sprintf("** Meet %s**\n", p.Name) +
		fmt.Sprintf("- Grade %s student at %s\n", p.Grade, p.SchoolName) +
		fmt.Sprintf("- Lives in %s\n", location) +
		fmt.Sprintf("- Currently interested in: %s\n", orDash(p.SubjectStream)) +
		fmt.Sprintf("- Passionate about: %s\n", orDash(hobbies)) +
		fmt.Sprintf("- Dreams of: %s\n", orDash(p.DreamJob)) +
		fmt.Sprintf("- Future Vision: %s\n\n", orDash(p.FutureSelfInfo)) +
		fmt.Sprintf("**Your YPD ID: %s**\n", p.StudentID) +
		"*This information will help create the most relevant and personal career guidance for you.*\n\n" +
		"## Ready to Begin?\n" +
		"You're all set to start your career guidance journey!\n\n" +
		"Your profile information will be used to provide personalized insights and recommendations.\n"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
