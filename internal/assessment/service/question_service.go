package service

import (
	"fmt"
	"net/url"

	"github.com/ypd-labs/cvp-lite-backend/internal/assessment/catalog"
	"github.com/ypd-labs/cvp-lite-backend/internal/assessment/domain"
)

const questionsPath = "/cvp_lite/questions"

// QuestionService serves pages of the static question catalog.
type QuestionService struct {
	questions  []domain.Question
	assessment domain.Assessment
}

// NewQuestionService creates a QuestionService backed by the static catalog.
func NewQuestionService() *QuestionService {
	return &QuestionService{
		questions:  catalog.Questions(),
		assessment: catalog.AssessmentInfo(),
	}
}

// Page filters the catalog by category, slices out the requested page and
// wraps it in the response envelope. Omitted page/page_size fall back to the
// defaults; explicit non-positive values are rejected.
func (s *QuestionService) Page(req *domain.QuestionsRequest) (*domain.QuestionsPage, error) {
	page := domain.DefaultPage
	if req.Page != nil {
		if *req.Page < 1 {
			return nil, domain.ErrInvalidPage
		}
		page = *req.Page
	}

	pageSize := domain.DefaultPageSize
	if req.PageSize != nil {
		if *req.PageSize < 1 {
			return nil, domain.ErrInvalidPageSize
		}
		pageSize = *req.PageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}

	filtered := s.filter(req.CategoryID)
	total := len(filtered)

	// page is unbounded; computing the offset for a page past the end
	// would overflow, so those pages short-circuit to an empty slice.
	// Data must serialize as [] rather than null when the page is empty.
	lastPage := (total + pageSize - 1) / pageSize
	data := make([]domain.Question, 0)
	if page <= lastPage {
		start := (page - 1) * pageSize
		end := start + pageSize
		if end > total {
			end = total
		}
		for _, q := range filtered[start:end] {
			data = append(data, q.Clone())
		}
	}

	return &domain.QuestionsPage{
		Data: data,
		Meta: domain.PageMeta{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			Assessment: s.assessment.Clone(),
		},
		Links: s.links(page, pageSize, lastPage, req.CategoryID),
	}, nil
}

func (s *QuestionService) filter(categoryID string) []domain.Question {
	if categoryID == "" {
		return s.questions
	}
	out := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out
}

func (s *QuestionService) links(page, pageSize, lastPage int, categoryID string) domain.PageLinks {
	links := domain.PageLinks{
		Self: pageLink(page, pageSize, categoryID),
	}

	if page < lastPage {
		next := pageLink(page+1, pageSize, categoryID)
		links.Next = &next
	}
	if page > 1 {
		prev := pageLink(page-1, pageSize, categoryID)
		links.Prev = &prev
	}

	return links
}

func pageLink(page, pageSize int, categoryID string) string {
	link := fmt.Sprintf("%s?page=%d&page_size=%d", questionsPath, page, pageSize)
	if categoryID != "" {
		link += "&category_id=" + url.QueryEscape(categoryID)
	}
	return link
}
