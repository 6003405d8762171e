package http

import (
	"github.com/gin-gonic/gin"
	"github.com/ypd-labs/cvp-lite-backend/internal/assessment/service"
)

// Handler handles HTTP requests for assessment questions.
type Handler struct {
	questions *service.QuestionService
}

// New creates a new Handler.
func New(questions *service.QuestionService) *Handler {
	return &Handler{questions: questions}
}

// Register registers the assessment routes on the /cvp_lite group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/questions", h.PostQuestions)
}
