package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ypd-labs/cvp-lite-backend/internal/assessment/domain"
)

// PostQuestions returns one page of the static question catalog.
//
// student_id is accepted for client compatibility but is not validated
// against any store.
func (h *Handler) PostQuestions(c *gin.Context) {
	var req domain.QuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	page, err := h.questions.Page(&req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPage) || errors.Is(err, domain.ErrInvalidPageSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("questions: failed to build page: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, page)
}
