package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/domain"
)

// Setup handles the onboarding form (step 0 of the CVP Lite journey).
func (h *Handler) Setup(c *gin.Context) {
	var req domain.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Grade) == "" || strings.TrimSpace(req.SchoolName) == "" || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grade, school_name and email are required"})
		return
	}

	profile, message, err := h.profiles.Setup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("users: profile setup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, setupResponse{
		StudentID: profile.StudentID,
		Message:   message,
	})
}

// List returns all stored profiles.
func (h *Handler) List(c *gin.Context) {
	profiles, err := h.profiles.List(c.Request.Context())
	if err != nil {
		log.Printf("users: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Users:      profiles,
		TotalCount: len(profiles),
	})
}

// Get returns a profile by student_id.
func (h *Handler) Get(c *gin.Context) {
	userID := c.Param("user_id")

	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User with student_id %s not found", userID)})
			return
		}
		log.Printf("users: get %s failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Upsert creates or updates a profile submitted as a full document.
func (h *Handler) Upsert(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.profiles.Upsert(c.Request.Context(), &profile)
	if err != nil {
		if errors.Is(err, domain.ErrStudentIDRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("users: upsert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes a profile by student_id.
func (h *Handler) Delete(c *gin.Context) {
	userID := c.Param("user_id")

	if err := h.profiles.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User with student_id %s not found", userID)})
			return
		}
		log.Printf("users: delete %s failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, deleteResponse{
		StudentID: userID,
		Message:   "User deleted successfully",
	})
}
