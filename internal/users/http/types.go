package http

import (
	"github.com/gin-gonic/gin"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/domain"
	"github.com/ypd-labs/cvp-lite-backend/internal/users/service"
)

// Handler handles HTTP requests for user profiles.
type Handler struct {
	profiles *service.ProfileService
}

// New creates a new Handler.
func New(profiles *service.ProfileService) *Handler {
	return &Handler{profiles: profiles}
}

// Register registers the profile routes on the /user group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/setup", h.Setup)
	rg.GET("/", h.List)
	rg.POST("/", h.Upsert)
	rg.GET("/:user_id", h.Get)
	rg.DELETE("/:user_id", h.Delete)
}

type setupResponse struct {
	StudentID string `json:"student_id"`
	Message   string `json:"message"`
}

type listResponse struct {
	Users      []domain.Profile `json:"users"`
	TotalCount int              `json:"total_count"`
}

type deleteResponse struct {
	StudentID string `json:"student_id"`
	Message   string `json:"message"`
}
