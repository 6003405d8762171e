package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

type RootHandler struct {
	serviceName string
	version     string
}

func NewRootHandler(serviceName, version string) *RootHandler {
	return &RootHandler{serviceName: serviceName, version: version}
}

// Root is the informational landing endpoint.
func (h *RootHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: h.serviceName + " API",
		Version: h.version,
		Docs:    "/docs",
	})
}

func (h *RootHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
}
