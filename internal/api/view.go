package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/types"
)

// ViewHandler exposes the enumerated view selector.
type ViewHandler struct {
	session *service.Session
}

// NewViewHandler creates a new ViewHandler instance.
func NewViewHandler(session *service.Session) *ViewHandler {
	return &ViewHandler{session: session}
}

// RegisterRoutes registers the view routes.
func (h *ViewHandler) RegisterRoutes(router *gin.RouterGroup) {
	view := router.Group("/view")
	{
		view.GET("", h.GetView)
		view.PUT("", h.SetView)
	}
}

// GetView returns the active view.
func (h *ViewHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": h.session.Snapshot().View})
}

// SetView switches the active view. This is a plain component swap; the
// only validation is membership in the enum.
func (h *ViewHandler) SetView(c *gin.Context) {
	var req types.SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.session.SetView(req.View)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid view"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": snap.View})
}
