package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/types"
)

// ResearchHandler serves the research hub.
type ResearchHandler struct {
	research *service.ResearchService
}

// NewResearchHandler creates a new ResearchHandler instance.
func NewResearchHandler(research *service.ResearchService) *ResearchHandler {
	return &ResearchHandler{research: research}
}

// RegisterRoutes registers the research routes. aiGuard rate-limits the
// query endpoint.
func (h *ResearchHandler) RegisterRoutes(router *gin.RouterGroup, aiGuard gin.HandlerFunc) {
	research := router.Group("/research")
	{
		research.GET("/topics", h.GetTopics)
		research.POST("", aiGuard, h.Query)
	}
}

// GetTopics returns the fixed topic list.
func (h *ResearchHandler) GetTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.research.Topics()})
}

// Query runs one research query. A response marked stale was superseded by
// a newer query while in flight and should be discarded by the client.
func (h *ResearchHandler) Query(c *gin.Context) {
	var req types.ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, stale, err := h.research.Query(c.Request.Context(), req.Topic)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTopic) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown research topic"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "research query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topic":  req.Topic,
		"answer": answer,
		"stale":  stale,
	})
}
