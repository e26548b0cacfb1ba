package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/types"
)

// ProfileHandler handles the settings flow.
type ProfileHandler struct {
	session *service.Session
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(session *service.Session) *ProfileHandler {
	return &ProfileHandler{session: session}
}

// RegisterRoutes registers the profile routes. saveGuard rate-limits the
// save endpoint since it triggers AI generation.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, saveGuard gin.HandlerFunc) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", saveGuard, h.SaveProfile)
		profile.GET("/options", h.GetOptions)
	}
}

// GetProfile returns the current user profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Snapshot().Profile)
}

// SaveProfile replaces the profile wholesale and kicks off recipe and tip
// regeneration. The response reflects the immediate state: catalog cleared,
// generation in flight, view back on the dashboard.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := types.UserProfile{
		Name:         req.Name,
		Restrictions: emptyIfNil(req.Restrictions),
		Intolerances: emptyIfNil(req.Intolerances),
		Goals:        emptyIfNil(req.Goals),
	}
	if profile.Name == "" {
		profile.Name = "Guest"
	}

	snap := h.session.SaveProfile(profile)
	c.JSON(http.StatusOK, gin.H{
		"profile":         snap.Profile,
		"view":            snap.View,
		"loading_recipes": snap.LoadingRecipes,
	})
}

// GetOptions returns the fixed choices offered on the settings screen.
func (h *ProfileHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, types.ProfileOptions{
		Restrictions: types.RestrictionOptions,
		Intolerances: types.IntoleranceOptions,
		Goals:        types.GoalOptions,
	})
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
