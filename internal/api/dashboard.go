package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
)

// DashboardHandler aggregates everything the home view renders in one call.
type DashboardHandler struct {
	session *service.Session
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(session *service.Session) *DashboardHandler {
	return &DashboardHandler{session: session}
}

// RegisterRoutes registers the dashboard routes. aiGuard rate-limits the
// tip endpoint, which may generate on first use.
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup, aiGuard gin.HandlerFunc) {
	router.GET("/dashboard", h.GetDashboard)
	router.GET("/tip", aiGuard, h.GetTip)
}

// GetDashboard returns the profile, catalog, meal plan and current view.
// The tip is served separately because it may block on generation.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap := h.session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"profile":         snap.Profile,
		"view":            snap.View,
		"recipes":         recipeViews(snap, snap.Catalog),
		"loading_recipes": snap.LoadingRecipes,
		"meal_plan":       recipeViews(snap, snap.MealPlan),
		"daily_tip":       snap.DailyTip,
	})
}

// GetTip returns the daily tip, generating one on first use.
func (h *DashboardHandler) GetTip(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tip": h.session.DailyTip(c.Request.Context())})
}
