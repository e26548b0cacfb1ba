package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/types"
)

// MealPlanHandler manages the set of recipes the user has committed to cook.
type MealPlanHandler struct {
	session *service.Session
}

// NewMealPlanHandler creates a new MealPlanHandler instance.
func NewMealPlanHandler(session *service.Session) *MealPlanHandler {
	return &MealPlanHandler{session: session}
}

// RegisterRoutes registers the meal plan routes.
func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/mealplan")
	{
		plan.GET("", h.ListPlan)
		plan.POST("", h.AddRecipe)
		plan.DELETE("/:id", h.RemoveRecipe)
	}
}

// ListPlan returns the planned recipes.
func (h *MealPlanHandler) ListPlan(c *gin.Context) {
	snap := h.session.Snapshot()
	c.JSON(http.StatusOK, gin.H{"meal_plan": recipeViews(snap, snap.MealPlan)})
}

// AddRecipe promotes a catalog recipe into the plan and derives shopping
// items for its ingredients. Adding an already-planned recipe succeeds
// without duplicating anything.
func (h *MealPlanHandler) AddRecipe(c *gin.Context) {
	var req types.AddMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.session.AddToMealPlan(req.RecipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meal_plan":     recipeViews(snap, snap.MealPlan),
		"shopping_list": snap.ShoppingList,
	})
}

// RemoveRecipe drops a recipe from the plan. The shopping list is left
// untouched so checked-off progress survives.
func (h *MealPlanHandler) RemoveRecipe(c *gin.Context) {
	snap := h.session.RemoveFromMealPlan(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"meal_plan": recipeViews(snap, snap.MealPlan)})
}
