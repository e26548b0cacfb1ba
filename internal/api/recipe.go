package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/state"
	"github.com/gutwise/backend/internal/types"
)

// RecipeHandler serves the recipe catalog and its AI affordances.
type RecipeHandler struct {
	session *service.Session
	gateway service.AIGateway
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(session *service.Session, gateway service.AIGateway) *RecipeHandler {
	return &RecipeHandler{session: session, gateway: gateway}
}

// RegisterRoutes registers the recipe routes. aiGuard rate-limits the
// endpoints that reach the completion service.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, aiGuard gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("/refresh", aiGuard, h.RefreshRecipes)
		recipes.POST("/explain-ingredient", aiGuard, h.ExplainIngredient)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes returns the catalog with the loading flag, so an empty
// catalog is distinguishable from a generation still in flight.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	snap := h.session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipeViews(snap, snap.Catalog),
		"loading": snap.LoadingRecipes,
	})
}

// RefreshRecipes re-issues generation with the current profile. The old
// catalog stays visible until the replacement arrives.
func (h *RecipeHandler) RefreshRecipes(c *gin.Context) {
	snap := h.session.RefreshRecipes()
	c.JSON(http.StatusAccepted, gin.H{
		"recipes": recipeViews(snap, snap.Catalog),
		"loading": snap.LoadingRecipes,
	})
}

// GetRecipe returns one recipe from the catalog or meal plan, with the
// larger detail image.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	snap := h.session.Snapshot()
	recipe, ok := state.FindRecipe(snap, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipe":    recipe,
		"image_url": service.DetailImageURL(recipe),
	})
}

// ExplainIngredient asks the AI gateway about one ingredient. Failures are
// already absorbed into fallback text by the gateway.
func (h *RecipeHandler) ExplainIngredient(c *gin.Context) {
	var req types.ExplainIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	explanation := h.gateway.ExplainIngredient(c.Request.Context(), req.Ingredient)
	c.JSON(http.StatusOK, gin.H{
		"ingredient":  req.Ingredient,
		"explanation": explanation,
	})
}
