package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutwise/backend/internal/types"
)

func TestAddToMealPlanDerivesShoppingItems(t *testing.T) {
	gw := &stubGateway{recipes: []types.Recipe{oatsRecipe()}}
	router, session := setupTestRouter(t, gw)
	seedCatalog(t, router, session)

	w := performRequest(router, http.MethodPost, "/api/v1/mealplan", map[string]interface{}{
		"recipe_id": "r-oats",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["meal_plan"], 1)

	items := body["shopping_list"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Oats (1 cup)", first["name"])
	assert.Equal(t, "Grains", first["category"])
	assert.Equal(t, false, first["checked"])
}

func TestAddToMealPlanIsIdempotent(t *testing.T) {
	gw := &stubGateway{recipes: []types.Recipe{oatsRecipe()}}
	router, session := setupTestRouter(t, gw)
	seedCatalog(t, router, session)

	for i := 0; i < 2; i++ {
		w := performRequest(router, http.MethodPost, "/api/v1/mealplan", map[string]interface{}{
			"recipe_id": "r-oats",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	snap := session.Snapshot()
	assert.Len(t, snap.MealPlan, 1)
	assert.Len(t, snap.ShoppingList, 2, "re-adding must not duplicate shopping items")
}

func TestAddToMealPlanUnknownRecipe(t *testing.T) {
	router, _ := setupTestRouter(t, &stubGateway{})

	w := performRequest(router, http.MethodPost, "/api/v1/mealplan", map[string]interface{}{
		"recipe_id": "nope",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromMealPlanKeepsShoppingList(t *testing.T) {
	gw := &stubGateway{recipes: []types.Recipe{oatsRecipe()}}
	router, session := setupTestRouter(t, gw)
	seedCatalog(t, router, session)

	w := performRequest(router, http.MethodPost, "/api/v1/mealplan", map[string]interface{}{
		"recipe_id": "r-oats",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodDelete, "/api/v1/mealplan/r-oats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	snap := session.Snapshot()
	assert.Empty(t, snap.MealPlan)
	assert.Len(t, snap.ShoppingList, 2, "removal must not cascade into the shopping list")
}

func TestListMealPlanMarksMembership(t *testing.T) {
	gw := &stubGateway{recipes: []types.Recipe{oatsRecipe(), lentilRecipe()}}
	router, session := setupTestRouter(t, gw)
	seedCatalog(t, router, session)

	w := performRequest(router, http.MethodPost, "/api/v1/mealplan", map[string]interface{}{
		"recipe_id": "r-oats",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	for _, raw := range body["recipes"].([]interface{}) {
		recipe := raw.(map[string]interface{})
		planned := recipe["id"] == "r-oats"
		assert.Equal(t, planned, recipe["in_meal_plan"], "recipe %v", recipe["id"])
	}
}
