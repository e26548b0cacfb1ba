package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutwise/backend/internal/types"
)

func TestGetDashboardAggregates(t *testing.T) {
	gw := &stubGateway{recipes: []types.Recipe{oatsRecipe()}, tip: "Chew slowly."}
	router, session := setupTestRouter(t, gw)
	seedCatalog(t, router, session)

	w := performRequest(router, http.MethodPost, "/api/v1/mealplan", map[string]interface{}{
		"recipe_id": "r-oats",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Alex", body["profile"].(map[string]interface{})["name"])
	assert.Equal(t, "DASHBOARD", body["view"])
	assert.Len(t, body["recipes"], 1)
	assert.Len(t, body["meal_plan"], 1)
	assert.Equal(t, false, body["loading_recipes"])
}

func TestGetTipGeneratesOnFirstUse(t *testing.T) {
	gw := &stubGateway{tip: "Eat fermented foods daily."}
	router, _ := setupTestRouter(t, gw)

	w := performRequest(router, http.MethodGet, "/api/v1/tip", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Eat fermented foods daily.", decodeBody(t, w)["tip"])
}
