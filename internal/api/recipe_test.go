package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutwise/backend/internal/types"
)

func TestListRecipesEmptyCatalog(t *testing.T) {
	router, _ := setupTestRouter(t, &stubGateway{})

	w := performRequest(router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Empty(t, body["recipes"])
	assert.Equal(t, false, body["loading"])
}

func TestRefreshRecipesKeepsCatalogVisible(t *testing.T) {
	gw := &stubGateway{recipes: []types.Recipe{oatsRecipe()}}
	router, session := setupTestRouter(t, gw)
	seedCatalog(t, router, session)

	w := performRequest(router, http.MethodPost, "/api/v1/recipes/refresh", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["loading"])
	assert.Len(t, body["recipes"], 1, "old catalog stays visible during refresh")
}

func TestGetRecipeDetail(t *testing.T) {
	gw := &stubGateway{recipes: []types.Recipe{oatsRecipe()}}
	router, session := setupTestRouter(t, gw)
	seedCatalog(t, router, session)

	w := performRequest(router, http.MethodGet, "/api/v1/recipes/r-oats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	recipe := body["recipe"].(map[string]interface{})
	assert.Equal(t, "Overnight Oats", recipe["title"])
	assert.Equal(t, "https://picsum.photos/seed/oats/800/600", body["image_url"])
}

func TestGetRecipeNotFound(t *testing.T) {
	router, _ := setupTestRouter(t, &stubGateway{})

	w := performRequest(router, http.MethodGet, "/api/v1/recipes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExplainIngredient(t *testing.T) {
	gw := &stubGateway{explainFn: func(ing string) string {
		return ing + " supports digestion."
	}}
	router, _ := setupTestRouter(t, gw)

	w := performRequest(router, http.MethodPost, "/api/v1/recipes/explain-ingredient", map[string]interface{}{
		"ingredient": "Kefir",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Kefir", body["ingredient"])
	assert.Equal(t, "Kefir supports digestion.", body["explanation"])
}

func TestExplainIngredientRequiresIngredient(t *testing.T) {
	router, _ := setupTestRouter(t, &stubGateway{})

	w := performRequest(router, http.MethodPost, "/api/v1/recipes/explain-ingredient", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
