package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/types"
)

// stubGateway is a canned-response AIGateway for handler tests.
type stubGateway struct {
	recipes    []types.Recipe
	recipesErr error
	tip        string
	explainFn  func(string) string
	researchFn func(string) string
}

func (g *stubGateway) GenerateRecipes(_ context.Context, _ types.UserProfile, _ int) ([]types.Recipe, error) {
	return g.recipes, g.recipesErr
}

func (g *stubGateway) GenerateDailyTip(_ context.Context, _ types.UserProfile) string {
	if g.tip == "" {
		return "Stay hydrated and eat plenty of fiber!"
	}
	return g.tip
}

func (g *stubGateway) ExplainIngredient(_ context.Context, ingredient string) string {
	if g.explainFn != nil {
		return g.explainFn(ingredient)
	}
	return "Nutritious ingredient."
}

func (g *stubGateway) ResearchTopic(_ context.Context, topic string) string {
	if g.researchFn != nil {
		return g.researchFn(topic)
	}
	return "Research summary."
}

// setupTestRouter wires every handler against a fresh session backed by the
// given gateway. The AI guard is a pass-through; rate limiting has its own
// tests.
func setupTestRouter(t *testing.T, gw service.AIGateway) (*gin.Engine, *service.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	session := service.NewSession(gw, logger)
	research := service.NewResearchService(gw, logger)
	noGuard := func(c *gin.Context) {}

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewProfileHandler(session).RegisterRoutes(v1, noGuard)
	NewRecipeHandler(session, gw).RegisterRoutes(v1, noGuard)
	NewMealPlanHandler(session).RegisterRoutes(v1)
	NewShoppingHandler(session).RegisterRoutes(v1)
	NewJournalHandler(session).RegisterRoutes(v1)
	NewResearchHandler(research).RegisterRoutes(v1, noGuard)
	NewViewHandler(session).RegisterRoutes(v1)
	NewDashboardHandler(session).RegisterRoutes(v1, noGuard)

	return router, session
}

// performRequest issues a request against the in-memory router. A nil body
// sends no payload.
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// seedCatalog saves a profile and waits for the async catalog generation to
// land, so tests exercise the post-generation state.
func seedCatalog(t *testing.T, router *gin.Engine, session *service.Session) {
	t.Helper()
	w := performRequest(router, http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"name": "Alex",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.Eventually(t, func() bool {
		snap := session.Snapshot()
		return !snap.LoadingRecipes && len(snap.Catalog) > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func oatsRecipe() types.Recipe {
	return types.Recipe{
		ID:          "r-oats",
		Title:       "Overnight Oats",
		Description: "Fiber-rich breakfast.",
		PrepTime:    "10 min",
		Calories:    320,
		Tags:        []string{"Breakfast", "High Fiber"},
		Ingredients: []types.Ingredient{
			{Name: "Oats", Amount: "1 cup", Category: "Grains"},
			{Name: "Kefir", Amount: "200ml", Category: "Dairy"},
		},
		Instructions: []string{"Combine", "Chill overnight"},
		GutBenefits:  "Beta-glucan feeds beneficial bacteria.",
		ImageKeyword: "oats",
	}
}

func lentilRecipe() types.Recipe {
	return types.Recipe{
		ID:          "r-lentil",
		Title:       "Lentil Soup",
		Description: "Warming and prebiotic.",
		PrepTime:    "35 min",
		Calories:    410,
		Tags:        []string{"Dinner"},
		Ingredients: []types.Ingredient{
			{Name: "Lentils", Amount: "250g", Category: "Legumes"},
		},
		Instructions: []string{"Simmer"},
		GutBenefits:  "Resistant starch.",
	}
}
