package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gutwise/backend/config"
	"github.com/gutwise/backend/internal/router"
	"github.com/gutwise/backend/internal/service"
)

// completionPayload wraps content in the chat-completions response shape.
func completionPayload(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
}

const recipesJSON = `{"recipes": [
	{
		"id": "overnight-oats",
		"title": "Overnight Oats",
		"description": "Fiber-rich breakfast.",
		"prepTime": "10 min",
		"calories": 320,
		"tags": ["Breakfast"],
		"ingredients": [{"name": "Oats", "amount": "1 cup", "category": "Grains"}],
		"instructions": ["Combine", "Chill"],
		"gutBenefits": "Beta-glucan.",
		"imageKeyword": "oats"
	},
	{
		"id": "kefir-smoothie",
		"title": "Kefir Smoothie",
		"description": "Probiotic drink.",
		"prepTime": "5 min",
		"calories": 210,
		"tags": ["Drink"],
		"ingredients": [{"name": "Kefir", "amount": "250ml", "category": "Dairy"}],
		"instructions": ["Blend"],
		"gutBenefits": "Live cultures."
	}
]}`

// newStack stands up the whole HTTP surface against a fake completion
// endpoint. JSON-mode requests get the canned recipe payload; free-text
// requests get a canned sentence.
func newStack(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ResponseFormat map[string]string `json:"response_format"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		content := "A short helpful answer."
		if req.ResponseFormat["type"] == "json_object" {
			content = recipesJSON
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionPayload(content))
	}))
	t.Cleanup(fake.Close)

	cfg := &config.Config{
		AIAPIKey:       "test-key",
		AIAPIURL:       fake.URL,
		AIModel:        "deepseek-chat",
		AllowedOrigins: []string{"http://localhost:5173"},
	}

	logger := zap.NewNop()
	llm := service.NewLLMService(cfg, nil, logger)
	session := service.NewSession(llm, logger)
	research := service.NewResearchService(llm, logger)

	return router.SetupRouter(router.Deps{
		Session:  session,
		Gateway:  llm,
		Research: research,
		Logger:   logger,
		Origins:  cfg.AllowedOrigins,
	})
}

func do(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// waitForCatalog polls the recipe list until generation lands.
func waitForCatalog(t *testing.T, router *gin.Engine, want int) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.Eventually(t, func() bool {
		w := do(router, http.MethodGet, "/api/v1/recipes", nil)
		if w.Code != http.StatusOK {
			return false
		}
		body = decode(t, w)
		recipes, _ := body["recipes"].([]interface{})
		return body["loading"] == false && len(recipes) == want
	}, 3*time.Second, 20*time.Millisecond)
	return body
}

// TestFullUserFlow walks the happy path from onboarding to a logged meal.
func TestFullUserFlow(t *testing.T) {
	router := newStack(t)

	w := do(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Onboard: save a profile, which triggers recipe generation.
	w = do(router, http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"name":         "Alex",
		"restrictions": []string{"Gluten-Free"},
		"goals":        []string{"Reduce Bloating"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decode(t, w)["loading_recipes"])

	body := waitForCatalog(t, router, 2)
	recipes := body["recipes"].([]interface{})
	first := recipes[0].(map[string]interface{})
	assert.Equal(t, "Overnight Oats", first["title"])
	assert.Equal(t, "https://picsum.photos/seed/oats/600/400", first["image_url"])

	// Plan the first recipe; its ingredients land on the shopping list.
	w = do(router, http.MethodPost, "/api/v1/mealplan", map[string]interface{}{
		"recipe_id": "overnight-oats",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/shopping-list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Oats (1 cup)", items[0].(map[string]interface{})["name"])

	// Log the meal; the view follows to the journal.
	w = do(router, http.MethodPost, "/api/v1/journal", map[string]interface{}{
		"recipe_id": "overnight-oats",
		"rating":    "Great",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "JOURNAL", decode(t, w)["view"])

	w = do(router, http.MethodGet, "/api/v1/journal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	require.Len(t, body["entries"], 1)
	assert.Equal(t, float64(1), body["summary"].(map[string]interface{})["good_or_great"])

	// The research hub answers through the same completion endpoint.
	w = do(router, http.MethodPost, "/api/v1/research", map[string]interface{}{
		"topic": "Fermented Foods",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A short helpful answer.", decode(t, w)["answer"])
}

// TestTipServedThroughGateway covers the free-text path end to end.
func TestTipServedThroughGateway(t *testing.T) {
	router := newStack(t)

	w := do(router, http.MethodGet, "/api/v1/tip", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A short helpful answer.", decode(t, w)["tip"])
}
