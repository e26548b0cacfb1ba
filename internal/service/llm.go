package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gutwise/backend/config"
	"github.com/gutwise/backend/internal/types"
)

// DefaultRecipeCount is how many recipes a single generation request asks for.
const DefaultRecipeCount = 4

// Fallback strings substituted when an AI call fails or comes back empty.
// They are indistinguishable from a successful-but-boring response.
const (
	tipFallback      = "Stay hydrated and eat plenty of fiber!"
	tipEmptyDefault  = "Eat a diverse range of plants to support your microbiome!"
	explainFallback  = "Nutritious ingredient."
	explainDefault   = "Good for nutrition."
	researchFallback = "Sorry, we couldn't fetch the research at this moment."
)

// Cache TTLs for AI responses. Tips are profile-sensitive and kept short;
// explanations and research answers are stable knowledge.
const (
	tipCacheTTL      = time.Hour
	explainCacheTTL  = 24 * time.Hour
	researchCacheTTL = 24 * time.Hour
)

// LLMService talks to the DeepSeek chat-completions API and caches free-text
// answers in Redis. A nil Redis client disables caching.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	redis  *redis.Client
	logger *zap.Logger
}

var _ AIGateway = (*LLMService)(nil)

// NewLLMService creates a new LLMService instance.
func NewLLMService(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) *LLMService {
	return &LLMService{
		apiKey: cfg.AIAPIKey,
		apiURL: cfg.AIAPIURL,
		model:  cfg.AIModel,
		client: &http.Client{Timeout: 60 * time.Second},
		redis:  redisClient,
		logger: logger,
	}
}

// Message represents a message in the chat.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the completion API.
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature,omitempty"`
	TopP           float64           `json:"top_p,omitempty"`
}

const recipeSystemPrompt = `You are a gut-health focused chef and nutritionist. Respond with a JSON object of the form:
{
    "recipes": [
        {
            "id": "short-unique-slug",
            "title": "Recipe title",
            "description": "One or two sentence description",
            "prepTime": "25 min",
            "calories": 420,
            "tags": ["Low FODMAP", "High Fiber"],
            "ingredients": [
                {"name": "Oats", "amount": "1 cup", "category": "Grains"}
            ],
            "instructions": ["Step 1 ...", "Step 2 ..."],
            "gutBenefits": "Why this recipe aids gut health (e.g. resistant starch, polyphenols)",
            "imageKeyword": "oatmeal"
        }
    ]
}

Note: calories must be a number, not a string. Every recipe must have
non-empty tags, ingredients and instructions. The imageKeyword is a single
word describing the main dish.`

// GenerateRecipes asks the completion service for count recipes tailored to
// the profile. The result has passed ingestion validation: no recipe with
// empty tags, ingredients or instructions, and no duplicate or missing ids.
// Callers treat an error as "no recipes available", not as a hard fault.
func (s *LLMService) GenerateRecipes(ctx context.Context, profile types.UserProfile, count int) ([]types.Recipe, error) {
	if count <= 0 {
		count = DefaultRecipeCount
	}

	prompt := fmt.Sprintf(`Generate %d distinct, gut-health focused recipes tailored for a user with the following profile:
Dietary Restrictions: %s
Intolerances/Triggers: %s
Health Goals: %s

Ensure recipes focus on fiber diversity, prebiotics, and probiotics where appropriate.
Avoid the listed triggers.`,
		count,
		joinOrDefault(profile.Restrictions, "None"),
		joinOrDefault(profile.Intolerances, "None"),
		joinOrDefault(profile.Goals, "General gut health"))

	content, err := s.complete(ctx, []Message{
		{Role: "system", Content: recipeSystemPrompt},
		{Role: "user", Content: prompt},
	}, true)
	if err != nil {
		return nil, fmt.Errorf("recipe generation failed: %w", err)
	}

	recipes, err := parseRecipes(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipes: %w", err)
	}

	return sanitizeRecipes(recipes, s.logger), nil
}

// parseRecipes accepts either the documented {"recipes": [...]} wrapper or a
// bare JSON array, since models emit both.
func parseRecipes(content string) ([]types.Recipe, error) {
	var wrapper struct {
		Recipes []types.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(content), &wrapper); err == nil && wrapper.Recipes != nil {
		return wrapper.Recipes, nil
	}

	var recipes []types.Recipe
	if err := json.Unmarshal([]byte(content), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// sanitizeRecipes enforces the catalog ingestion rules: recipes with empty
// tags, ingredients or instructions are dropped, and a missing or duplicate
// id is replaced with a fresh one. The generator's ids are not trusted to be
// collision-free.
func sanitizeRecipes(recipes []types.Recipe, logger *zap.Logger) []types.Recipe {
	seen := make(map[string]bool, len(recipes))
	clean := make([]types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if len(r.Tags) == 0 || len(r.Ingredients) == 0 || len(r.Instructions) == 0 {
			logger.Warn("dropping malformed recipe from generation response",
				zap.String("title", r.Title))
			continue
		}
		if r.ID == "" || seen[r.ID] {
			r.ID = uuid.NewString()
		}
		seen[r.ID] = true
		clean = append(clean, r)
	}
	return clean
}

// GenerateDailyTip returns a short tip conditioned on the profile's
// restrictions. Failures fall back to a fixed string.
func (s *LLMService) GenerateDailyTip(ctx context.Context, profile types.UserProfile) string {
	cacheKey := "ai:tip:" + strings.ToLower(joinOrDefault(profile.Restrictions, "none"))
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached
	}

	prompt := fmt.Sprintf(
		"Give me a short, 2-sentence actionable tip about the gut-brain axis or fiber diversity specifically for someone who is %s.",
		joinOrDefault(profile.Restrictions, "on no particular diet"))

	content, err := s.complete(ctx, []Message{{Role: "user", Content: prompt}}, false)
	if err != nil {
		s.logger.Warn("daily tip generation failed, using fallback", zap.Error(err))
		return tipFallback
	}
	if content = strings.TrimSpace(content); content == "" {
		return tipEmptyDefault
	}

	s.cacheSet(ctx, cacheKey, content, tipCacheTTL)
	return content
}

// ExplainIngredient returns a short explanation of one ingredient's gut
// health benefits. Failures fall back to a fixed string.
func (s *LLMService) ExplainIngredient(ctx context.Context, ingredient string) string {
	cacheKey := "ai:explain:" + strings.ToLower(strings.TrimSpace(ingredient))
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached
	}

	prompt := fmt.Sprintf("Briefly explain (max 30 words) the gut health benefits of: %s.", ingredient)

	content, err := s.complete(ctx, []Message{{Role: "user", Content: prompt}}, false)
	if err != nil {
		s.logger.Warn("ingredient explanation failed, using fallback",
			zap.String("ingredient", ingredient), zap.Error(err))
		return explainFallback
	}
	if content = strings.TrimSpace(content); content == "" {
		return explainDefault
	}

	s.cacheSet(ctx, cacheKey, content, explainCacheTTL)
	return content
}

// ResearchTopic returns a short research summary for one of the research hub
// topics. Failures fall back to a fixed apology string.
func (s *LLMService) ResearchTopic(ctx context.Context, topic string) string {
	cacheKey := "ai:research:" + strings.ToLower(strings.TrimSpace(topic))
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached
	}

	prompt := fmt.Sprintf(
		`Provide a concise, scientifically grounded summary (approx 150 words) about %q and its impact on gut health. Include one actionable takeaway. Format cleanly.`,
		topic)

	content, err := s.complete(ctx, []Message{{Role: "user", Content: prompt}}, false)
	if err != nil {
		s.logger.Warn("research query failed, using fallback",
			zap.String("topic", topic), zap.Error(err))
		return researchFallback
	}
	if content = strings.TrimSpace(content); content == "" {
		return researchFallback
	}

	s.cacheSet(ctx, cacheKey, content, researchCacheTTL)
	return content
}

// complete performs one request/response round trip against the completion
// API and returns the first choice's content.
func (s *LLMService) complete(ctx context.Context, messages []Message, jsonMode bool) (string, error) {
	reqBody := Request{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.9,
		TopP:        0.9,
	}
	if jsonMode {
		reqBody.ResponseFormat = map[string]string{"type": "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *LLMService) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.redis == nil {
		return "", false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("AI cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (s *LLMService) cacheSet(ctx context.Context, key, val string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, val, ttl).Err(); err != nil {
		s.logger.Warn("AI cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func joinOrDefault(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
