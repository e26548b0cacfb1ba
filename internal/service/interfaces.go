package service

import (
	"context"

	"github.com/gutwise/backend/internal/types"
)

// AIGateway defines the boundary to the external completion service. All
// calls are stateless and independently retryable; tip, explanation and
// research calls swallow their own failures and return safe fallback text,
// while recipe generation surfaces its error so the caller can degrade to
// an empty catalog.
type AIGateway interface {
	GenerateRecipes(ctx context.Context, profile types.UserProfile, count int) ([]types.Recipe, error)
	GenerateDailyTip(ctx context.Context, profile types.UserProfile) string
	ExplainIngredient(ctx context.Context, ingredient string) string
	ResearchTopic(ctx context.Context, topic string) string
}
