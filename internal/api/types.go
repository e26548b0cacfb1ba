package api

import (
	"github.com/gutwise/backend/internal/service"
	"github.com/gutwise/backend/internal/state"
	"github.com/gutwise/backend/internal/types"
)

// RecipeView is a catalog recipe decorated for display: its placeholder
// image and whether the add-to-plan affordance should be offered.
type RecipeView struct {
	types.Recipe
	ImageURL   string `json:"image_url"`
	InMealPlan bool   `json:"in_meal_plan"`
}

func recipeViews(s state.AppState, recipes []types.Recipe) []RecipeView {
	views := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, RecipeView{
			Recipe:     r,
			ImageURL:   service.CardImageURL(r),
			InMealPlan: state.InMealPlan(s, r.ID),
		})
	}
	return views
}
