package types

// UpdateProfileRequest is the request body for replacing the user profile.
// The whole profile is overwritten; omitted lists become empty, not merged.
type UpdateProfileRequest struct {
	Name         string   `json:"name"`
	Restrictions []string `json:"restrictions"`
	Intolerances []string `json:"intolerances"`
	Goals        []string `json:"goals"`
}

// AddMealPlanRequest adds a catalog recipe to the meal plan.
type AddMealPlanRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
}

// AddShoppingItemRequest adds a manual shopping-list item.
type AddShoppingItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// CreateJournalEntryRequest is the tracking form payload.
type CreateJournalEntryRequest struct {
	RecipeID string     `json:"recipe_id" binding:"required"`
	Rating   MealRating `json:"rating"`
	Symptoms []string   `json:"symptoms"`
	Notes    string     `json:"notes"`
}

// ExplainIngredientRequest asks the AI gateway about one ingredient.
type ExplainIngredientRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
}

// ResearchRequest queries the research hub for one of the fixed topics.
type ResearchRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// SetViewRequest switches the active view.
type SetViewRequest struct {
	View AppView `json:"view" binding:"required"`
}
