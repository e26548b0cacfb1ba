package types

// Ingredient is a single recipe ingredient. Category is optional and feeds
// shopping-list grouping.
type Ingredient struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Category string `json:"category,omitempty"`
}

// Recipe represents a recipe as returned by the AI gateway. The JSON field
// names match the output schema declared to the completion service, so the
// same struct parses gateway responses and serves API responses. Recipes are
// immutable once received.
type Recipe struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PrepTime     string       `json:"prepTime"`
	Calories     float64      `json:"calories"`
	Tags         []string     `json:"tags"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	GutBenefits  string       `json:"gutBenefits"`
	ImageKeyword string       `json:"imageKeyword,omitempty"`
}
