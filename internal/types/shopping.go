package types

// Default categories for shopping items created without one.
const (
	CategoryPantry = "Pantry"
	CategoryCustom = "Custom"
	CategoryOther  = "Other"
)

// ShoppingItem is a single checklist entry. Items derived from a meal-plan
// recipe embed the ingredient amount in the display name, e.g. "Oats (1 cup)".
type ShoppingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Checked  bool   `json:"checked"`
	Category string `json:"category"`
}

// ShoppingGroup is a display partition of the shopping list by category,
// in first-seen order.
type ShoppingGroup struct {
	Category string         `json:"category"`
	Items    []ShoppingItem `json:"items"`
}
