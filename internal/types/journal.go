package types

import "time"

// MealRating is the four-point quality scale for a logged meal.
type MealRating string

const (
	RatingPoor  MealRating = "Poor"
	RatingFair  MealRating = "Fair"
	RatingGood  MealRating = "Good"
	RatingGreat MealRating = "Great"
)

// Valid reports whether r is one of the four scale values.
func (r MealRating) Valid() bool {
	switch r {
	case RatingPoor, RatingFair, RatingGood, RatingGreat:
		return true
	}
	return false
}

// SymptomOptions is the fixed vocabulary offered when tracking a meal.
var SymptomOptions = []string{"Bloating", "Gas", "Abdominal Pain", "Nausea", "Fatigue", "Brain Fog", "Heartburn"}

// JournalEntry records a cooked meal and its aftermath. The recipe title is
// denormalized so the entry stays valid if the recipe later leaves the
// catalog or meal plan. Entries are append-only and never mutated.
type JournalEntry struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	RecipeID    string     `json:"recipe_id"`
	RecipeTitle string     `json:"recipe_title"`
	Rating      MealRating `json:"rating"`
	Symptoms    []string   `json:"symptoms"`
	Notes       string     `json:"notes,omitempty"`
}

// JournalSummary holds the derived counters shown above the journal feed.
type JournalSummary struct {
	Total       int `json:"total"`
	GoodOrGreat int `json:"good_or_great"`
	Poor        int `json:"poor"`
}
