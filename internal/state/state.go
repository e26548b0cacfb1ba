// Package state holds the single-session application state and the pure
// transition functions that produce new snapshots from it. Transitions take
// no clock and no randomness; identifiers and timestamps are supplied by the
// caller, which keeps every function deterministic and directly testable.
package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gutwise/backend/internal/types"
)

var (
	ErrEmptyItemName  = errors.New("shopping item name is empty")
	ErrInvalidRating  = errors.New("invalid meal rating")
	ErrUnknownSymptom = errors.New("symptom not in vocabulary")
	ErrInvalidView    = errors.New("invalid view")
)

// AppState is one immutable snapshot of the session. Transitions return a
// new snapshot and never mutate their input; slices are copied on write so
// an older snapshot stays valid after later transitions.
type AppState struct {
	View           types.AppView
	Profile        types.UserProfile
	Catalog        []types.Recipe
	LoadingRecipes bool
	DailyTip       string
	MealPlan       []types.Recipe
	ShoppingList   []types.ShoppingItem
	Journal        []types.JournalEntry
}

// New returns the state a fresh session starts in.
func New() AppState {
	return AppState{
		View:    types.ViewDashboard,
		Profile: types.DefaultProfile(),
	}
}

// SaveProfile replaces the profile wholesale, clears the catalog to signal
// staleness, marks recipes as regenerating and switches to the dashboard.
func SaveProfile(s AppState, p types.UserProfile) AppState {
	s.Profile = p
	s.Catalog = nil
	s.LoadingRecipes = true
	s.View = types.ViewDashboard
	return s
}

// BeginRefresh marks a catalog regeneration as in flight. Unlike a profile
// save it keeps the current catalog visible until the replacement arrives.
func BeginRefresh(s AppState) AppState {
	s.LoadingRecipes = true
	return s
}

// SetCatalog replaces the catalog wholesale and clears the loading flag.
func SetCatalog(s AppState, recipes []types.Recipe) AppState {
	s.Catalog = append([]types.Recipe(nil), recipes...)
	s.LoadingRecipes = false
	return s
}

// SetDailyTip replaces the dashboard tip.
func SetDailyTip(s AppState, tip string) AppState {
	s.DailyTip = tip
	return s
}

// SetView switches the active view.
func SetView(s AppState, v types.AppView) (AppState, error) {
	if !v.Valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidView, v)
	}
	s.View = v
	return s, nil
}

// InMealPlan reports whether a recipe with the given id is planned.
func InMealPlan(s AppState, id string) bool {
	for _, r := range s.MealPlan {
		if r.ID == id {
			return true
		}
	}
	return false
}

// FindRecipe looks a recipe up by id in the catalog, then the meal plan.
func FindRecipe(s AppState, id string) (types.Recipe, bool) {
	for _, r := range s.Catalog {
		if r.ID == id {
			return r, true
		}
	}
	for _, r := range s.MealPlan {
		if r.ID == id {
			return r, true
		}
	}
	return types.Recipe{}, false
}

// AddToMealPlan appends the recipe to the plan and derives one unchecked
// shopping item per ingredient. Adding an already-planned recipe is a no-op:
// the plan stays deduplicated and no shopping items are derived twice.
// newID supplies the identifier for each derived item.
func AddToMealPlan(s AppState, recipe types.Recipe, newID func() string) AppState {
	if InMealPlan(s, recipe.ID) {
		return s
	}
	s.MealPlan = append(append([]types.Recipe(nil), s.MealPlan...), recipe)

	items := append([]types.ShoppingItem(nil), s.ShoppingList...)
	for _, ing := range recipe.Ingredients {
		category := ing.Category
		if category == "" {
			category = types.CategoryPantry
		}
		items = append(items, types.ShoppingItem{
			ID:       newID(),
			Name:     fmt.Sprintf("%s (%s)", ing.Name, ing.Amount),
			Checked:  false,
			Category: category,
		})
	}
	s.ShoppingList = items
	return s
}

// RemoveFromMealPlan filters the recipe out of the plan by id. The shopping
// list is deliberately left untouched so checked-off progress survives.
func RemoveFromMealPlan(s AppState, id string) AppState {
	plan := make([]types.Recipe, 0, len(s.MealPlan))
	for _, r := range s.MealPlan {
		if r.ID != id {
			plan = append(plan, r)
		}
	}
	s.MealPlan = plan
	return s
}

// AddShoppingItem appends a manual item. Empty or whitespace-only names are
// rejected; a missing category defaults to Custom.
func AddShoppingItem(s AppState, id, name, category string) (AppState, error) {
	if strings.TrimSpace(name) == "" {
		return s, ErrEmptyItemName
	}
	if category == "" {
		category = types.CategoryCustom
	}
	s.ShoppingList = append(append([]types.ShoppingItem(nil), s.ShoppingList...), types.ShoppingItem{
		ID:       id,
		Name:     name,
		Checked:  false,
		Category: category,
	})
	return s, nil
}

// ToggleShoppingItem flips the checked flag of the item with the given id.
// The returned bool reports whether the item existed.
func ToggleShoppingItem(s AppState, id string) (AppState, bool) {
	items := append([]types.ShoppingItem(nil), s.ShoppingList...)
	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			s.ShoppingList = items
			return s, true
		}
	}
	return s, false
}

// DeleteShoppingItem removes the item with the given id. Deleting an absent
// id is a no-op.
func DeleteShoppingItem(s AppState, id string) AppState {
	items := make([]types.ShoppingItem, 0, len(s.ShoppingList))
	for _, it := range s.ShoppingList {
		if it.ID != id {
			items = append(items, it)
		}
	}
	s.ShoppingList = items
	return s
}

// AppendJournal validates and appends a journal entry, then switches to the
// journal view. Prior entries are never reordered or mutated.
func AppendJournal(s AppState, entry types.JournalEntry) (AppState, error) {
	if !entry.Rating.Valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidRating, entry.Rating)
	}
	for _, sym := range entry.Symptoms {
		if !knownSymptom(sym) {
			return s, fmt.Errorf("%w: %q", ErrUnknownSymptom, sym)
		}
	}
	s.Journal = append(append([]types.JournalEntry(nil), s.Journal...), entry)
	s.View = types.ViewJournal
	return s, nil
}

func knownSymptom(name string) bool {
	for _, s := range types.SymptomOptions {
		if s == name {
			return true
		}
	}
	return false
}
