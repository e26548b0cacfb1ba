package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gutwise/backend/internal/state"
	"github.com/gutwise/backend/internal/types"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// Session owns the single active session's application state. All mutation
// goes through the pure transitions in the state package, applied under one
// mutex, so the state invariants hold without further coordination.
//
// Profile saves and refreshes regenerate the catalog asynchronously. Each
// regeneration carries a generation token; a completion whose token is no
// longer current is discarded, so a slow stale response can never overwrite
// a newer catalog (last-write-wins is resolved in favor of the newest
// request, not the slowest response).
type Session struct {
	mu         sync.RWMutex
	st         state.AppState
	catalogGen uint64
	tipGen     uint64

	gateway     AIGateway
	logger      *zap.Logger
	recipeCount int
}

// NewSession creates a session in its initial state.
func NewSession(gateway AIGateway, logger *zap.Logger) *Session {
	return &Session{
		st:          state.New(),
		gateway:     gateway,
		logger:      logger,
		recipeCount: DefaultRecipeCount,
	}
}

// Snapshot returns the current state. Snapshots are immutable: transitions
// copy on write, so holding one across later mutations is safe.
func (s *Session) Snapshot() state.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st
}

// SaveProfile replaces the profile wholesale, clears the catalog and kicks
// off recipe and tip regeneration in the background. The two generations
// are independent: neither blocks nor orders against the other, and each
// swallows its own failure (empty catalog, stale tip) without rollback.
func (s *Session) SaveProfile(p types.UserProfile) state.AppState {
	s.mu.Lock()
	s.st = state.SaveProfile(s.st, p)
	s.catalogGen++
	s.tipGen++
	catalogGen, tipGen := s.catalogGen, s.tipGen
	snap := s.st
	s.mu.Unlock()

	go s.regenerateCatalog(catalogGen, p)
	go s.regenerateTip(tipGen, p)

	return snap
}

// RefreshRecipes re-issues recipe generation with the current profile. The
// existing catalog stays visible until the replacement lands.
func (s *Session) RefreshRecipes() state.AppState {
	s.mu.Lock()
	s.st = state.BeginRefresh(s.st)
	s.catalogGen++
	gen := s.catalogGen
	p := s.st.Profile
	snap := s.st
	s.mu.Unlock()

	go s.regenerateCatalog(gen, p)

	return snap
}

func (s *Session) regenerateCatalog(gen uint64, p types.UserProfile) {
	recipes, err := s.gateway.GenerateRecipes(context.Background(), p, s.recipeCount)
	if err != nil {
		// Degrade to an empty catalog; the client renders the onboarding
		// state, not an error banner.
		s.logger.Warn("recipe generation failed, catalog left empty", zap.Error(err))
		recipes = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.catalogGen {
		s.logger.Info("discarding stale recipe generation",
			zap.Uint64("generation", gen), zap.Uint64("current", s.catalogGen))
		return
	}
	s.st = state.SetCatalog(s.st, recipes)
}

func (s *Session) regenerateTip(gen uint64, p types.UserProfile) {
	tip := s.gateway.GenerateDailyTip(context.Background(), p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.tipGen {
		return
	}
	s.st = state.SetDailyTip(s.st, tip)
}

// DailyTip returns the current tip, generating one on first use.
func (s *Session) DailyTip(ctx context.Context) string {
	s.mu.RLock()
	tip := s.st.DailyTip
	p := s.st.Profile
	gen := s.tipGen
	s.mu.RUnlock()
	if tip != "" {
		return tip
	}

	tip = s.gateway.GenerateDailyTip(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.tipGen && s.st.DailyTip == "" {
		s.st = state.SetDailyTip(s.st, tip)
	}
	return tip
}

// AddToMealPlan promotes a catalog recipe into the meal plan, deriving
// shopping items for its ingredients. Adding an already-planned recipe is
// a no-op.
func (s *Session) AddToMealPlan(recipeID string) (state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe, ok := state.FindRecipe(s.st, recipeID)
	if !ok {
		return s.st, ErrRecipeNotFound
	}
	s.st = state.AddToMealPlan(s.st, recipe, uuid.NewString)
	return s.st, nil
}

// RemoveFromMealPlan drops a recipe from the plan, leaving the shopping
// list untouched.
func (s *Session) RemoveFromMealPlan(recipeID string) state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = state.RemoveFromMealPlan(s.st, recipeID)
	return s.st
}

// AddShoppingItem adds a manual item to the shopping list.
func (s *Session) AddShoppingItem(name, category string) (state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := state.AddShoppingItem(s.st, uuid.NewString(), name, category)
	if err != nil {
		return s.st, err
	}
	s.st = st
	return s.st, nil
}

// ToggleShoppingItem flips an item's checked state. The bool reports whether
// the item existed.
func (s *Session) ToggleShoppingItem(id string) (state.AppState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, found := state.ToggleShoppingItem(s.st, id)
	s.st = st
	return s.st, found
}

// DeleteShoppingItem removes an item; absent ids are a no-op.
func (s *Session) DeleteShoppingItem(id string) state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = state.DeleteShoppingItem(s.st, id)
	return s.st
}

// LogMeal appends a journal entry for the given recipe, stamping id and
// timestamp server-side and denormalizing the recipe title so the entry
// outlives the recipe's presence in catalog or plan. The view switches to
// the journal.
func (s *Session) LogMeal(req types.CreateJournalEntryRequest) (types.JournalEntry, state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := state.FindRecipe(s.st, req.RecipeID)
	if !ok {
		return types.JournalEntry{}, s.st, ErrRecipeNotFound
	}

	rating := req.Rating
	if rating == "" {
		rating = types.RatingGood
	}
	symptoms := req.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	entry := types.JournalEntry{
		ID:          uuid.NewString(),
		Date:        time.Now().UTC(),
		RecipeID:    recipe.ID,
		RecipeTitle: recipe.Title,
		Rating:      rating,
		Symptoms:    symptoms,
		Notes:       req.Notes,
	}

	st, err := state.AppendJournal(s.st, entry)
	if err != nil {
		return types.JournalEntry{}, s.st, err
	}
	s.st = st
	return entry, s.st, nil
}

// SetView switches the active view.
func (s *Session) SetView(v types.AppView) (state.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := state.SetView(s.st, v)
	if err != nil {
		return s.st, err
	}
	s.st = st
	return s.st, nil
}
