package state

import "github.com/gutwise/backend/internal/types"

// GroupShoppingList partitions the list by category, preserving both the
// order categories first appear in and the item order within each category.
// Items without a category fall under Other. Recomputed on every render so
// the grouping can never drift from the flat list.
func GroupShoppingList(items []types.ShoppingItem) []types.ShoppingGroup {
	index := make(map[string]int)
	groups := make([]types.ShoppingGroup, 0)
	for _, it := range items {
		cat := it.Category
		if cat == "" {
			cat = types.CategoryOther
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, types.ShoppingGroup{Category: cat})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// SummarizeJournal derives the counters shown above the journal feed.
func SummarizeJournal(entries []types.JournalEntry) types.JournalSummary {
	sum := types.JournalSummary{Total: len(entries)}
	for _, e := range entries {
		switch e.Rating {
		case types.RatingGood, types.RatingGreat:
			sum.GoodOrGreat++
		case types.RatingPoor:
			sum.Poor++
		}
	}
	return sum
}
