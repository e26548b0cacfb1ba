package service

import (
	"fmt"
	"net/url"

	"github.com/gutwise/backend/internal/types"
)

// Placeholder image dimensions for the recipe card and detail views.
const (
	cardImageWidth    = 600
	cardImageHeight   = 400
	detailImageWidth  = 800
	detailImageHeight = 600
)

const placeholderImageBase = "https://picsum.photos/seed"

// CardImageURL returns the deterministic placeholder image for a recipe
// card, seeded by the recipe's image keyword or, absent that, its id.
func CardImageURL(r types.Recipe) string {
	return placeholderURL(r, cardImageWidth, cardImageHeight)
}

// DetailImageURL returns the larger placeholder used by the detail view.
func DetailImageURL(r types.Recipe) string {
	return placeholderURL(r, detailImageWidth, detailImageHeight)
}

func placeholderURL(r types.Recipe, w, h int) string {
	seed := r.ImageKeyword
	if seed == "" {
		seed = r.ID
	}
	return fmt.Sprintf("%s/%s/%d/%d", placeholderImageBase, url.PathEscape(seed), w, h)
}
