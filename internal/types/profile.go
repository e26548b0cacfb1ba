package types

// UserProfile holds the user's dietary restrictions, intolerances and goals.
// It is replaced wholesale on settings save; there are no merge semantics.
type UserProfile struct {
	Name         string   `json:"name"`
	Restrictions []string `json:"restrictions"`
	Intolerances []string `json:"intolerances"`
	Goals        []string `json:"goals"`
}

// DefaultProfile is the profile a fresh session starts with.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:         "Guest",
		Restrictions: []string{},
		Intolerances: []string{},
		Goals:        []string{},
	}
}

// ProfileOptions lists the choices offered on the settings screen.
type ProfileOptions struct {
	Restrictions []string `json:"restrictions"`
	Intolerances []string `json:"intolerances"`
	Goals        []string `json:"goals"`
}

var (
	RestrictionOptions = []string{"Low FODMAP", "Gluten-Free", "Dairy-Free", "Vegan", "Vegetarian", "Paleo"}
	IntoleranceOptions = []string{"Lactose", "Garlic", "Onion", "Histamine", "Legumes", "Nuts"}
	GoalOptions        = []string{"Reduce Bloating", "Improve Digestion", "Increase Fiber", "Anti-Inflammatory", "Boost Immunity"}
)
