package types

// AppView selects which surface the client renders. It is a plain component
// switch, not a state machine; transitions carry no guards.
type AppView string

const (
	ViewDashboard    AppView = "DASHBOARD"
	ViewShoppingList AppView = "SHOPPING_LIST"
	ViewJournal      AppView = "JOURNAL"
	ViewResearch     AppView = "RESEARCH"
	ViewSettings     AppView = "SETTINGS"
)

// Valid reports whether v is one of the enumerated views.
func (v AppView) Valid() bool {
	switch v {
	case ViewDashboard, ViewShoppingList, ViewJournal, ViewResearch, ViewSettings:
		return true
	}
	return false
}
