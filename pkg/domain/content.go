package domain

// Category of a content item; daily slots map to categories.
type Category string

// known categories
const (
	CategoryMotivation Category = "motivation"
	CategoryWellbeing  Category = "wellbeing"
	CategoryTeam       Category = "team"
)

// provider tags recorded in sent history
const (
	ProviderLocal  = "local"
	ProviderRemote = "remote"
	ProviderFeed   = "feed"
)

// ContentItem is a single message candidate produced by a provider. Items
// are ephemeral: produced, formatted, delivered, never stored or mutated.
type ContentItem struct {
	ID       string
	Category Category
	Text     string
	Author   string   // optional attribution
	Tags     []string // optional source tags
	Provider string   // local, remote or feed
}
