package diagram

import "strings"

// FilterAll keeps every card.
const FilterAll = "all"

// Card is a service tile in the services overview.
type Card struct {
	Title    string `json:"title"`
	Group    string `json:"group"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// Categories splits the space-separated category list.
func (c Card) Categories() []string {
	return strings.Fields(c.Category)
}

// HasCategory reports whether cat is one of the card's categories.
func (c Card) HasCategory(cat string) bool {
	for _, have := range c.Categories() {
		if have == cat {
			return true
		}
	}
	return false
}

// Cards derives one card per leaf, in taxonomy order.
func Cards(t Taxonomy) []Card {
	cards := make([]Card, 0, t.LeafCount())
	for _, g := range t.Groups {
		for _, leaf := range g.Leaves {
			cards = append(cards, Card{
				Title:    leaf.Label,
				Group:    g.Label,
				URL:      leaf.DocURL,
				Category: strings.Join(leaf.Categories, " "),
			})
		}
	}
	return cards
}

// FilterCards keeps the cards tagged with filter. FilterAll and the empty
// string keep every card.
func FilterCards(cards []Card, filter string) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if filter == "" || filter == FilterAll || c.HasCategory(filter) {
			out = append(out, c)
		}
	}
	return out
}

// CardCategories lists the distinct categories across cards in first-seen
// order, prefixed by FilterAll. It drives the filter tabs.
func CardCategories(cards []Card) []string {
	seen := map[string]bool{}
	out := []string{FilterAll}
	for _, c := range cards {
		for _, cat := range c.Categories() {
			if !seen[cat] {
				seen[cat] = true
				out = append(out, cat)
			}
		}
	}
	return out
}
