// Package pricing implements the stateless catalog operations: filtering by
// provider and model class, min/max highlighting, and cost estimation from
// approximate token counts.
package pricing

import "github.com/julianshen/pricemap/internal/catalog"

// Selection is the active filter pair. The zero value selects nothing
// specific and behaves like DefaultSelection.
type Selection struct {
	Provider catalog.ProviderGroup `json:"provider"`
	Class    catalog.ModelClass    `json:"class"`
}

// DefaultSelection selects every record.
func DefaultSelection() Selection {
	return Selection{Provider: catalog.GroupAll, Class: catalog.ClassAll}
}

// Matches reports whether r passes both selectors.
func (s Selection) Matches(r catalog.ModelRecord) bool {
	if s.Provider != "" && s.Provider != catalog.GroupAll && r.ProviderGroup != s.Provider {
		return false
	}
	if s.Class != "" && s.Class != catalog.ClassAll && catalog.Classify(r) != s.Class {
		return false
	}
	return true
}

// Filter returns the records matching provider and class, in input order.
// The result may be empty.
func Filter(records []catalog.ModelRecord, provider catalog.ProviderGroup, class catalog.ModelClass) []catalog.ModelRecord {
	return Selection{Provider: provider, Class: class}.Apply(records)
}

// Apply filters records with s.
func (s Selection) Apply(records []catalog.ModelRecord) []catalog.ModelRecord {
	out := make([]catalog.ModelRecord, 0, len(records))
	for _, r := range records {
		if s.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
