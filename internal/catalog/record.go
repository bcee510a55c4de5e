// Package catalog holds the immutable AI-model pricing catalog: the record
// type, the compiled-in price table, name-based classification, and the
// sources a refresh can load the catalog from.
package catalog

import "strconv"

// ProviderGroup is the closed set of vendor tags a record belongs to.
type ProviderGroup string

const (
	GroupAll       ProviderGroup = "all"
	GroupOpenAI    ProviderGroup = "openai"
	GroupAnthropic ProviderGroup = "anthropic"
	GroupAWS       ProviderGroup = "aws"
	GroupAzure     ProviderGroup = "azure"
	GroupGCP       ProviderGroup = "gcp"
)

// ProviderGroups lists the selectable provider tabs in display order,
// starting with GroupAll.
func ProviderGroups() []ProviderGroup {
	return []ProviderGroup{GroupAll, GroupOpenAI, GroupAnthropic, GroupAWS, GroupAzure, GroupGCP}
}

// Valid reports whether g is GroupAll or one of the known vendor tags.
func (g ProviderGroup) Valid() bool {
	for _, known := range ProviderGroups() {
		if g == known {
			return true
		}
	}
	return false
}

// ModelRecord is one catalog entry. Prices are quoted in Currency per
// PricingUnit; a price of exactly 0 means the direction does not apply.
type ModelRecord struct {
	Name             string        `json:"name" yaml:"name"`
	Provider         string        `json:"provider" yaml:"provider"`
	ProviderGroup    ProviderGroup `json:"provider_group" yaml:"provider_group"`
	ContextLength    string        `json:"context_length" yaml:"context_length"`
	InputPrice       float64       `json:"input_price" yaml:"input_price"`
	OutputPrice      float64       `json:"output_price" yaml:"output_price"`
	Currency         string        `json:"currency" yaml:"currency"`
	PricingUnit      string        `json:"pricing_unit" yaml:"pricing_unit"`
	Featured         bool          `json:"featured,omitempty" yaml:"featured"`
	Symbol           string        `json:"symbol,omitempty" yaml:"symbol"`
	DocumentationURL string        `json:"documentation_url" yaml:"documentation_url"`
}

// DisplayName returns the record name, or "Unknown" when it is empty.
func (r ModelRecord) DisplayName() string {
	return fallback(r.Name, "Unknown")
}

// DisplayProvider returns the provider display name, or "Unknown".
func (r ModelRecord) DisplayProvider() string {
	return fallback(r.Provider, "Unknown")
}

// DisplayContext returns the context length, or "N/A".
func (r ModelRecord) DisplayContext() string {
	return fallback(r.ContextLength, "N/A")
}

// DisplayUnit returns the pricing unit, or "1K tokens".
func (r ModelRecord) DisplayUnit() string {
	return fallback(r.PricingUnit, "1K tokens")
}

// DisplayCurrency returns the ISO currency code, or "USD".
func (r ModelRecord) DisplayCurrency() string {
	return fallback(r.Currency, "USD")
}

// FormatPrice renders a price with the shortest exact decimal form, so
// 0.00025 stays 0.00025 and a missing price prints as 0.
func FormatPrice(p float64) string {
	if p <= 0 {
		return "0"
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

// Catalog is a read-only list of records. The zero value is an empty catalog.
type Catalog struct {
	records []ModelRecord
}

// New builds a catalog from records. The slice is copied so later changes
// by the caller cannot leak in.
func New(records []ModelRecord) Catalog {
	return Catalog{records: append([]ModelRecord(nil), records...)}
}

// Records returns a copy of the catalog entries in catalog order.
func (c Catalog) Records() []ModelRecord {
	return append([]ModelRecord(nil), c.records...)
}

// Len returns the number of records.
func (c Catalog) Len() int { return len(c.records) }
