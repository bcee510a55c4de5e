package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsOnePerLeaf(t *testing.T) {
	tax := DefaultTaxonomy()
	cards := Cards(tax)
	require.Len(t, cards, tax.LeafCount())
	assert.Equal(t, "Amazon Bedrock", cards[0].Title)
	assert.Equal(t, "AWS", cards[0].Group)
	assert.Equal(t, "aws llm", cards[0].Category)
}

func TestFilterCards(t *testing.T) {
	cards := Cards(DefaultTaxonomy())
	assert.Equal(t, cards, FilterCards(cards, FilterAll))
	assert.Equal(t, cards, FilterCards(cards, ""))

	vision := FilterCards(cards, "vision")
	require.NotEmpty(t, vision)
	for _, c := range vision {
		assert.True(t, c.HasCategory("vision"), c.Title)
	}

	anthropic := FilterCards(cards, "anthropic")
	assert.Len(t, anthropic, 3)

	assert.Empty(t, FilterCards(cards, "quantum"))
}

func TestFilterCardsMatchesWholeWords(t *testing.T) {
	cards := []Card{{Title: "x", Category: "mlops"}}
	assert.Empty(t, FilterCards(cards, "ml"))
}

func TestCardCategories(t *testing.T) {
	cats := CardCategories(Cards(DefaultTaxonomy()))
	assert.Equal(t, FilterAll, cats[0])
	assert.Contains(t, cats, "aws")
	assert.Contains(t, cats, "speech")
	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}
