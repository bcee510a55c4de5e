package diagram

// Link is one entry of the side link list.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DefaultLinks is the pricing page of each top-level provider, shown when
// nothing is hovered.
func DefaultLinks() []Link {
	return []Link{
		{Name: "AWS Bedrock", URL: "https://aws.amazon.com/bedrock/pricing/"},
		{Name: "Azure OpenAI", URL: "https://azure.microsoft.com/en-us/pricing/details/cognitive-services/openai-service/"},
		{Name: "OpenAI", URL: "https://openai.com/pricing"},
		{Name: "Anthropic", URL: "https://www.anthropic.com/pricing"},
		{Name: "Google Cloud", URL: "https://cloud.google.com/vertex-ai/pricing"},
	}
}

// GroupLinks returns the documentation links of every leaf in the named
// group, in taxonomy order. An unknown group yields an empty list.
func GroupLinks(t Taxonomy, group string) []Link {
	g, ok := t.Group(group)
	if !ok {
		return []Link{}
	}
	links := make([]Link, 0, len(g.Leaves))
	for _, leaf := range g.Leaves {
		if leaf.DocURL == "" {
			continue
		}
		links = append(links, Link{Name: leaf.Label, URL: leaf.DocURL})
	}
	return links
}

// LinkState is the selector's current mode.
type LinkState int

const (
	ShowingDefault LinkState = iota
	ShowingGroup
)

// LinkSelector decides which link list is visible. It has two states:
// default and group-specific. Enter switches to a group's documentation,
// Leave goes back to the default list, and the most recent event wins.
type LinkSelector struct {
	taxonomy Taxonomy
	state    LinkState
	group    string
}

// NewLinkSelector returns a selector showing the default list.
func NewLinkSelector(t Taxonomy) *LinkSelector {
	return &LinkSelector{taxonomy: t}
}

// Enter records focus on a leaf belonging to group.
func (s *LinkSelector) Enter(group string) {
	s.state = ShowingGroup
	s.group = group
}

// Leave records loss of focus.
func (s *LinkSelector) Leave() {
	s.state = ShowingDefault
	s.group = ""
}

// State returns the current mode.
func (s *LinkSelector) State() LinkState { return s.state }

// Group returns the focused group, or "" in the default state.
func (s *LinkSelector) Group() string { return s.group }

// Current returns the visible link list.
func (s *LinkSelector) Current() []Link {
	if s.state == ShowingGroup {
		return GroupLinks(s.taxonomy, s.group)
	}
	return DefaultLinks()
}
