// Package diagram lays out the provider → service taxonomy as a radial
// mind map and draws it. Layout produces positions as plain data; SVG and
// terminal renderers consume that data.
package diagram

// Leaf is one service under a provider group.
type Leaf struct {
	Label      string   `json:"label" yaml:"label"`
	DocURL     string   `json:"doc_url" yaml:"doc_url"`
	Categories []string `json:"categories" yaml:"categories"`
}

// Group is one provider branch of the taxonomy.
type Group struct {
	// Key is the lowercase identifier used for styling, e.g. "aws".
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Leaves []Leaf `json:"leaves" yaml:"leaves"`
}

// Taxonomy is the fixed two-level hierarchy: root → groups → leaves. It is
// unrelated to the catalog's provider grouping.
type Taxonomy struct {
	Root   string  `json:"root" yaml:"root"`
	Groups []Group `json:"groups" yaml:"groups"`
}

// Group returns the group whose label or key equals name.
func (t Taxonomy) Group(name string) (Group, bool) {
	for _, g := range t.Groups {
		if g.Label == name || g.Key == name {
			return g, true
		}
	}
	return Group{}, false
}

// LeafCount returns the number of leaves across all groups.
func (t Taxonomy) LeafCount() int {
	n := 0
	for _, g := range t.Groups {
		n += len(g.Leaves)
	}
	return n
}

// DefaultTaxonomy returns the built-in AI services hierarchy.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Root: "AI Services",
		Groups: []Group{
			{Key: "aws", Label: "AWS", Leaves: []Leaf{
				{Label: "Amazon Bedrock", DocURL: "https://docs.aws.amazon.com/bedrock/", Categories: []string{"aws", "llm"}},
				{Label: "Amazon SageMaker", DocURL: "https://docs.aws.amazon.com/sagemaker/", Categories: []string{"aws", "ml"}},
				{Label: "Amazon Comprehend", DocURL: "https://docs.aws.amazon.com/comprehend/", Categories: []string{"aws", "nlp"}},
				{Label: "Amazon Rekognition", DocURL: "https://docs.aws.amazon.com/rekognition/", Categories: []string{"aws", "vision"}},
				{Label: "Amazon Textract", DocURL: "https://docs.aws.amazon.com/textract/", Categories: []string{"aws", "vision", "nlp"}},
			}},
			{Key: "azure", Label: "Azure", Leaves: []Leaf{
				{Label: "Azure OpenAI Service", DocURL: "https://docs.microsoft.com/en-us/azure/cognitive-services/openai/", Categories: []string{"azure", "llm"}},
				{Label: "Azure ML Studio", DocURL: "https://docs.microsoft.com/en-us/azure/machine-learning/", Categories: []string{"azure", "ml"}},
				{Label: "Azure Cognitive Services", DocURL: "https://docs.microsoft.com/en-us/azure/cognitive-services/", Categories: []string{"azure", "nlp", "vision"}},
				{Label: "Azure Computer Vision", DocURL: "https://docs.microsoft.com/en-us/azure/cognitive-services/computer-vision/", Categories: []string{"azure", "vision"}},
			}},
			{Key: "gcp", Label: "GCP", Leaves: []Leaf{
				{Label: "Vertex AI Platform", DocURL: "https://cloud.google.com/vertex-ai/docs", Categories: []string{"gcp", "llm", "ml"}},
				{Label: "Google AutoML", DocURL: "https://cloud.google.com/automl/docs", Categories: []string{"gcp", "ml"}},
				{Label: "Cloud Vision API", DocURL: "https://cloud.google.com/vision/docs", Categories: []string{"gcp", "vision"}},
				{Label: "Cloud Natural Language", DocURL: "https://cloud.google.com/natural-language/docs", Categories: []string{"gcp", "nlp"}},
			}},
			{Key: "openai", Label: "OpenAI", Leaves: []Leaf{
				{Label: "GPT-4 Models", DocURL: "https://platform.openai.com/docs/models/gpt-4", Categories: []string{"openai", "llm"}},
				{Label: "DALL-E 3", DocURL: "https://platform.openai.com/docs/guides/images", Categories: []string{"openai", "vision"}},
				{Label: "Whisper API", DocURL: "https://platform.openai.com/docs/guides/speech-to-text", Categories: []string{"openai", "speech"}},
				{Label: "Text Embeddings", DocURL: "https://platform.openai.com/docs/guides/embeddings", Categories: []string{"openai", "nlp"}},
			}},
			{Key: "anthropic", Label: "Anthropic", Leaves: []Leaf{
				{Label: "Claude 3 Models", DocURL: "https://docs.anthropic.com/claude/docs", Categories: []string{"anthropic", "llm"}},
				{Label: "Claude API", DocURL: "https://docs.anthropic.com/claude/reference", Categories: []string{"anthropic", "llm"}},
				{Label: "Constitutional AI", DocURL: "https://www.anthropic.com/research/constitutional-ai-harmlessness-from-ai-feedback", Categories: []string{"anthropic", "research"}},
			}},
		},
	}
}
