package catalog

import "context"

// staticRecords is the compiled-in price table. Prices are USD per pricing unit.
var staticRecords = []ModelRecord{
	// OpenAI
	{Name: "GPT-5.2", Provider: "OpenAI", ProviderGroup: GroupOpenAI, ContextLength: "256K", InputPrice: 0.025, OutputPrice: 0.08, Currency: "USD", PricingUnit: "1K tokens", Featured: true, Symbol: "G52", DocumentationURL: "https://openai.com/gpt-4"},
	{Name: "GPT-4 Turbo", Provider: "OpenAI", ProviderGroup: GroupOpenAI, ContextLength: "128K", InputPrice: 0.01, OutputPrice: 0.03, Currency: "USD", PricingUnit: "1K tokens", Symbol: "G4T", DocumentationURL: "https://platform.openai.com/docs/models/gpt-4-and-gpt-4-turbo"},
	{Name: "GPT-4", Provider: "OpenAI", ProviderGroup: GroupOpenAI, ContextLength: "8K", InputPrice: 0.03, OutputPrice: 0.06, Currency: "USD", PricingUnit: "1K tokens", Symbol: "GP4", DocumentationURL: "https://platform.openai.com/docs/models/gpt-4-and-gpt-4-turbo"},
	{Name: "GPT-3.5 Turbo", Provider: "OpenAI", ProviderGroup: GroupOpenAI, ContextLength: "16K", InputPrice: 0.0015, OutputPrice: 0.002, Currency: "USD", PricingUnit: "1K tokens", Symbol: "G35", DocumentationURL: "https://platform.openai.com/docs/models/gpt-3-5"},

	// Anthropic
	{Name: "Claude 3 Opus", Provider: "Anthropic", ProviderGroup: GroupAnthropic, ContextLength: "200K", InputPrice: 0.015, OutputPrice: 0.075, Currency: "USD", PricingUnit: "1K tokens", Symbol: "C3O", DocumentationURL: "https://docs.anthropic.com/claude/docs/models-overview#claude-3-a-new-generation-of-ai"},
	{Name: "Claude 3 Sonnet", Provider: "Anthropic", ProviderGroup: GroupAnthropic, ContextLength: "200K", InputPrice: 0.003, OutputPrice: 0.015, Currency: "USD", PricingUnit: "1K tokens", Symbol: "C3S", DocumentationURL: "https://docs.anthropic.com/claude/docs/models-overview#claude-3-a-new-generation-of-ai"},
	{Name: "Claude 3 Haiku", Provider: "Anthropic", ProviderGroup: GroupAnthropic, ContextLength: "200K", InputPrice: 0.00025, OutputPrice: 0.00125, Currency: "USD", PricingUnit: "1K tokens", Symbol: "C3H", DocumentationURL: "https://docs.anthropic.com/claude/docs/models-overview#claude-3-a-new-generation-of-ai"},
	{Name: "Claude 2.1", Provider: "Anthropic", ProviderGroup: GroupAnthropic, ContextLength: "200K", InputPrice: 0.008, OutputPrice: 0.024, Currency: "USD", PricingUnit: "1K tokens", Symbol: "C21", DocumentationURL: "https://docs.anthropic.com/claude/docs/models-overview#legacy-models"},
	{Name: "Claude Instant", Provider: "Anthropic", ProviderGroup: GroupAnthropic, ContextLength: "100K", InputPrice: 0.0008, OutputPrice: 0.0024, Currency: "USD", PricingUnit: "1K tokens", Symbol: "CIN", DocumentationURL: "https://docs.anthropic.com/claude/docs/models-overview#legacy-models"},

	// AWS Bedrock
	{Name: "Titan Text G1", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "8K", InputPrice: 0.0008, OutputPrice: 0.0016, Currency: "USD", PricingUnit: "1K tokens", Symbol: "TT1", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/titan-text-models.html"},
	{Name: "Titan Text Lite", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "4K", InputPrice: 0.0003, OutputPrice: 0.0004, Currency: "USD", PricingUnit: "1K tokens", Symbol: "TTL", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/titan-text-models.html"},
	{Name: "Titan Embeddings", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "8K", InputPrice: 0.0001, OutputPrice: 0, Currency: "USD", PricingUnit: "1K tokens", Symbol: "TEM", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/titan-embedding-models.html"},
	{Name: "Claude 3 Opus (AWS)", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "200K", InputPrice: 0.015, OutputPrice: 0.075, Currency: "USD", PricingUnit: "1K tokens", Symbol: "C3A", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-anthropic-claude-3.html"},
	{Name: "Claude 3 Sonnet (AWS)", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "200K", InputPrice: 0.003, OutputPrice: 0.015, Currency: "USD", PricingUnit: "1K tokens", Symbol: "C3B", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-anthropic-claude-3.html"},
	{Name: "Claude 3 Haiku (AWS)", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "200K", InputPrice: 0.00025, OutputPrice: 0.00125, Currency: "USD", PricingUnit: "1K tokens", Symbol: "C3C", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-anthropic-claude-3.html"},
	{Name: "Llama 2 70B", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "4K", InputPrice: 0.00195, OutputPrice: 0.00256, Currency: "USD", PricingUnit: "1K tokens", Symbol: "L70", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-meta.html"},
	{Name: "Llama 2 13B", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "4K", InputPrice: 0.00075, OutputPrice: 0.001, Currency: "USD", PricingUnit: "1K tokens", Symbol: "L13", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-meta.html"},
	{Name: "Llama 2 7B", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "4K", InputPrice: 0.0003, OutputPrice: 0.0004, Currency: "USD", PricingUnit: "1K tokens", Symbol: "L7B", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-meta.html"},
	{Name: "Cohere Command", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "4K", InputPrice: 0.0015, OutputPrice: 0.002, Currency: "USD", PricingUnit: "1K tokens", Symbol: "COC", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-cohere-command.html"},
	{Name: "Cohere Command Light", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "4K", InputPrice: 0.0003, OutputPrice: 0.0006, Currency: "USD", PricingUnit: "1K tokens", Symbol: "CCL", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-cohere-command.html"},
	{Name: "AI21 Jurassic-2 Ultra", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "8K", InputPrice: 0.0188, OutputPrice: 0.0188, Currency: "USD", PricingUnit: "1K tokens", Symbol: "J2U", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-jurassic2.html"},
	{Name: "AI21 Jurassic-2 Mid", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "8K", InputPrice: 0.0125, OutputPrice: 0.0125, Currency: "USD", PricingUnit: "1K tokens", Symbol: "J2M", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-jurassic2.html"},
	{Name: "Stability Diffusion XL", Provider: "AWS Bedrock", ProviderGroup: GroupAWS, ContextLength: "N/A", InputPrice: 0.04, OutputPrice: 0, Currency: "USD", PricingUnit: "image", Symbol: "SDX", DocumentationURL: "https://docs.aws.amazon.com/bedrock/latest/userguide/model-parameters-stability-diffusion.html"},

	// Azure OpenAI
	{Name: "GPT-4 Turbo (Azure)", Provider: "Azure OpenAI", ProviderGroup: GroupAzure, ContextLength: "128K", InputPrice: 0.01, OutputPrice: 0.03, Currency: "USD", PricingUnit: "1K tokens", Symbol: "G4A", DocumentationURL: "https://learn.microsoft.com/en-us/azure/ai-services/openai/concepts/models#gpt-4-and-gpt-4-turbo-preview-models"},
	{Name: "GPT-4 (Azure)", Provider: "Azure OpenAI", ProviderGroup: GroupAzure, ContextLength: "8K", InputPrice: 0.03, OutputPrice: 0.06, Currency: "USD", PricingUnit: "1K tokens", Symbol: "GP4A", DocumentationURL: "https://learn.microsoft.com/en-us/azure/ai-services/openai/concepts/models#gpt-4-and-gpt-4-turbo-preview-models"},
	{Name: "GPT-3.5 Turbo (Azure)", Provider: "Azure OpenAI", ProviderGroup: GroupAzure, ContextLength: "16K", InputPrice: 0.0015, OutputPrice: 0.002, Currency: "USD", PricingUnit: "1K tokens", Symbol: "G3A", DocumentationURL: "https://learn.microsoft.com/en-us/azure/ai-services/openai/concepts/models#gpt-35"},
	{Name: "GPT-3.5 Instruct (Azure)", Provider: "Azure OpenAI", ProviderGroup: GroupAzure, ContextLength: "4K", InputPrice: 0.0015, OutputPrice: 0.002, Currency: "USD", PricingUnit: "1K tokens", Symbol: "G3I", DocumentationURL: "https://learn.microsoft.com/en-us/azure/ai-services/openai/concepts/models#gpt-35"},
	{Name: "DALL-E 3 (Azure)", Provider: "Azure OpenAI", ProviderGroup: GroupAzure, ContextLength: "N/A", InputPrice: 0.04, OutputPrice: 0, Currency: "USD", PricingUnit: "image", Symbol: "DA3", DocumentationURL: "https://learn.microsoft.com/en-us/azure/ai-services/openai/concepts/models#dall-e-models"},
	{Name: "DALL-E 2 (Azure)", Provider: "Azure OpenAI", ProviderGroup: GroupAzure, ContextLength: "N/A", InputPrice: 0.02, OutputPrice: 0, Currency: "USD", PricingUnit: "image", Symbol: "DA2", DocumentationURL: "https://learn.microsoft.com/en-us/azure/ai-services/openai/concepts/models#dall-e-models"},
	{Name: "Whisper (Azure)", Provider: "Azure OpenAI", ProviderGroup: GroupAzure, ContextLength: "N/A", InputPrice: 0.006, OutputPrice: 0, Currency: "USD", PricingUnit: "minute", Symbol: "WHI", DocumentationURL: "https://learn.microsoft.com/en-us/azure/ai-services/openai/concepts/models#whisper-models"},

	// Google Cloud
	{Name: "Gemini Pro", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "32K", InputPrice: 0.00025, OutputPrice: 0.0005, Currency: "USD", PricingUnit: "1K tokens", Symbol: "GMP", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/model-reference/gemini"},
	{Name: "Gemini Pro Vision", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "16K", InputPrice: 0.00025, OutputPrice: 0.0005, Currency: "USD", PricingUnit: "1K tokens", Symbol: "GMV", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/model-reference/gemini"},
	{Name: "PaLM 2 Text", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "8K", InputPrice: 0.001, OutputPrice: 0.001, Currency: "USD", PricingUnit: "1K tokens", Symbol: "P2T", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/model-reference/text"},
	{Name: "PaLM 2 Chat", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "8K", InputPrice: 0.001, OutputPrice: 0.001, Currency: "USD", PricingUnit: "1K tokens", Symbol: "P2C", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/model-reference/text-chat"},
	{Name: "Codey Code", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "6K", InputPrice: 0.001, OutputPrice: 0.001, Currency: "USD", PricingUnit: "1K tokens", Symbol: "CDC", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/model-reference/code-generation"},
	{Name: "Codey Chat", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "6K", InputPrice: 0.001, OutputPrice: 0.001, Currency: "USD", PricingUnit: "1K tokens", Symbol: "CDH", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/model-reference/code-chat"},
	{Name: "Text Embedding", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "3K", InputPrice: 0.0001, OutputPrice: 0, Currency: "USD", PricingUnit: "1K tokens", Symbol: "TEB", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/embeddings/get-text-embeddings"},
	{Name: "Imagen", Provider: "Google Cloud", ProviderGroup: GroupGCP, ContextLength: "N/A", InputPrice: 0.02, OutputPrice: 0, Currency: "USD", PricingUnit: "image", Symbol: "IMG", DocumentationURL: "https://cloud.google.com/vertex-ai/docs/generative-ai/image/overview"},
}

// Static returns the compiled-in catalog.
func Static() Catalog {
	return New(staticRecords)
}

// StaticSource serves the compiled-in catalog. Every Load returns the same
// contents.
type StaticSource struct{}

// Name implements Source.
func (StaticSource) Name() string { return "static" }

// Load implements Source.
func (StaticSource) Load(_ context.Context) (Catalog, error) {
	return Static(), nil
}
