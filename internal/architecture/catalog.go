// Package architecture recommends reference architectures for an AI
// deployment given budget, volume, residency and team-skill constraints.
//
// A reference architecture is a fixed combination of LLM provider, vector
// store and orchestration framework with a linear monthly cost model. The
// built-in catalog can be replaced from a YAML file (LoadCatalog).
package architecture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Complexity is the operational complexity of running an architecture.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// complexityRank orders complexities for tie-breaking (INV-12).
var complexityRank = map[Complexity]int{
	ComplexityLow:    0,
	ComplexityMedium: 1,
	ComplexityHigh:   2,
}

// Residency is a data-residency tag. The tag "any" on a catalog entry means
// the architecture can be deployed in any region and satisfies every input.
type Residency string

const (
	ResidencyEU  Residency = "eu"
	ResidencyUS  Residency = "us"
	ResidencyAny Residency = "any"
)

// Components names the moving parts of a reference architecture.
type Components struct {
	LLM           string `json:"llm" yaml:"llm"`
	VectorDB      string `json:"vectorDb" yaml:"vector_db"`
	Orchestration string `json:"orchestration" yaml:"orchestration"`
}

// CostModel is the linear monthly cost function: Base + PerQuery * volume.
type CostModel struct {
	Base     float64 `json:"base" yaml:"base"`
	PerQuery float64 `json:"perQuery" yaml:"per_query"`
}

// Architecture is one catalog entry.
type Architecture struct {
	Name           string     `json:"name" yaml:"name"`
	Description    string     `json:"description" yaml:"description"`
	Complexity     Complexity `json:"complexity" yaml:"complexity"`
	Residency      Residency  `json:"residency" yaml:"residency"`
	RequiredSkills []string   `json:"requiredSkills,omitempty" yaml:"required_skills,omitempty"`
	Components     Components `json:"components" yaml:"components"`
	Pros           []string   `json:"pros,omitempty" yaml:"pros,omitempty"`
	Cons           []string   `json:"cons,omitempty" yaml:"cons,omitempty"`
	CodeExample    string     `json:"codeExample,omitempty" yaml:"code_example,omitempty"`
	Cost           CostModel  `json:"cost" yaml:"cost"`
}

// MonthlyCost estimates the monthly cost of arch at the given query volume.
func MonthlyCost(arch Architecture, volumeQueriesPerMonth float64) float64 {
	return arch.Cost.Base + arch.Cost.PerQuery*volumeQueriesPerMonth
}

// DefaultCatalog returns the built-in reference architectures. The slice is
// freshly allocated so callers cannot mutate the catalog for each other.
func DefaultCatalog() []Architecture {
	return []Architecture{
		{
			Name:           "Managed API (EU region)",
			Description:    "Direct calls to an EU-hosted managed LLM API with a managed vector store. Fastest path to production for teams without ML infrastructure.",
			Complexity:     ComplexityLow,
			Residency:      ResidencyEU,
			RequiredSkills: []string{"rest-api", "python"},
			Components: Components{
				LLM:           "Mistral Large (EU endpoints)",
				VectorDB:      "Azure AI Search (EU region)",
				Orchestration: "Direct SDK calls",
			},
			Pros: []string{
				"No infrastructure to operate",
				"EU data residency out of the box",
				"Per-call pricing scales down to zero",
			},
			Cons: []string{
				"Per-query cost grows linearly with volume",
				"Vendor lock-in on the API surface",
			},
			CodeExample: "client := mistral.NewClient(apiKey)\nresp, err := client.Chat(ctx, mistral.ChatRequest{\n    Model:    \"mistral-large-latest\",\n    Messages: []mistral.Message{{Role: \"user\", Content: query}},\n})",
			Cost:        CostModel{Base: 50, PerQuery: 0.012},
		},
		{
			Name:           "Managed API (US region)",
			Description:    "OpenAI API with Pinecone retrieval. The largest model selection and ecosystem, hosted in US regions.",
			Complexity:     ComplexityLow,
			Residency:      ResidencyUS,
			RequiredSkills: []string{"rest-api", "python"},
			Components: Components{
				LLM:           "OpenAI GPT-4o",
				VectorDB:      "Pinecone (serverless)",
				Orchestration: "Direct SDK calls",
			},
			Pros: []string{
				"Broadest model and tooling ecosystem",
				"No infrastructure to operate",
			},
			Cons: []string{
				"US data residency only",
				"Per-query cost grows linearly with volume",
			},
			CodeExample: "client := openai.NewClient(apiKey)\nresp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{\n    Model:    openai.GPT4o,\n    Messages: []openai.ChatCompletionMessage{{Role: \"user\", Content: query}},\n})",
			Cost:        CostModel{Base: 40, PerQuery: 0.010},
		},
		{
			Name:           "Managed RAG on Azure (EU)",
			Description:    "Azure OpenAI with AI Search and a LangChain retrieval pipeline, all pinned to EU regions. Balances managed convenience with retrieval control.",
			Complexity:     ComplexityMedium,
			Residency:      ResidencyEU,
			RequiredSkills: []string{"python", "cloud-ops"},
			Components: Components{
				LLM:           "Azure OpenAI GPT-4o (West Europe)",
				VectorDB:      "Azure AI Search",
				Orchestration: "LangChain",
			},
			Pros: []string{
				"EU residency with enterprise SLAs",
				"Retrieval pipeline fully configurable",
				"Integrates with existing Azure identity",
			},
			Cons: []string{
				"Two managed services to configure and monitor",
				"Higher base cost than a bare API",
			},
			CodeExample: "retriever := azuresearch.NewRetriever(endpoint, index)\nchain := chains.NewRetrievalQA(llm, retriever)\nanswer, err := chains.Run(ctx, chain, query)",
			Cost:        CostModel{Base: 400, PerQuery: 0.008},
		},
		{
			Name:           "Serverless batch pipeline",
			Description:    "Queue-driven batch inference over a managed API. Suited to high-volume, latency-tolerant workloads where batch discounts apply.",
			Complexity:     ComplexityMedium,
			Residency:      ResidencyAny,
			RequiredSkills: []string{"cloud-ops", "rest-api"},
			Components: Components{
				LLM:           "Batch API (50% discounted)",
				VectorDB:      "None (stateless transform)",
				Orchestration: "Cloud functions + queue",
			},
			Pros: []string{
				"Roughly half the per-query cost via batch pricing",
				"Scales to millions of tasks per month",
			},
			Cons: []string{
				"Hours of latency, unsuitable for interactive use",
				"Requires queue and retry plumbing",
			},
			CodeExample: "batch, err := client.Batches.Create(ctx, openai.BatchCreateParams{\n    InputFileID: fileID,\n    Endpoint:    \"/v1/chat/completions\",\n    Window:      \"24h\",\n})",
			Cost:        CostModel{Base: 150, PerQuery: 0.005},
		},
		{
			Name:           "Self-hosted open weights",
			Description:    "vLLM serving an open-weights model with Qdrant retrieval on your own GPUs. Full control over data and cost at scale, full operational burden.",
			Complexity:     ComplexityHigh,
			Residency:      ResidencyAny,
			RequiredSkills: []string{"ml-ops", "kubernetes"},
			Components: Components{
				LLM:           "Llama 3.1 70B via vLLM",
				VectorDB:      "Qdrant (self-hosted)",
				Orchestration: "LangChain",
			},
			Pros: []string{
				"Data never leaves your infrastructure",
				"Marginal per-query cost near zero at high volume",
				"No vendor lock-in",
			},
			Cons: []string{
				"GPU fleet to provision and operate",
				"Model quality tracking is your problem",
			},
			CodeExample: "llm := vllm.New(\"http://inference.internal:8000\")\nstore := qdrant.NewStore(qdrantURL, collection)\nchain := chains.NewRetrievalQA(llm, store.Retriever(5))",
			Cost:        CostModel{Base: 2800, PerQuery: 0.0004},
		},
		{
			Name:           "Hybrid gateway",
			Description:    "An LLM gateway routing simple queries to a small self-hosted model and hard ones to a managed API, with shared retrieval. Cost-optimized middle ground.",
			Complexity:     ComplexityHigh,
			Residency:      ResidencyEU,
			RequiredSkills: []string{"ml-ops", "rest-api"},
			Components: Components{
				LLM:           "Mistral 7B (local) + Mistral Large (EU API)",
				VectorDB:      "pgvector on existing Postgres",
				Orchestration: "Custom gateway",
			},
			Pros: []string{
				"Routes ~70% of traffic to the cheap local model",
				"Reuses existing Postgres for retrieval",
			},
			Cons: []string{
				"Routing quality must be tuned and monitored",
				"Two inference paths to operate",
			},
			CodeExample: "route := gateway.Classify(query)\nif route == gateway.Simple {\n    return local.Complete(ctx, query)\n}\nreturn managed.Complete(ctx, query)",
			Cost:        CostModel{Base: 900, PerQuery: 0.004},
		},
	}
}

// catalogFile is the YAML shape of a catalog override file.
type catalogFile struct {
	Architectures []Architecture `yaml:"architectures"`
}

// LoadCatalog reads a catalog override from a YAML file. Returns the
// built-in catalog when path is empty.
func LoadCatalog(path string) ([]Architecture, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Architectures) == 0 {
		return nil, fmt.Errorf("catalog %s defines no architectures", path)
	}
	return f.Architectures, nil
}
