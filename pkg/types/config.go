package types

import "time"

// HTTPConfig holds shared HTTP settings used by adapters that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "topic-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the provider fan-out.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults is the per-provider result budget (default 5).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// MaxTotal caps the fused provider list (default 10).
	MaxTotal int `json:"max_total" yaml:"max_total" mapstructure:"max_total"`

	// EnableArxiv controls whether the arXiv adapter is used.
	EnableArxiv bool `json:"enable_arxiv" yaml:"enable_arxiv" mapstructure:"enable_arxiv"`

	// EnableCrossref controls whether the Crossref adapter is used.
	EnableCrossref bool `json:"enable_crossref" yaml:"enable_crossref" mapstructure:"enable_crossref"`

	// CrossrefEmail is the contact email sent as the mailto parameter
	// for Crossref's polite pool. Required when Crossref is enabled.
	CrossrefEmail string `json:"crossref_email,omitempty" yaml:"crossref_email,omitempty" mapstructure:"crossref_email"`
}

// DatasetConfig holds settings for the internal fair-project dataset.
type DatasetConfig struct {
	// Path is the CSV file loaded into the in-memory table at startup.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults caps dataset matches per query (default 10).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LLMConfig holds settings for the completion service.
type LLMConfig struct {
	// Model is the completion model identifier (e.g. "gpt-4-turbo").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the API endpoint for compatible providers.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Temperature controls sampling randomness (default 0.7).
	Temperature float32 `json:"temperature" yaml:"temperature" mapstructure:"temperature"`

	// MaxTokens bounds the completion length (default 4000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`
}

// RankConfig holds settings for relevance filtering and ranking.
type RankConfig struct {
	// Threshold drops records scoring below it (default 0.5).
	Threshold float64 `json:"threshold" yaml:"threshold" mapstructure:"threshold"`

	// Cap truncates the ranked list (default 8).
	Cap int `json:"cap" yaml:"cap" mapstructure:"cap"`

	// BlendFloor is the minimum relevance an LLM-generated candidate
	// needs before it is blended ahead of provider hits (default 0.5).
	BlendFloor float64 `json:"blend_floor" yaml:"blend_floor" mapstructure:"blend_floor"`
}

// OutputConfig holds settings for generated artifacts.
type OutputConfig struct {
	// DraftsDir is the directory for generated paper outlines
	// (default "output/drafts").
	DraftsDir string `json:"drafts_dir" yaml:"drafts_dir" mapstructure:"drafts_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Dataset DatasetConfig `json:"dataset" yaml:"dataset" mapstructure:"dataset"`
	LLM     LLMConfig     `json:"llm" yaml:"llm" mapstructure:"llm"`
	Rank    RankConfig    `json:"rank" yaml:"rank" mapstructure:"rank"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
}
