package model

import "time"

// Config holds the complete tool configuration. Values are layered: CLI
// flags override CARNEADES_* environment variables, which override the
// config file (~/.carneades/config.yaml), which overrides these defaults.
type Config struct {
	Standards   StandardsConfig   `yaml:"standards"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// StandardsConfig sets the default proof standard and the thresholds used
// by the stricter standards.
type StandardsConfig struct {
	// Default is applied to statements without an assigned standard.
	Default string `yaml:"default"`
	// Alpha is the weight the strongest pro must exceed for
	// clear_and_convincing.
	Alpha float64 `yaml:"alpha"`
	// Beta is the required pro-minus-con margin for clear_and_convincing.
	Beta float64 `yaml:"beta"`
	// Gamma caps the strongest con weight for beyond_reasonable_doubt.
	Gamma float64 `yaml:"gamma"`
}

// CacheConfig controls the evaluation report cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls batch evaluation.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig configures the optional explanation generator. The provider is
// empty (disabled) unless requested; explanations never affect verdicts.
type LLMConfig struct {
	Provider          string  `yaml:"provider"`
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"-"`
	BaseURL           string  `yaml:"base_url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerMinute float64 `yaml:"requests_per_minute"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Standards: StandardsConfig{
			Default: "scintilla",
			Alpha:   0.5,
			Beta:    0.5,
			Gamma:   0.3,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "",
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:          "",
			TimeoutSeconds:    30,
			MaxTokens:         1000,
			RequestsPerMinute: 20,
		},
	}
}
