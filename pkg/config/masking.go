package config

// MaskingPatternConfig is one user-supplied masking rule. Patterns are
// Go regular expressions; replacements may reference capture groups.
type MaskingPatternConfig struct {
	// Name identifies the pattern in logs and validation errors.
	Name string `yaml:"name"`

	// Pattern is the regular expression matched against persisted content.
	Pattern string `yaml:"pattern"`

	// Replacement substitutes every match. Empty means the built-in
	// "__MASKED_<NAME>__" form.
	Replacement string `yaml:"replacement"`
}

// MaskingConfig controls secret masking of persisted conversation content
// (evidence artifacts, raw executor logs, trace lines). Masking never
// touches the live results the quality gates judge.
type MaskingConfig struct {
	// Enabled turns masking on. Tri-state so an explicit false survives
	// the defaults merge. Default true.
	Enabled *bool `yaml:"enabled"`

	// CustomPatterns are applied after the built-in pattern set.
	CustomPatterns []MaskingPatternConfig `yaml:"custom_patterns"`
}

// DefaultMaskingConfig returns the built-in masking defaults.
func DefaultMaskingConfig() *MaskingConfig {
	return &MaskingConfig{
		Enabled: BoolPtr(true),
	}
}
