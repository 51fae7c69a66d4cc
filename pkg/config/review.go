package config

// ReviewConfig controls the bounded review loop.
type ReviewConfig struct {
	// MaxIterations is the hard bound on executor invocations per review
	// loop. Exhaustion escalates.
	MaxIterations int `yaml:"max_iterations"`

	// FilePreviewBytes is how much of each verified file the gates read
	// when scanning for TODO/omission markers.
	FilePreviewBytes int `yaml:"file_preview_bytes"`

	// MaxConsecutiveRetries bounds back-to-back RETRY verdicts (empty
	// output, transient errors) before escalating early instead of
	// burning iterations.
	MaxConsecutiveRetries int `yaml:"max_consecutive_retries"`
}

// DefaultReviewConfig returns the built-in review-loop defaults.
func DefaultReviewConfig() *ReviewConfig {
	return &ReviewConfig{
		MaxIterations:         5,
		FilePreviewBytes:      64 * 1024,
		MaxConsecutiveRetries: 2,
	}
}
