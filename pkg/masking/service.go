// Package masking scrubs credential-shaped content from everything the
// orchestrator persists: evidence artifacts, raw executor logs, and
// conversation trace lines. The quality gates always judge the live,
// unmasked executor result; masking applies only at the persistence
// boundary, so evidence hashes cover the masked bytes that are actually
// on disk.
package masking

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pm-runner/pmrunner/pkg/config"
)

// Service applies data masking to persisted content. Created once at
// application startup. Thread-safe and stateless aside from compiled
// patterns.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewService compiles the built-in pattern set plus any custom patterns
// from config. All patterns are compiled eagerly; invalid custom patterns
// are logged and skipped (the validator rejects them earlier in normal
// startup).
func NewService(cfg *config.MaskingConfig) *Service {
	s := &Service{
		enabled:  cfg == nil || cfg.Enabled == nil || *cfg.Enabled,
		patterns: compileBuiltinPatterns(),
	}

	if cfg != nil {
		for i, p := range cfg.CustomPatterns {
			compiled, err := regexp.Compile(p.Pattern)
			if err != nil {
				slog.Error("Failed to compile custom masking pattern, skipping",
					"pattern", p.Name, "error", err)
				continue
			}
			replacement := p.Replacement
			if replacement == "" {
				replacement = fmt.Sprintf("__MASKED_%s__", strings.ToUpper(p.Name))
			}
			s.patterns = append(s.patterns, &CompiledPattern{
				Name:        fmt.Sprintf("custom:%d:%s", i, p.Name),
				Regex:       compiled,
				Replacement: replacement,
				Description: "custom pattern",
			})
		}
	}

	slog.Info("Masking service initialized",
		"enabled", s.enabled,
		"patterns", len(s.patterns))
	return s
}

// Mask applies every pattern to content and returns the scrubbed result.
func (s *Service) Mask(content string) string {
	if s == nil || !s.enabled || content == "" {
		return content
	}
	masked := content
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskBytes is Mask for byte slices. The input is not modified.
func (s *Service) MaskBytes(content []byte) []byte {
	if s == nil || !s.enabled || len(content) == 0 {
		return content
	}
	return []byte(s.Mask(string(content)))
}

// MaskMap returns a copy of data with every string value masked,
// descending into nested maps and slices. Non-string leaves pass through
// unchanged.
func (s *Service) MaskMap(data map[string]any) map[string]any {
	if s == nil || !s.enabled || len(data) == 0 {
		return data
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v any) any {
	switch val := v.(type) {
	case string:
		return s.Mask(val)
	case map[string]any:
		return s.MaskMap(val)
	case []string:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = s.Mask(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return v
	}
}
