package masking

import (
	"log/slog"
	"regexp"
	"sort"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// rawPattern is a pattern definition before compilation.
type rawPattern struct {
	pattern     string
	replacement string
	description string
}

// builtinPatterns is the fixed credential-shaped pattern set applied to all
// persisted content. The set is deliberately narrow: executor output is
// source code, so broad matches (generic base64 runs, long identifiers)
// would mangle legitimate content.
var builtinPatterns = map[string]rawPattern{
	"api_key": {
		pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
		replacement: `"api_key": "__MASKED_API_KEY__"`,
		description: "API keys",
	},
	"password": {
		pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
		replacement: `"password": "__MASKED_PASSWORD__"`,
		description: "Passwords",
	},
	"certificate": {
		pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
		replacement: `__MASKED_CERTIFICATE__`,
		description: "PEM certificates and keys",
	},
	"token": {
		pattern:     `(?i)(?:token|bearer)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"token": "__MASKED_TOKEN__"`,
		description: "Access tokens",
	},
	"ssh_key": {
		pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
		replacement: `__MASKED_SSH_KEY__`,
		description: "SSH public keys",
	},
	"private_key": {
		pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
		description: "Private keys",
	},
	"secret_key": {
		pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
		description: "Secret keys",
	},
	"aws_access_key": {
		pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["']?\s*[:=]\s*["']?(AKIA[A-Z0-9]{16})["']?`,
		replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
		description: "AWS access keys",
	},
	"aws_secret_key": {
		pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
		replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
		description: "AWS secret keys",
	},
	"github_token": {
		pattern:     `gh[pousr]_[A-Za-z0-9_]{36,255}`,
		replacement: `__MASKED_GITHUB_TOKEN__`,
		description: "GitHub tokens",
	},
	"slack_token": {
		pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
		replacement: `__MASKED_SLACK_TOKEN__`,
		description: "Slack tokens",
	},
}

// compileBuiltinPatterns compiles the built-in pattern set. Invalid patterns
// are logged and skipped rather than failing startup.
func compileBuiltinPatterns() []*CompiledPattern {
	out := make([]*CompiledPattern, 0, len(builtinPatterns))
	for name, raw := range builtinPatterns {
		compiled, err := regexp.Compile(raw.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: raw.replacement,
			Description: raw.description,
		})
	}
	// Fixed application order keeps masked output deterministic when
	// patterns overlap.
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
