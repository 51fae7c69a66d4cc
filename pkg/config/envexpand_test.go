package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "state_dir: {{.PMRUNNER_STATE_DIR}}",
			env:   map[string]string{"PMRUNNER_STATE_DIR": "/var/lib/pmrunner"},
			want:  "state_dir: /var/lib/pmrunner",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "prompt_template: ${TASK_ID}",
			env:   map[string]string{"TASK_ID": "task-1"},
			want:  "prompt_template: ${TASK_ID}",
		},
		{
			name:  "literal $VAR is NOT expanded",
			input: "pattern: ^fix.*$HOME",
			env:   map[string]string{"HOME": "/root"},
			want:  "pattern: ^fix.*$HOME",
		},
		{
			name:  "multiple substitutions in one line",
			input: "grpc_address: {{.EXECUTOR_HOST}}:{{.EXECUTOR_PORT}}",
			env: map[string]string{
				"EXECUTOR_HOST": "localhost",
				"EXECUTOR_PORT": "50051",
			},
			want: "grpc_address: localhost:50051",
		},
		{
			name:  "missing variable expands to empty",
			input: "namespace: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "namespace: ",
		},
		{
			name:  "nested YAML structure",
			input: "server:\n  host: {{.BIND_HOST}}\n  port: {{.BIND_PORT}}",
			env: map[string]string{
				"BIND_HOST": "127.0.0.1",
				"BIND_PORT": "8420",
			},
			want: "server:\n  host: 127.0.0.1\n  port: 8420",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

func TestExpandEnvPreservesOriginalWhenNoVariables(t *testing.T) {
	input := `
# comment
namespace: team-a
queue:
  poller_count: 2
`

	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result))
}

// Malformed template syntax is passed through unchanged so the YAML parser
// can produce the clearer error message.
func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "namespace: {{.NAMESPACE",
		},
		{
			name:  "missing dot",
			input: "namespace: {{NAMESPACE}}",
		},
		{
			name:  "empty template",
			input: "namespace: {{}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NAMESPACE", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result))
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}
