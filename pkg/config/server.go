package config

// ServerConfig contains the local HTTP control-plane settings.
type ServerConfig struct {
	// Host is the listen address. The control plane is local-only by
	// default; binding wider is a deliberate override.
	Host string `yaml:"host"`

	// Port is the listen port, reported by GET /api/namespace.
	Port int `yaml:"port"`

	// MaxPromptBytes bounds the prompt field of POST /api/tasks.
	MaxPromptBytes int `yaml:"max_prompt_bytes"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:           "127.0.0.1",
		Port:           8420,
		MaxPromptBytes: 256 * 1024,
	}
}
