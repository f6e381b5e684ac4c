package llm

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"gemini with key", func(c *Config) { c.Gemini.APIKey = "k" }, false},
		{"gemini without key", func(c *Config) {}, true},
		{"anthropic with key", func(c *Config) { c.Provider = "anthropic"; c.Anthropic.APIKey = "k" }, false},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"openrouter with key", func(c *Config) { c.Provider = "openrouter"; c.OpenRouter.APIKey = "k" }, false},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv_EnvOverrides(t *testing.T) {
	t.Setenv("GITAGUIDE_PROVIDER", "gemini")
	t.Setenv("GITAGUIDE_GEMINI_API_KEY", "test-key")
	t.Setenv("GITAGUIDE_GEMINI_MODEL", "gemini-pro")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("Model = %q, want gemini-pro", cfg.Gemini.Model)
	}
}

func TestConfigFromEnv_DiscoversStandardKeys(t *testing.T) {
	t.Setenv("GITAGUIDE_PROVIDER", "")
	t.Setenv("GITAGUIDE_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "discovered")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "discovered" {
		t.Errorf("APIKey = %q, want discovered", cfg.Gemini.APIKey)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.5-flash" {
		t.Errorf("resolveModel friendly = %q", got)
	}
	if got := resolveModel("gemini-exp-1206", geminiModels); got != "gemini-exp-1206" {
		t.Errorf("resolveModel passthrough = %q", got)
	}
}
