package config

import (
	"os"
	"testing"
)

const sampleConfig = `
llm:
  provider: openai
  base_url: https://api.example.com/v1
  api_key: dummy
  model: gpt-4o-mini
server:
  host: 0.0.0.0
  port: "8001"
history:
  db_path: /tmp/history-test.db
log:
  level: debug
`

// TestLoad verifies that Load correctly unmarshals the yaml configuration.
func TestLoad(t *testing.T) {
	// Write config to temp file
	tmp, err := os.CreateTemp(t.TempDir(), "cfg-*.yaml")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	if _, err := tmp.WriteString(sampleConfig); err != nil {
		t.Fatalf("write: %v", err)
	}
	tmp.Close()

	t.Setenv("CONFIG_PATH", tmp.Name())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %s", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "https://api.example.com/v1" {
		t.Fatalf("unexpected base url: %s", cfg.LLM.BaseURL)
	}
	if cfg.Server.Port != "8001" {
		t.Fatalf("unexpected port: %s", cfg.Server.Port)
	}
	if cfg.History.DBPath != "/tmp/history-test.db" {
		t.Fatalf("unexpected db path: %s", cfg.History.DBPath)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
}
