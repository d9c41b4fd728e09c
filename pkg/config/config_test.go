package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		AnthropicAPIKey: "test-key",
		ProfilesDir:     tmpDir,
		OutputDir:       "./test-output",
	}

	data, err := json.MarshalIndent(testConfig, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test loading the config.
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AnthropicAPIKey != testConfig.AnthropicAPIKey {
		t.Errorf("Expected API key %s, got %s", testConfig.AnthropicAPIKey, cfg.AnthropicAPIKey)
	}

	if cfg.ProfilesDir != testConfig.ProfilesDir {
		t.Errorf("Expected profiles dir %s, got %s", testConfig.ProfilesDir, cfg.ProfilesDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		AnthropicAPIKey: "file-key",
		ProfilesDir:     tmpDir,
	}

	data, err := json.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.AnthropicAPIKey != "env-key" {
		t.Errorf("Expected env override env-key, got %s", cfg.AnthropicAPIKey)
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name: "valid config",
			config: Config{
				AnthropicAPIKey: "test-key",
				ProfilesDir:     "./profiles",
				OutputDir:       "./output",
			},
			wantError: false,
		},
		{
			name: "missing API key is allowed",
			config: Config{
				ProfilesDir: "./profiles",
			},
			wantError: false,
		},
		{
			name: "nonexistent template file",
			config: Config{
				AnthropicAPIKey: "test-key",
				ProfilesDir:     "./profiles",
				TemplatePath:    "/nonexistent/template.html",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{ProfilesDir: "./profiles"}

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.OutputDir != "./resumes" {
		t.Errorf("Expected default output dir ./resumes, got %s", cfg.OutputDir)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("Expected default listen addr :8080, got %s", cfg.ListenAddr)
	}
}

func TestGetModel(t *testing.T) {
	cfg := Config{}
	if cfg.GetModel() != DefaultModel {
		t.Errorf("Expected default model %s, got %s", DefaultModel, cfg.GetModel())
	}

	cfg.Model = "claude-opus-4-1"
	if cfg.GetModel() != "claude-opus-4-1" {
		t.Errorf("Expected configured model, got %s", cfg.GetModel())
	}
}

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	// Verify file was created.
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		t.Fatalf("Failed to unmarshal config: %v", err)
	}

	if cfg.ProfilesDir == "" {
		t.Error("Default profiles dir was not set")
	}

	if cfg.OutputDir == "" {
		t.Error("Default output dir was not set")
	}
}

func TestInitConfigAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	// Create file first.
	err := os.WriteFile(configPath, []byte("{}"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Try to init - should fail.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
