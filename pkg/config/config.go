package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// Config represents the application configuration.
type Config struct {
	AnthropicAPIKey string `json:"anthropic_api_key"`
	Model           string `json:"model,omitempty"`
	ProfilesDir     string `json:"profiles_dir"`
	TemplatePath    string `json:"template_path,omitempty"`
	OutputDir       string `json:"output_dir,omitempty"`
	ListenAddr      string `json:"listen_addr,omitempty"`
	ChromePath      string `json:"chrome_path,omitempty"`
}

// GetModel returns the generation model or default if not specified.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = DefaultModel
	return model
}

// Load reads configuration from file with environment variable overrides.
//
// A .env file in the working directory is loaded first if present, so
// ANTHROPIC_API_KEY works the same way in development and deployment.
func Load(configPath string) (cfg Config, err error) {
	// Missing .env is not an error.
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path, err = defaultConfigPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s (run 'resumesmith init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Parse JSON
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	// Override with environment variable if set
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.AnthropicAPIKey = apiKey
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate fills defaults and checks the configuration.
//
// An empty API key is allowed. Generation without credentials takes the
// local fallback path instead of failing.
func (c *Config) Validate() (err error) {
	if c.ProfilesDir == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return err
		}
		c.ProfilesDir = filepath.Join(homeDir, ".resumesmith", "profiles")
	}

	if c.OutputDir == "" {
		c.OutputDir = "./resumes"
	}

	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}

	if c.TemplatePath != "" {
		_, err = os.Stat(c.TemplatePath)
		if os.IsNotExist(err) {
			err = errors.Errorf("template file not found: %s", c.TemplatePath)
			return err
		}
		err = nil
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = defaultConfigPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return err
	}

	defaultConfig := Config{
		AnthropicAPIKey: "sk-ant-api03-...",
		ProfilesDir:     filepath.Join(homeDir, ".resumesmith", "profiles"),
		OutputDir:       filepath.Join(homeDir, "Documents", "Resumes"),
		ListenAddr:      ":8080",
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}

func defaultConfigPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".resumesmith", "config.json")
	return path, err
}
