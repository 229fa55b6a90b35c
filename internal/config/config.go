package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DatasetPath string `json:"dataset_path"`
	ExportDir   string `json:"export_dir"`
	PDFTemplate string `json:"pdf_template"`
	Port        string `json:"port"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		DatasetPath: "Dataset.xlsx",
		ExportDir:   "reports",
		PDFTemplate: filepath.Join("templates", "report.html"),
		Port:        "8080",
	}
}

// GetConfigPath returns the path to the configuration file
// On Windows: %APPDATA%/SuyogJobFinder/config.json
// On Unix: ~/.config/SuyogJobFinder/config.json
func GetConfigPath() (string, error) {
	var configDir string

	if os.Getenv("APPDATA") != "" {
		// Windows
		configDir = filepath.Join(os.Getenv("APPDATA"), "SuyogJobFinder")
	} else {
		// Unix-like systems
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "SuyogJobFinder")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads configuration from the default config path, then applies
// .env and environment overrides
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	_ = godotenv.Load()
	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadFrom loads configuration from a specific path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the default config path
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("dataset_path is required")
	}

	if c.PDFTemplate != "" {
		if _, err := os.Stat(c.PDFTemplate); err != nil {
			return fmt.Errorf("pdf template not found: %w", err)
		}
	}

	return nil
}

// applyEnvOverrides lets environment variables win over the config file
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SUYOG_DATASET"); v != "" {
		c.DatasetPath = v
	}
	if v := os.Getenv("SUYOG_EXPORT_DIR"); v != "" {
		c.ExportDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
}
