// Package config loads and validates pipeline configuration from the
// environment or a JSON file, with environment variables taking precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Defaults for endpoints the APIs publish as fixed.
const (
	DefaultPlacesEndpoint   = "https://places.googleapis.com"
	DefaultResearchEndpoint = "https://api.perplexity.ai"
	DefaultResearchModel    = "sonar-pro"
	DefaultAzureAPIVersion  = "2024-02-15-preview"
)

// Config carries every credential and endpoint the pipeline needs.
// Database settings are optional; all API credentials are required.
type Config struct {
	PlacesAPIKey   string `json:"places_api_key" validate:"required"`
	PlacesEndpoint string `json:"places_endpoint" validate:"omitempty,url"`

	ResearchAPIKey   string `json:"research_api_key" validate:"required"`
	ResearchEndpoint string `json:"research_endpoint" validate:"omitempty,url"`
	ResearchModel    string `json:"research_model"`

	AzureEndpoint   string `json:"azure_endpoint" validate:"required,url"`
	AzureAPIKey     string `json:"azure_api_key" validate:"required"`
	AzureDeployment string `json:"azure_deployment" validate:"required"`
	AzureAPIVersion string `json:"azure_api_version"`

	DatabaseURL string `json:"database_url" validate:"omitempty"`
}

// FromEnv builds a Config from environment variables.
func FromEnv() *Config {
	return &Config{
		PlacesAPIKey:     os.Getenv("GOOGLE_PLACES_API_KEY"),
		PlacesEndpoint:   os.Getenv("GOOGLE_PLACES_ENDPOINT"),
		ResearchAPIKey:   os.Getenv("PERPLEXITY_API_KEY"),
		ResearchEndpoint: os.Getenv("PERPLEXITY_ENDPOINT"),
		ResearchModel:    os.Getenv("PERPLEXITY_MODEL"),
		AzureEndpoint:    os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureAPIKey:      os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureDeployment:  os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
		AzureAPIVersion:  os.Getenv("AZURE_OPENAI_API_VERSION"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
	}
}

// Load reads a Config from a JSON file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// MergeWithDefaults fills unset fields with their published defaults.
func (c *Config) MergeWithDefaults() {
	if c.PlacesEndpoint == "" {
		c.PlacesEndpoint = DefaultPlacesEndpoint
	}
	if c.ResearchEndpoint == "" {
		c.ResearchEndpoint = DefaultResearchEndpoint
	}
	if c.ResearchModel == "" {
		c.ResearchModel = DefaultResearchModel
	}
	if c.AzureAPIVersion == "" {
		c.AzureAPIVersion = DefaultAzureAPIVersion
	}
}

// Validate checks the config against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
