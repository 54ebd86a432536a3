package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/shammazp/restaurant-backend/internal/config"
)

// LoadConfig reads a YAML config file for file-based deployments. Env-driven
// deployments use config.Load instead.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if len(cfg.Upload.AllowedContentTypes) == 0 {
		cfg.Upload.AllowedContentTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}
	}

	return &cfg, nil
}
