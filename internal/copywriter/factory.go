package copywriter

import (
	"fmt"

	"github.com/yaralane/storefront/internal/config"
)

// NewProvider creates a provider based on configuration.
func NewProvider(cfg *config.CopywriterConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg.Model, cfg.APIKeyEnv, cfg.APIKey)
	case "mock":
		return NewMockProvider(cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported copywriter provider: %s", cfg.Provider)
	}
}
