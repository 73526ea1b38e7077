// Package copywriter produces AI brand-voice product descriptions. Provider
// failures never surface to callers; every path resolves to a string.
package copywriter

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yaralane/storefront/internal/catalog"
)

// Provider produces text completions from prompts.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Fallback copy used when the provider cannot deliver. These are part of the
// product surface, not error messages.
const (
	FallbackMissingKey = "Please configure your API Key to unlock the Yara Lane AI Brand Voice."
	FallbackEmpty      = "Experience the essence of Yara Lane."
	FallbackFailure    = "Our brand story is currently being curated. Please try again later."
)

// Service generates product descriptions through a Provider, substituting a
// defined fallback string when no provider is configured or the call fails.
type Service struct {
	provider Provider
}

// NewService wraps a provider. A nil provider is valid and yields the
// missing-configuration fallback on every call.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Describe returns brand-voice copy for the product. It never returns an
// error: missing configuration and provider failures both resolve to their
// fallback strings.
func (s *Service) Describe(ctx context.Context, p catalog.Product) string {
	if s.provider == nil {
		zap.L().Warn("copywriter not configured", zap.String("product_id", p.ID))
		return FallbackMissingKey
	}

	text, err := s.provider.Complete(ctx, BuildPrompt(p))
	if err != nil {
		zap.L().Error("description generation failed",
			zap.String("product_id", p.ID),
			zap.Error(err))
		return FallbackFailure
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackEmpty
	}
	return text
}

// BuildPrompt assembles the brand-voice prompt for a product from its name
// and ingredient list.
func BuildPrompt(p catalog.Product) string {
	var prompt strings.Builder

	prompt.WriteString("You are the lead copywriter for \"Yara Lane\", a high-end, minimalist luxury brand for beauty and accessories. ")
	prompt.WriteString("The brand voice is sophisticated, sensory, breathable, and calm.\n\n")
	prompt.WriteString(fmt.Sprintf("Write a compelling, luxurious product description (approx 80-100 words) for a product named %q.\n", p.Name))
	prompt.WriteString(fmt.Sprintf("Key ingredients/materials: %s.\n\n", strings.Join(p.Ingredients, ", ")))
	prompt.WriteString("Focus on the feeling, texture, and the \"ritual\" of using the product. ")
	prompt.WriteString("Avoid generic marketing jargon. Use evocative language. Do not use markdown.\n")

	return prompt.String()
}
