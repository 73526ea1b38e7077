package copywriter

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

// MockProvider produces deterministic brand-voice copy without a network
// call, for local development and tests.
type MockProvider struct {
	model string
	delay time.Duration
}

// NewMockProvider returns a mock with a small simulated API delay.
func NewMockProvider(model string) *MockProvider {
	return &MockProvider{model: model, delay: 200 * time.Millisecond}
}

var promptNameRe = regexp.MustCompile(`named "([^"]+)"`)

func (m *MockProvider) Complete(ctx context.Context, prompt string) (string, error) {
	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	name := "this piece"
	if matches := promptNameRe.FindStringSubmatch(prompt); len(matches) > 1 {
		name = matches[1]
	}

	return fmt.Sprintf(
		"There is a quiet ceremony in reaching for %s. Warmed between the palms, "+
			"it settles against the skin like late evening light, unhurried and sure. "+
			"Each element was chosen for how it feels as much as what it does, an "+
			"invitation to pause, breathe, and return to yourself. This is not a step "+
			"in a routine but a moment kept entirely for you, measured in stillness "+
			"rather than minutes. Let it close the day gently.", name), nil
}

func (m *MockProvider) Model() string {
	return m.model + "-mock"
}

// Compile-time interface check
var _ Provider = (*MockProvider)(nil)
