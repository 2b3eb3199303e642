// Package critique requests a qualitative hiring review of a scored
// resume from an LLM. The call is best-effort enrichment: provider
// failures turn into explanatory text, never into pipeline errors.
package critique

import "context"

// Provider submits a prompt to a text-generation service and returns the
// raw response.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DisabledMessage is returned when no critique credentials are configured.
const DisabledMessage = "AI analysis unavailable (API key not configured)."

// Disabled is the provider used when the critique feature is off. It
// answers every prompt with DisabledMessage and never errors.
type Disabled struct{}

func (Disabled) Complete(_ context.Context, _ string) (string, error) {
	return DisabledMessage, nil
}
