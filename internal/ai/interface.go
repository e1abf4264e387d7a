package ai

import "context"

// Provider is the contract every model backend satisfies. Exactly one
// provider is active per process; the choice is made at configuration time by
// which credential is present, never negotiated at runtime.
type Provider interface {
	// Name identifies the backend in logs and advisories.
	Name() string

	// Generate sends one request and returns the assistant text. Failures are
	// always *ai.Error values carrying a classified Kind; callers decide
	// whether the kind is a displayable advisory or a hard error.
	Generate(ctx context.Context, req Request) (string, error)
}
