// README: Classified provider error taxonomy and user-facing advisories.
package ai

import (
	"errors"
	"fmt"
)

// Kind classifies a provider failure. All adapters map their native error
// shapes onto this taxonomy.
type Kind string

const (
	// KindUnconfigured means the credential is missing; checked before any
	// network I/O is attempted.
	KindUnconfigured Kind = "unconfigured"
	KindUnauthorized Kind = "unauthorized"
	KindQuota        Kind = "quota_exceeded"
	KindRateLimited  Kind = "rate_limited"
	KindUnknown      Kind = "unknown"
)

// Error is the only error type Generate returns. Provider, EnvVar and
// Billing feed the remediation text of soft advisories.
type Error struct {
	Kind     Kind
	Detail   string
	Provider string // display name, e.g. "OpenAI"
	EnvVar   string // credential variable, e.g. "OPENAI_API_KEY"
	Billing  string // billing page URL, "" when the backend has none
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Detail)
}

// Soft reports whether the failure should be surfaced as a displayable
// advisory rather than a hard error. Only KindUnknown is hard.
func (e *Error) Soft() bool {
	return e.Kind != KindUnknown
}

// Advisory renders the user-displayable message for this failure, including
// the remediation (which credential to set, where to add credits, or to wait
// and retry). KindUnknown keeps the raw provider message for diagnosis.
func (e *Error) Advisory() string {
	switch e.Kind {
	case KindUnconfigured:
		return fmt.Sprintf("%s API key is not configured. Please set %s in your environment variables.", e.Provider, e.EnvVar)
	case KindUnauthorized:
		return fmt.Sprintf("%s API key is not configured or invalid. Please check your %s environment variable.", e.Provider, e.EnvVar)
	case KindQuota:
		msg := fmt.Sprintf("⚠️ Your %s account has exceeded its quota.", e.Provider)
		if e.Billing != "" {
			msg += fmt.Sprintf(" Please add credits at %s to continue using the AI features.", e.Billing)
		}
		return msg
	case KindRateLimited:
		return "Rate limit exceeded. Please wait a moment and try again."
	default:
		return fmt.Sprintf("Error: %s. Please try again.", e.Detail)
	}
}

// AsError unwraps err into *ai.Error when it carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
