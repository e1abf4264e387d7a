// README: Conversation service; drives one provider round-trip per user action.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusnav/internal/ai"
)

// Service owns the turn log of every session and the single configured
// provider. It never invents dialogue: a failed provider call appends no
// assistant turn, the caller surfaces the classified advisory instead.
type Service struct {
	provider ai.Provider
	store    TurnStore
}

func NewService(provider ai.Provider, store TurnStore) *Service {
	return &Service{provider: provider, store: store}
}

// NewSession mints a fresh session id. The log itself materializes on the
// first append.
func (s *Service) NewSession() string {
	return uuid.NewString()
}

// Submit runs one request/response cycle: validate, append the user turn,
// call the provider with the prior history, and append the assistant reply.
// The image travels only with the current call; history replays text only.
func (s *Service) Submit(ctx context.Context, sessionID, text string, image *ai.Image) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" && image == nil {
		return "", ErrNoContent
	}

	history, err := s.store.List(ctx, sessionID)
	if err != nil {
		return "", err
	}

	userTurn := Turn{Role: RoleUser, Content: text, HasImage: image != nil, CreatedAt: time.Now()}
	if err := s.store.Append(ctx, sessionID, userTurn); err != nil {
		return "", err
	}

	req := ai.Request{
		System:  ai.NavigatorPersona,
		History: projectHistory(history),
		Text:    text,
		Image:   image,
	}

	reply, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	assistantTurn := Turn{Role: RoleAssistant, Content: reply, CreatedAt: time.Now()}
	if err := s.store.Append(ctx, sessionID, assistantTurn); err != nil {
		return "", err
	}
	return reply, nil
}

// History returns the ordered turn log for rendering; callers must not
// mutate it.
func (s *Service) History(ctx context.Context, sessionID string) ([]Turn, error) {
	return s.store.List(ctx, sessionID)
}

// DescribeImage asks the provider for a single location guess from a photo.
// Stateless: no session, no history.
func (s *Service) DescribeImage(ctx context.Context, image *ai.Image) (string, error) {
	if image == nil {
		return "", ErrNoContent
	}
	guess, err := s.provider.Generate(ctx, ai.Request{Text: ai.DescribeImagePrompt, Image: image})
	if err != nil {
		return "", err
	}
	guess = strings.TrimSpace(guess)
	if guess == "" {
		guess = "Unknown location - please describe where you are"
	}
	return guess, nil
}

// ParseLocation normalizes a free-text location description via the provider.
// When no provider is configured it degrades to a local normalization so the
// form flow keeps working without a credential.
func (s *Service) ParseLocation(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoContent
	}
	parsed, err := s.provider.Generate(ctx, ai.Request{System: ai.ParseLocationPersona, Text: text})
	if err != nil {
		if aiErr, ok := ai.AsError(err); ok && aiErr.Kind == ai.KindUnconfigured {
			return fallbackNormalize(text), nil
		}
		return "", err
	}
	parsed = strings.TrimSpace(parsed)
	if parsed == "" {
		parsed = text
	}
	return parsed, nil
}

// projectHistory strips turns down to role and content for the provider
// request; image payloads are never replayed.
func projectHistory(turns []Turn) []ai.Message {
	msgs := make([]ai.Message, len(turns))
	for i, t := range turns {
		msgs[i] = ai.Message{Role: t.Role, Content: t.Content}
	}
	return msgs
}

var locationPrefixes = []string{"i'm ", "i am ", "at ", "in ", "the "}

// fallbackNormalize strips one leading filler word and capitalizes the rest.
func fallbackNormalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, p := range locationPrefixes {
		if strings.HasPrefix(normalized, p) {
			normalized = strings.TrimSpace(strings.TrimPrefix(normalized, p))
			break
		}
	}
	if normalized == "" {
		return text
	}
	return strings.ToUpper(normalized[:1]) + normalized[1:]
}
