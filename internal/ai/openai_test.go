package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// countingTransport fails every request and counts attempts; used to prove
// the unconfigured path never reaches the network.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, http.ErrHandlerTimeout
}

func TestOpenAI_UnconfiguredSkipsNetwork(t *testing.T) {
	transport := &countingTransport{}
	p := NewOpenAI(OpenAIConfig{}, &http.Client{Transport: transport})

	_, err := p.Generate(context.Background(), Request{Text: "hello"})
	aiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *ai.Error, got %v", err)
	}
	if aiErr.Kind != KindUnconfigured {
		t.Errorf("Kind = %v, want %v", aiErr.Kind, KindUnconfigured)
	}
	if !aiErr.Soft() {
		t.Errorf("expected unconfigured to be a soft advisory")
	}
	if transport.calls != 0 {
		t.Errorf("expected zero network calls, got %d", transport.calls)
	}
}

func TestOpenAI_GenerateSuccess(t *testing.T) {
	var captured oaiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "Where would you like to go?"}},
			},
		})
	}))
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL}, srv.Client())
	reply, err := p.Generate(context.Background(), Request{
		System: NavigatorPersona,
		History: []Message{
			{Role: RoleUser, Content: "hi"},
			{Role: RoleAssistant, Content: "Hello! Where are you right now?"},
		},
		Text: "I'm at the library",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Where would you like to go?" {
		t.Errorf("reply = %q", reply)
	}

	if captured.Model != defaultOpenAITextModel {
		t.Errorf("model = %q, want text model %q", captured.Model, defaultOpenAITextModel)
	}
	// system + two history turns + current turn, in order.
	if len(captured.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" {
		t.Errorf("first message role = %q, want system", captured.Messages[0].Role)
	}
	if captured.Messages[1].Content != "hi" || captured.Messages[2].Content != "Hello! Where are you right now?" {
		t.Errorf("history not replayed in order: %+v", captured.Messages[1:3])
	}
}

func TestOpenAI_ImageSelectsVisionModel(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "Looks like Room 201."}}},
		})
	}))
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL}, srv.Client())
	_, err := p.Generate(context.Background(), Request{
		Text:  "where am I?",
		Image: &Image{MIME: "image/png", Data: []byte{1, 2, 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Model != defaultOpenAIVisionModel {
		t.Errorf("model = %q, want vision model %q", captured.Model, defaultOpenAIVisionModel)
	}
	last := captured.Messages[len(captured.Messages)-1]
	if !strings.Contains(string(last.Content), "data:image/png;base64,") {
		t.Errorf("current turn does not carry the inline image data URL: %s", last.Content)
	}
}

func TestOpenAI_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		code     string
		wantKind Kind
		wantSoft bool
	}{
		{"unauthorized", http.StatusUnauthorized, "invalid_api_key", KindUnauthorized, true},
		{"quota", http.StatusTooManyRequests, "insufficient_quota", KindQuota, true},
		{"rate limited", http.StatusTooManyRequests, "rate_limit_exceeded", KindRateLimited, true},
		{"server error", http.StatusInternalServerError, "", KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "backend says no", "code": tt.code},
				})
			}))
			defer srv.Close()

			p := NewOpenAI(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL}, srv.Client())
			_, err := p.Generate(context.Background(), Request{Text: "hi"})
			aiErr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *ai.Error, got %v", err)
			}
			if aiErr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", aiErr.Kind, tt.wantKind)
			}
			if aiErr.Soft() != tt.wantSoft {
				t.Errorf("Soft() = %v, want %v", aiErr.Soft(), tt.wantSoft)
			}
			if aiErr.Detail != "backend says no" {
				t.Errorf("Detail = %q, native message not preserved", aiErr.Detail)
			}
		})
	}
}
