package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHuggingFace_UnconfiguredSkipsNetwork(t *testing.T) {
	transport := &countingTransport{}
	p := NewHuggingFace(HuggingFaceConfig{}, &http.Client{Transport: transport})

	_, err := p.Generate(context.Background(), Request{Text: "hello"})
	aiErr, ok := AsError(err)
	if !ok || aiErr.Kind != KindUnconfigured {
		t.Fatalf("expected unconfigured error, got %v", err)
	}
	if transport.calls != 0 {
		t.Errorf("expected zero network calls, got %d", transport.calls)
	}
}

func TestHuggingFace_FlattensDialogueAndMarksImage(t *testing.T) {
	var captured hfRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode([]map[string]any{{"generated_text": " Got it, you're near Room 201. "}})
	}))
	defer srv.Close()

	p := NewHuggingFace(HuggingFaceConfig{Token: "hf-token", BaseURL: srv.URL, Model: "test/model"}, srv.Client())
	reply, err := p.Generate(context.Background(), Request{
		System:  "persona",
		History: []Message{{Role: RoleUser, Content: "hi"}, {Role: RoleAssistant, Content: "hello"}},
		Text:    "this is where I am",
		Image:   &Image{MIME: "image/jpeg", Data: []byte{0xFF}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Got it, you're near Room 201." {
		t.Errorf("reply = %q", reply)
	}

	wantPrompt := "persona\n\nUser: hi\nAssistant: hello\nUser: " + imageMarker + " this is where I am\nAssistant:"
	if captured.Inputs != wantPrompt {
		t.Errorf("flattened prompt mismatch:\ngot:  %q\nwant: %q", captured.Inputs, wantPrompt)
	}
	// The marker stands in for the image; raw bytes must never be sent.
	if strings.Contains(captured.Inputs, "\xff") {
		t.Errorf("image bytes leaked into the prompt")
	}
}

func TestHuggingFace_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind Kind
	}{
		{"unauthorized", http.StatusUnauthorized, KindUnauthorized},
		{"forbidden", http.StatusForbidden, KindUnauthorized},
		{"payment required", http.StatusPaymentRequired, KindQuota},
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"model loading", http.StatusServiceUnavailable, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(hfError{Error: "backend says no"})
			}))
			defer srv.Close()

			p := NewHuggingFace(HuggingFaceConfig{Token: "hf-token", BaseURL: srv.URL, Model: "test/model"}, srv.Client())
			_, err := p.Generate(context.Background(), Request{Text: "hi"})
			aiErr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *ai.Error, got %v", err)
			}
			if aiErr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", aiErr.Kind, tt.wantKind)
			}
			if aiErr.Detail != "backend says no" {
				t.Errorf("Detail = %q, native message not preserved", aiErr.Detail)
			}
		})
	}
}
