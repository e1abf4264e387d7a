// README: Gemini generative-content adapter (flattened dialogue, inline image part).
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	geminiName   = "Gemini"
	geminiEnvVar = "GEMINI_API_KEY"

	defaultGeminiTextModel   = "gemini-2.0-flash-lite"
	defaultGeminiVisionModel = "gemini-2.0-flash"
)

type GeminiConfig struct {
	APIKey      string
	TextModel   string
	VisionModel string
}

// GeminiProvider flattens the system prompt and replayed history into one
// linear text block with "User:"/"Assistant:" prefixes; the current image, if
// any, rides as a separate inline binary part next to the text.
type GeminiProvider struct {
	cfg    GeminiConfig
	client *genai.Client
}

// NewGemini initializes the SDK client. The credential must be present; the
// factory only constructs this variant when it is.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.TextModel == "" {
		cfg.TextModel = defaultGeminiTextModel
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = defaultGeminiVisionModel
	}
	p := &GeminiProvider{cfg: cfg}
	if strings.TrimSpace(cfg.APIKey) == "" {
		// Left clientless: Generate reports Unconfigured before any use.
		return p, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	p.client = client
	return p, nil
}

// Close releases the SDK client resources.
func (p *GeminiProvider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

func (p *GeminiProvider) Name() string { return geminiName }

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" || p.client == nil {
		return "", p.err(KindUnconfigured, "")
	}

	name := p.cfg.TextModel
	if req.Image != nil {
		name = p.cfg.VisionModel
	}
	model := p.client.GenerativeModel(name)

	parts := []genai.Part{genai.Text(req.flatten(false))}
	if req.Image != nil {
		parts = append(parts, genai.ImageData(imageFormat(req.Image.MIME), req.Image.Data))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", p.classify(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", p.err(KindUnknown, "API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", p.err(KindUnknown, "API returned empty text parts")
	}
	return strings.Join(textParts, "\n"), nil
}

// classify maps googleapi failures onto the shared taxonomy; everything else
// stays Unknown with the native message preserved.
func (p *GeminiProvider) classify(err error) *Error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden:
			return p.err(KindUnauthorized, apiErr.Message)
		case apiErr.Code == http.StatusTooManyRequests && strings.Contains(apiErr.Body, "RESOURCE_EXHAUSTED"):
			return p.err(KindQuota, apiErr.Message)
		case apiErr.Code == http.StatusTooManyRequests:
			return p.err(KindRateLimited, apiErr.Message)
		}
	}
	return p.err(KindUnknown, err.Error())
}

// imageFormat converts a MIME type to the bare format genai expects.
func imageFormat(mime string) string {
	if f := strings.TrimPrefix(mime, "image/"); f != "" {
		return f
	}
	return "jpeg"
}

func (p *GeminiProvider) err(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Provider: geminiName, EnvVar: geminiEnvVar}
}
