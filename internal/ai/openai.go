// README: OpenAI chat-completion adapter (role-tagged messages, inline image data URL).
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	openAIName       = "OpenAI"
	openAIEnvVar     = "OPENAI_API_KEY"
	openAIBillingURL = "https://platform.openai.com/account/billing"

	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultOpenAITextModel   = "gpt-3.5-turbo"
	defaultOpenAIVisionModel = "gpt-4o"
)

// OpenAIConfig holds everything the adapter needs; empty fields other than
// APIKey fall back to defaults.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	TextModel   string
	VisionModel string
}

// OpenAIProvider talks to the OpenAI chat completions endpoint. Turns map
// directly to role-tagged message entries; the current turn's image is
// embedded as an inline data URL content part.
type OpenAIProvider struct {
	cfg    OpenAIConfig
	client *http.Client
}

func NewOpenAI(cfg OpenAIConfig, client *http.Client) *OpenAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBaseURL
	}
	if cfg.TextModel == "" {
		cfg.TextModel = defaultOpenAITextModel
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = defaultOpenAIVisionModel
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAIProvider{cfg: cfg, client: client}
}

func (p *OpenAIProvider) Name() string { return openAIName }

type oaiImageURL struct {
	URL string `json:"url"`
}

type oaiContentPart struct {
	Type     string       `json:"type"`
	Text     string       `json:"text,omitempty"`
	ImageURL *oaiImageURL `json:"image_url,omitempty"`
}

// oaiMessage.Content is either a plain string (text-only turns, history) or
// []oaiContentPart (the current multimodal turn); nothing else is assigned.
type oaiMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type oaiRequest struct {
	Model       string       `json:"model"`
	Messages    []oaiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature float64      `json:"temperature,omitempty"`
}

type oaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return "", p.err(KindUnconfigured, "")
	}

	model := p.cfg.TextModel
	if req.Image != nil {
		model = p.cfg.VisionModel
	}

	messages := make([]oaiMessage, 0, len(req.History)+2)
	if req.System != "" {
		messages = append(messages, oaiMessage{Role: "system", Content: req.System})
	}
	for _, m := range req.History {
		messages = append(messages, oaiMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, oaiMessage{Role: RoleUser, Content: currentContent(req)})

	body, err := json.Marshal(oaiRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("marshal request: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("build request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("do request: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("read response: %v", err))
	}

	var parsed oaiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil && resp.StatusCode == http.StatusOK {
		return "", p.err(KindUnknown, fmt.Sprintf("unmarshal response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		detail := strings.TrimSpace(string(raw))
		code := ""
		if parsed.Error != nil {
			detail = parsed.Error.Message
			code = parsed.Error.Code
		}
		return "", p.err(classifyStatus(resp.StatusCode, code), detail)
	}

	if len(parsed.Choices) == 0 {
		return "", p.err(KindUnknown, fmt.Sprintf("empty choices array (raw: %s)", raw))
	}
	return parsed.Choices[0].Message.Content, nil
}

// currentContent builds the current turn's content: a plain string for text,
// or text plus an inline base64 data URL when an image rides along.
func currentContent(req Request) any {
	if req.Image == nil {
		return req.Text
	}
	parts := []oaiContentPart{{
		Type: "image_url",
		ImageURL: &oaiImageURL{
			URL: fmt.Sprintf("data:%s;base64,%s", req.Image.MIME, base64.StdEncoding.EncodeToString(req.Image.Data)),
		},
	}}
	if strings.TrimSpace(req.Text) != "" {
		parts = append(parts, oaiContentPart{Type: "text", Text: req.Text})
	}
	return parts
}

// classifyStatus maps OpenAI-style HTTP failures onto the shared taxonomy.
func classifyStatus(status int, code string) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusTooManyRequests && code == "insufficient_quota":
		return KindQuota
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindUnknown
	}
}

func (p *OpenAIProvider) err(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Provider: openAIName, EnvVar: openAIEnvVar, Billing: openAIBillingURL}
}
