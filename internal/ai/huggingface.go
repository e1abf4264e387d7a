// README: Hugging Face text-generation-inference adapter (text only, image marker).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	hfName   = "Hugging Face"
	hfEnvVar = "HF_API_TOKEN"

	defaultHFBaseURL = "https://api-inference.huggingface.co/models"
	defaultHFModel   = "mistralai/Mistral-7B-Instruct-v0.3"
)

type HuggingFaceConfig struct {
	Token   string
	BaseURL string
	Model   string
}

// HuggingFaceProvider speaks the text-generation-inference API. The backend
// cannot accept binary image data, so the current turn's text is prefixed
// with a literal marker when an image is present.
type HuggingFaceProvider struct {
	cfg    HuggingFaceConfig
	client *http.Client
}

func NewHuggingFace(cfg HuggingFaceConfig, client *http.Client) *HuggingFaceProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultHFBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultHFModel
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HuggingFaceProvider{cfg: cfg, client: client}
}

func (p *HuggingFaceProvider) Name() string { return hfName }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error string `json:"error"`
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(p.cfg.Token) == "" {
		return "", p.err(KindUnconfigured, "")
	}

	body, err := json.Marshal(hfRequest{
		Inputs: req.flatten(true),
		Parameters: hfParameters{
			MaxNewTokens:   1000,
			Temperature:    0.7,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("marshal request: %v", err))
	}

	url := p.cfg.BaseURL + "/" + p.cfg.Model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("build request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.Token)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("do request: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		detail := strings.TrimSpace(string(raw))
		var native hfError
		if json.Unmarshal(raw, &native) == nil && native.Error != "" {
			detail = native.Error
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "", p.err(KindUnauthorized, detail)
		case http.StatusPaymentRequired:
			return "", p.err(KindQuota, detail)
		case http.StatusTooManyRequests:
			return "", p.err(KindRateLimited, detail)
		default:
			return "", p.err(KindUnknown, detail)
		}
	}

	var generations []hfGeneration
	if err := json.Unmarshal(raw, &generations); err != nil {
		return "", p.err(KindUnknown, fmt.Sprintf("unmarshal response: %v", err))
	}
	if len(generations) == 0 || strings.TrimSpace(generations[0].GeneratedText) == "" {
		return "", p.err(KindUnknown, "API returned no generated text")
	}
	return strings.TrimSpace(generations[0].GeneratedText), nil
}

func (p *HuggingFaceProvider) err(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Provider: hfName, EnvVar: hfEnvVar}
}
