// README: Config-time provider selection by which credential is present.
package ai

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout     = 60 * time.Second
	defaultDialTimeout     = 10 * time.Second
	defaultIdleConnTimeout = 90 * time.Second
)

// Config gathers the per-variant settings; exactly one credential is expected
// to be set in a given deployment.
type Config struct {
	OpenAI      OpenAIConfig
	Gemini      GeminiConfig
	HuggingFace HuggingFaceConfig
}

// FromConfig constructs the single active provider. The first configured
// credential wins, in the order OpenAI, Gemini, Hugging Face. With no
// credential at all the OpenAI variant is still returned: its Generate
// reports Unconfigured without attempting any network I/O, which keeps a
// keyless deployment serving advisories instead of crashing.
func FromConfig(ctx context.Context, cfg Config, client *http.Client) (Provider, error) {
	if client == nil {
		client = NewHTTPClient()
	}
	switch {
	case strings.TrimSpace(cfg.OpenAI.APIKey) != "":
		return NewOpenAI(cfg.OpenAI, client), nil
	case strings.TrimSpace(cfg.Gemini.APIKey) != "":
		return NewGemini(ctx, cfg.Gemini)
	case strings.TrimSpace(cfg.HuggingFace.Token) != "":
		return NewHuggingFace(cfg.HuggingFace, client), nil
	default:
		return NewOpenAI(cfg.OpenAI, client), nil
	}
}

// NewHTTPClient builds the shared client for the HTTP-speaking variants.
func NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: defaultDialTimeout, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        50,
		IdleConnTimeout:     defaultIdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{Timeout: defaultHTTPTimeout, Transport: transport}
}
