// README: Config loader with env defaults for HTTP, Redis, sessions, and AI providers.
package config

import (
	"os"
	"strconv"
	"time"

	"campusnav/internal/ai"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Addr empty means turn logs stay in process memory.
		Addr string
	}
	Session struct {
		TTL time.Duration
	}
	AI ai.Config
}

// Load reads the whole configuration from the environment. Provider
// credentials are all optional: a missing key becomes a soft advisory
// at request time, not a startup failure.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("CAMPUSNAV_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("CAMPUSNAV_REDIS_ADDR", "")
	cfg.Session.TTL = time.Duration(envOrDefaultInt("CAMPUSNAV_SESSION_TTL_MIN", 120)) * time.Minute

	cfg.AI.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AI.OpenAI.BaseURL = os.Getenv("CAMPUSNAV_OPENAI_BASE_URL")
	cfg.AI.OpenAI.TextModel = os.Getenv("CAMPUSNAV_OPENAI_TEXT_MODEL")
	cfg.AI.OpenAI.VisionModel = os.Getenv("CAMPUSNAV_OPENAI_VISION_MODEL")

	cfg.AI.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.Gemini.TextModel = os.Getenv("CAMPUSNAV_GEMINI_TEXT_MODEL")
	cfg.AI.Gemini.VisionModel = os.Getenv("CAMPUSNAV_GEMINI_VISION_MODEL")

	cfg.AI.HuggingFace.Token = os.Getenv("HF_API_TOKEN")
	cfg.AI.HuggingFace.BaseURL = os.Getenv("CAMPUSNAV_HF_BASE_URL")
	cfg.AI.HuggingFace.Model = os.Getenv("CAMPUSNAV_HF_MODEL")

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
