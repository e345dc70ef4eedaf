// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"

	tweets "github.com/willmanchac/tweetsClassifier"
	"github.com/willmanchac/tweetsClassifier/internal/logging"
)

type Config struct {
	LogLevel          string `env:"LOG_LEVEL" default:"info"`
	LogFormat         string `env:"LOG_FORMAT" default:"text"`
	StopwordsFile     string `env:"STOPWORDS_FILE"`
	StopwordsLanguage string `env:"STOPWORDS_LANGUAGE"`
	ModelDir          string `env:"MODEL_DIR" default:"./model"`
	HTTPAddr          string `env:"HTTP_ADDR" default:":8080"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that env tags cannot express.
func (cfg *Config) Validate() error {
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json; got %q", cfg.LogFormat)
	}
	if cfg.StopwordsLanguage != "" && !tweets.IsSupportedLanguage(tweets.Language(cfg.StopwordsLanguage)) {
		return fmt.Errorf("STOPWORDS_LANGUAGE %q is not supported; use one of %v",
			cfg.StopwordsLanguage, tweets.SupportedLanguages())
	}
	if cfg.ModelDir == "" {
		return fmt.Errorf("MODEL_DIR must not be empty")
	}
	return nil
}

// Stopwords resolves the configured stopword source. A file takes
// precedence over a language; with neither, the set is empty.
func (cfg *Config) Stopwords() (tweets.StopwordSet, error) {
	switch {
	case cfg.StopwordsFile != "":
		return tweets.LoadStopwordsFile(cfg.StopwordsFile)
	case cfg.StopwordsLanguage != "":
		return tweets.DefaultStopwords(tweets.Language(cfg.StopwordsLanguage))
	default:
		return tweets.StopwordSet{}, nil
	}
}
