package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	tweets "github.com/willmanchac/tweetsClassifier"
	"github.com/willmanchac/tweetsClassifier/internal/config"
	"github.com/willmanchac/tweetsClassifier/internal/logging"
)

// app carries state resolved once before any subcommand runs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	stopwordsFile     string
	stopwordsLanguage string
	logLevel          string
	logFormat         string
	modelDir          string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tweetsclassifier",
		Short:         "Classify tweet sentiment by corpus membership",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.stopwordsFile, "stopwords", "", "stopword file, one word per line (env STOPWORDS_FILE)")
	flags.StringVar(&a.stopwordsLanguage, "stopwords-language", "", "built-in stopword language: en, es, fr, de (env STOPWORDS_LANGUAGE)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	flags.StringVar(&a.logFormat, "log-format", "", "text or json (env LOG_FORMAT)")

	root.AddCommand(
		newRunCmd(a),
		newTrainCmd(a),
		newClassifyCmd(a),
		newServeCmd(a),
	)
	return root
}

// init loads the environment configuration and lets explicitly set flags
// override it.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("stopwords") {
		cfg.StopwordsFile = a.stopwordsFile
	}
	if flags.Changed("stopwords-language") {
		cfg.StopwordsLanguage = a.stopwordsLanguage
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Lookup("model-dir") != nil && flags.Changed("model-dir") {
		cfg.ModelDir = a.modelDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	return nil
}

func (a *app) stopwords() (tweets.StopwordSet, error) {
	set, err := a.cfg.Stopwords()
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	a.logger.Debug("stopwords loaded", slog.Int("count", len(set)))
	return set, nil
}

func (a *app) trainingConfig() (tweets.TrainingConfig, error) {
	stop, err := a.stopwords()
	if err != nil {
		return tweets.TrainingConfig{}, err
	}
	return tweets.TrainingConfig{Stopwords: stop, Logger: a.logger}, nil
}
