package tweets

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// TrainingConfig contains configuration for building a corpus.
type TrainingConfig struct {
	Stopwords StopwordSet
	Logger    *slog.Logger
}

// DefaultTrainingConfig returns a configuration with no stopwords and the
// default logger.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Stopwords: StopwordSet{},
		Logger:    slog.Default(),
	}
}

// Trainer reads labeled records into a Corpus.
type Trainer struct {
	config    TrainingConfig
	tokenizer Tokenizer
}

// NewTrainer creates a new trainer with the given configuration
func NewTrainer(config TrainingConfig) *Trainer {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Stopwords == nil {
		config.Stopwords = StopwordSet{}
	}
	return &Trainer{
		config:    config,
		tokenizer: NewAlphaTokenizer(UsingStopwords(config.Stopwords)),
	}
}

// Tokenizer returns the tokenizer the trainer applies to record text. Test
// data must go through the same one.
func (t *Trainer) Tokenizer() Tokenizer {
	return t.tokenizer
}

// Train tokenizes rec and appends it to corpus. It reports false when the
// record's label is not exactly "4" or "0" and the record was discarded.
func (t *Trainer) Train(corpus *Corpus, rec TrainingRecord) bool {
	label, ok := parseTrainingLabel(rec.Label)
	if !ok {
		return false
	}
	return corpus.TrainOne(label, t.tokenizer.Tokenize(NewText(rec.Text)))
}

// LoadTrainingData reads training lines from r into corpus. Malformed lines
// and lines with unrecognized labels are skipped and counted; only a read
// failure is returned as an error.
func (t *Trainer) LoadTrainingData(r io.Reader, corpus *Corpus) (TrainingMetrics, error) {
	startTime := time.Now()
	var metrics TrainingMetrics

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		metrics.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")

		rec, err := ParseTrainingRecord(line, lineNo)
		if err != nil {
			metrics.Malformed++
			t.config.Logger.Warn("skipping training line",
				slog.Int("line", lineNo),
				slog.String("reason", err.Error()),
			)
			continue
		}

		label, ok := parseTrainingLabel(rec.Label)
		if !ok {
			metrics.Discarded++
			t.config.Logger.Debug("discarding training record with unknown label",
				slog.Int("line", lineNo),
				slog.String("label", rec.Label),
			)
			continue
		}

		corpus.TrainOne(label, t.tokenizer.Tokenize(NewText(rec.Text)))
		if label == Positive {
			metrics.Positive++
		} else {
			metrics.Negative++
		}
	}
	if err := scanner.Err(); err != nil {
		return metrics, fmt.Errorf("read training data at line %d: %w", lineNo+1, err)
	}

	metrics.TrainingTime = time.Since(startTime)
	t.config.Logger.Info("training complete",
		slog.Int("lines", metrics.Lines),
		slog.Int("positive", metrics.Positive),
		slog.Int("negative", metrics.Negative),
		slog.Int("discarded", metrics.Discarded),
		slog.Int("malformed", metrics.Malformed),
		slog.Duration("elapsed", metrics.TrainingTime),
	)
	return metrics, nil
}

// TrainFile opens path and loads it with LoadTrainingData. An unopenable
// file is reported as a *ResourceError and leaves corpus untouched.
func (t *Trainer) TrainFile(path string, corpus *Corpus) (TrainingMetrics, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		rerr := &ResourceError{Op: "open", Path: path, Err: err}
		t.config.Logger.Error("failed to open training data file", slog.String("error", rerr.Error()))
		return TrainingMetrics{}, rerr
	}
	defer f.Close()

	return t.LoadTrainingData(f, corpus)
}

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024
