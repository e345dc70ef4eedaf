package tweets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EvaluationReport summarizes a test pass.
type EvaluationReport struct {
	RunID     string
	Tally     AccuracyTally
	Accuracy  float64
	Undefined bool // no predictions were made; Accuracy is reported as 0
	Malformed int
	Confusion *ConfusionMatrix
	Positive  ClassMetrics
	Negative  ClassMetrics
	Duration  time.Duration
}

// FormatAccuracy renders accuracy the way the diagnostics output does.
func FormatAccuracy(accuracy float64) string {
	return fmt.Sprintf("%.3f", accuracy)
}

// Evaluator classifies test records and checks them against gold labels.
type Evaluator struct {
	classifier *Classifier
	tokenizer  Tokenizer
	logger     *slog.Logger
}

// EvaluatorOptFunc configures an Evaluator.
type EvaluatorOptFunc func(*Evaluator)

// WithEvaluatorLogger sets the logger.
func WithEvaluatorLogger(l *slog.Logger) EvaluatorOptFunc {
	return func(e *Evaluator) {
		e.logger = l
	}
}

// NewEvaluator creates an evaluator. tokenizer must be the one used during
// training so that both sides see the same stopwords.
func NewEvaluator(classifier *Classifier, tokenizer Tokenizer, opts ...EvaluatorOptFunc) *Evaluator {
	e := &Evaluator{
		classifier: classifier,
		tokenizer:  tokenizer,
		logger:     slog.Default(),
	}
	for _, applyOpt := range opts {
		applyOpt(e)
	}
	return e
}

// ClassifyRecord tokenizes and classifies one test record.
func (e *Evaluator) ClassifyRecord(rec TestRecord, gold string) ClassificationRecord {
	tokens := e.tokenizer.Tokenize(NewText(rec.Text))
	score := e.classifier.Score(tokens)
	return ClassificationRecord{
		RecordID:  rec.ID,
		Tokens:    tokens,
		Gold:      strings.TrimSpace(gold),
		Predicted: score.Label(),
		Score:     score,
	}
}

// Evaluate reads test lines and gold lines in lockstep and stops as soon as
// either input runs out. For every well-formed test line it writes
// "predicted,id" to predictions and, on a mismatch, "predicted,gold" to
// diagnostics. A malformed test line is skipped together with its gold line
// and does not count toward the total. The final diagnostics line is the
// accuracy with three decimals; with no predictions it is 0.000 and the
// report is marked Undefined.
func (e *Evaluator) Evaluate(tests, gold io.Reader, predictions, diagnostics io.Writer) (EvaluationReport, error) {
	startTime := time.Now()
	report := EvaluationReport{
		RunID:     uuid.NewString(),
		Confusion: NewConfusionMatrix(),
	}
	logger := e.logger.With(slog.String("run_id", report.RunID))

	testScanner := bufio.NewScanner(tests)
	testScanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	goldScanner := bufio.NewScanner(gold)

	predOut := bufio.NewWriter(predictions)
	diagOut := bufio.NewWriter(diagnostics)

	lineNo := 0
	for testScanner.Scan() && goldScanner.Scan() {
		lineNo++
		line := strings.TrimRight(testScanner.Text(), "\r")

		rec, err := ParseTestRecord(line, lineNo)
		if err != nil {
			report.Malformed++
			logger.Warn("skipping test line",
				slog.Int("line", lineNo),
				slog.String("reason", err.Error()),
			)
			continue
		}

		cr := e.ClassifyRecord(rec, goldScanner.Text())
		if _, err := fmt.Fprintf(predOut, "%s,%s\n", cr.Predicted, cr.RecordID); err != nil {
			return report, fmt.Errorf("write prediction: %w", err)
		}
		if !cr.Correct() {
			if _, err := fmt.Fprintf(diagOut, "%s,%s\n", cr.Predicted, cr.Gold); err != nil {
				return report, fmt.Errorf("write diagnostics: %w", err)
			}
		}
		report.Tally.Record(cr.Correct())
		report.Confusion.Add(cr.Gold, cr.Predicted)
	}
	if err := errors.Join(testScanner.Err(), goldScanner.Err()); err != nil {
		return report, fmt.Errorf("read test data at line %d: %w", lineNo+1, err)
	}

	accuracy, err := report.Tally.Accuracy()
	if errors.Is(err, ErrDivisionUndefined) {
		report.Undefined = true
		logger.Warn("no test records were evaluated; accuracy reported as 0")
	}
	report.Accuracy = accuracy
	report.Positive = report.Confusion.Metrics(Positive)
	report.Negative = report.Confusion.Metrics(Negative)

	if _, err := fmt.Fprintln(diagOut, FormatAccuracy(accuracy)); err != nil {
		return report, fmt.Errorf("write accuracy: %w", err)
	}
	if err := predOut.Flush(); err != nil {
		return report, fmt.Errorf("flush predictions: %w", err)
	}
	if err := diagOut.Flush(); err != nil {
		return report, fmt.Errorf("flush diagnostics: %w", err)
	}

	report.Duration = time.Since(startTime)
	logger.Info("evaluation complete",
		slog.Int("correct", report.Tally.Correct),
		slog.Int("total", report.Tally.Total),
		slog.Int("malformed", report.Malformed),
		slog.String("accuracy", FormatAccuracy(accuracy)),
		slog.Duration("elapsed", report.Duration),
	)
	return report, nil
}
