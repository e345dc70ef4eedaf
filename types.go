package tweets

import (
	"strings"
	"time"
)

// A Token is a non-empty run of ASCII letters taken from a record's text.
type Token = TextValue

// A TokenSequence holds the tokens of one record in scan order.
type TokenSequence []Token

// Strings returns the tokens as plain strings, mostly for tests and output.
func (ts TokenSequence) Strings() []string {
	out := make([]string, len(ts))
	for i, tok := range ts {
		out[i] = tok.String()
	}
	return out
}

// Contains reports whether tok appears verbatim in the sequence.
func (ts TokenSequence) Contains(tok Token) bool {
	for _, t := range ts {
		if Equals(t, tok) {
			return true
		}
	}
	return false
}

// SequenceOf builds a TokenSequence from plain strings.
func SequenceOf(words ...string) TokenSequence {
	seq := make(TokenSequence, len(words))
	for i, w := range words {
		seq[i] = NewText(w)
	}
	return seq
}

// Label is the sentiment of a record, encoded the way the datasets encode it.
type Label string

const (
	Positive Label = "4"
	Negative Label = "0"
)

// ParseLabel maps a raw field to a Label. Surrounding whitespace is ignored so
// that CRLF-terminated label files compare cleanly. ok is false for anything
// other than "4" or "0".
func ParseLabel(raw string) (Label, bool) {
	switch strings.TrimSpace(raw) {
	case string(Positive):
		return Positive, true
	case string(Negative):
		return Negative, true
	default:
		return "", false
	}
}

// parseTrainingLabel accepts only the exact encodings "4" and "0". Unlike
// ParseLabel it does not trim, so " 4" is not a label.
func parseTrainingLabel(raw string) (Label, bool) {
	switch raw {
	case string(Positive):
		return Positive, true
	case string(Negative):
		return Negative, true
	default:
		return "", false
	}
}

// String returns the label's dataset encoding.
func (l Label) String() string {
	return string(l)
}

// Name returns a human readable name for the label.
func (l Label) Name() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// TrainingRecord is one parsed line of a training file.
type TrainingRecord struct {
	Label     string // raw label field; only "4" and "0" are used
	ID        string
	Timestamp string
	Other     string
	Username  string
	Text      string
}

// TestRecord is one parsed line of a test file.
type TestRecord struct {
	ID        string
	Timestamp string
	Other     string
	Username  string
	Text      string
}

// ClassificationRecord pairs a test record with its gold and predicted labels.
type ClassificationRecord struct {
	RecordID  string
	Tokens    TokenSequence
	Gold      string // normalized gold field
	Predicted Label
	Score     Score
}

// Correct reports whether the prediction matches the gold label.
func (cr ClassificationRecord) Correct() bool {
	return string(cr.Predicted) == cr.Gold
}

// AccuracyTally counts correct predictions over all predictions made.
type AccuracyTally struct {
	Correct int
	Total   int
}

// Record adds one prediction to the tally.
func (a *AccuracyTally) Record(correct bool) {
	if correct {
		a.Correct++
	}
	a.Total++
}

// Accuracy returns Correct/Total, or 0 with ErrDivisionUndefined when no
// predictions were made.
func (a AccuracyTally) Accuracy() (float64, error) {
	if a.Total == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(a.Correct) / float64(a.Total), nil
}

// TrainingMetrics summarizes one pass over a training file.
type TrainingMetrics struct {
	Lines        int
	Positive     int
	Negative     int
	Discarded    int // well-formed lines with an unrecognized label
	Malformed    int
	TrainingTime time.Duration
}
