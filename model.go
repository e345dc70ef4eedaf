package tweets

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/willmanchac/tweetsClassifier/internal/persistence"
)

// modelVersion is bumped whenever modelSnapshot changes shape.
const modelVersion = 1

// corpusFile is the snapshot's file name inside a model directory.
const corpusFile = "corpus.gob"

// A Model holds a trained corpus and the stopwords it was trained with.
type Model struct {
	Name      string
	Corpus    *Corpus
	Stopwords StopwordSet
}

// modelSnapshot is the on-disk form of a Model. TextValue keeps its bytes in
// an unexported field, so tokens are stored as plain strings.
type modelSnapshot struct {
	Version   int
	Name      string
	Positive  [][]string
	Negative  [][]string
	Stopwords []string
}

// NewModel bundles a trained corpus with its stopwords.
func NewModel(name string, corpus *Corpus, stop StopwordSet) *Model {
	if stop == nil {
		stop = StopwordSet{}
	}
	return &Model{Name: name, Corpus: corpus, Stopwords: stop}
}

// Tokenizer returns a tokenizer configured with the model's stopwords.
func (m *Model) Tokenizer() Tokenizer {
	return NewAlphaTokenizer(UsingStopwords(m.Stopwords))
}

// Classifier returns a classifier over the model's corpus.
func (m *Model) Classifier(opts ...ClassifierOptFunc) *Classifier {
	opts = append([]ClassifierOptFunc{WithClassifierTokenizer(m.Tokenizer())}, opts...)
	return NewClassifier(m.Corpus, opts...)
}

// Write saves a Model to the user-provided location.
func (m *Model) Write(path string) error {
	snap := modelSnapshot{
		Version:   modelVersion,
		Name:      m.Name,
		Positive:  sequencesToStrings(m.Corpus.Positive),
		Negative:  sequencesToStrings(m.Corpus.Negative),
		Stopwords: m.Stopwords.Words(),
	}
	if err := persistence.SaveGob(filepath.Join(path, corpusFile), snap); err != nil {
		return &ResourceError{Op: "create", Path: path, Err: err}
	}
	return nil
}

// ModelFromDisk loads a Model from the user-provided location.
func ModelFromDisk(path string) (*Model, error) {
	var snap modelSnapshot
	if err := persistence.LoadGob(filepath.Join(path, corpusFile), &snap); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResourceError{Op: "open", Path: path, Err: err}
		}
		return nil, err
	}
	if snap.Version != modelVersion {
		return nil, fmt.Errorf("model %s: unsupported snapshot version %d", path, snap.Version)
	}

	corpus := NewCorpus()
	for _, seq := range snap.Positive {
		corpus.TrainOne(Positive, SequenceOf(seq...))
	}
	for _, seq := range snap.Negative {
		corpus.TrainOne(Negative, SequenceOf(seq...))
	}

	name := snap.Name
	if name == "" {
		name = filepath.Base(path)
	}
	return NewModel(name, corpus, NewStopwordSet(snap.Stopwords...)), nil
}

func sequencesToStrings(seqs []TokenSequence) [][]string {
	out := make([][]string, len(seqs))
	for i, seq := range seqs {
		out[i] = seq.Strings()
	}
	return out
}
