package tweets

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Sentence is a segmented portion of text.
type Sentence struct {
	Text  string // The sentence's text.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might disable sentence segmentation:
//
//	doc, err := tweets.NewDocument("...", tweets.WithSegmentation(false))
type DocOpt func(opts *DocOpts)

// DocOpts controls the Document creation process.
type DocOpts struct {
	Segment   bool      // If true, split the text into sentences
	Tokenizer Tokenizer // Tokenizer to use
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(include Tokenizer) DocOpt {
	return func(opts *DocOpts) {
		opts.Tokenizer = include
	}
}

// WithSegmentation can enable (the default) or disable sentence segmentation.
func WithSegmentation(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.Segment = include
	}
}

// A Document is a record's text with its tokens and sentences.
type Document struct {
	Text string

	tokenizer Tokenizer
	sentences []Sentence
	tokens    TokenSequence
}

// Tokens returns the document's tokens.
func (doc *Document) Tokens() TokenSequence {
	return doc.tokens
}

// Sentences returns the document's sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
)

func englishSegmenter() (*sentences.DefaultSentenceTokenizer, error) {
	segmenterOnce.Do(func() {
		segmenter, segmenterErr = english.NewSentenceTokenizer(nil)
	})
	return segmenter, segmenterErr
}

// NewDocument creates a Document according to the user-specified options.
// Without segmentation the whole text is a single sentence.
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	base := DocOpts{
		Segment:   true,
		Tokenizer: NewAlphaTokenizer(),
	}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	doc := &Document{
		Text:      text,
		tokenizer: base.Tokenizer,
		tokens:    base.Tokenizer.Tokenize(NewText(text)),
	}

	if strings.TrimSpace(text) == "" {
		doc.sentences = []Sentence{}
		return doc, nil
	}

	if !base.Segment {
		doc.sentences = []Sentence{{Text: text, Start: 0, End: len(text)}}
		return doc, nil
	}

	seg, err := englishSegmenter()
	if err != nil {
		return nil, fmt.Errorf("load sentence segmenter: %w", err)
	}
	for _, s := range seg.Tokenize(text) {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		doc.sentences = append(doc.sentences, Sentence{
			Text:  s.Text,
			Start: s.Start,
			End:   s.End,
		})
	}
	return doc, nil
}
