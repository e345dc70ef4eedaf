package tweets

import (
	"log/slog"
)

// Score is the number of input tokens found on each side of a corpus.
type Score struct {
	PositiveHits int
	NegativeHits int
}

// Label applies the decision rule: Positive only when positive hits strictly
// exceed negative hits. Every tie, including 0/0, resolves to Negative.
func (s Score) Label() Label {
	if s.PositiveHits > s.NegativeHits {
		return Positive
	}
	return Negative
}

// Classifier labels token sequences by membership in a trained corpus.
type Classifier struct {
	corpus    *Corpus
	tokenizer Tokenizer
	logger    *slog.Logger
	linear    bool
}

// ClassifierOptFunc configures a Classifier.
type ClassifierOptFunc func(*Classifier)

// WithClassifierTokenizer sets the tokenizer used by ClassifyText and Explain.
func WithClassifierTokenizer(t Tokenizer) ClassifierOptFunc {
	return func(c *Classifier) {
		c.tokenizer = t
	}
}

// WithClassifierLogger sets the logger.
func WithClassifierLogger(l *slog.Logger) ClassifierOptFunc {
	return func(c *Classifier) {
		c.logger = l
	}
}

// WithLinearScan makes the classifier search every training sequence instead
// of the per-side token sets. Both produce identical scores.
func WithLinearScan(enabled bool) ClassifierOptFunc {
	return func(c *Classifier) {
		c.linear = enabled
	}
}

// NewClassifier creates a classifier over corpus. The corpus must not be
// trained further while the classifier is in use.
func NewClassifier(corpus *Corpus, opts ...ClassifierOptFunc) *Classifier {
	c := &Classifier{
		corpus:    corpus,
		tokenizer: NewAlphaTokenizer(),
		logger:    slog.Default(),
	}
	for _, applyOpt := range opts {
		applyOpt(c)
	}
	return c
}

// Corpus returns the corpus the classifier reads from.
func (c *Classifier) Corpus() *Corpus {
	return c.corpus
}

// Score counts, for each input token, whether it occurs anywhere on the
// positive side and anywhere on the negative side. A token counts at most once
// per side no matter how many training sequences contain it; repeated input
// tokens are scored independently.
func (c *Classifier) Score(tokens TokenSequence) Score {
	if c.linear {
		return c.scanScore(tokens)
	}

	idx := c.corpus.lookup()
	var score Score
	for _, tok := range tokens {
		if _, found := idx.positive[tok]; found {
			score.PositiveHits++
		}
		if _, found := idx.negative[tok]; found {
			score.NegativeHits++
		}
	}
	return score
}

// scanScore is the direct form of Score: a linear search through every
// sequence, stopping at the first one that contains the token.
func (c *Classifier) scanScore(tokens TokenSequence) Score {
	var score Score
	for _, tok := range tokens {
		for _, seq := range c.corpus.Positive {
			if seq.Contains(tok) {
				score.PositiveHits++
				break
			}
		}
		for _, seq := range c.corpus.Negative {
			if seq.Contains(tok) {
				score.NegativeHits++
				break
			}
		}
	}
	return score
}

// Classify returns the label for tokens.
func (c *Classifier) Classify(tokens TokenSequence) Label {
	return c.Score(tokens).Label()
}

// ClassifyText tokenizes text with the classifier's tokenizer and classifies
// the result.
func (c *Classifier) ClassifyText(text string) (Label, Score, TokenSequence) {
	tokens := c.tokenizer.Tokenize(NewText(text))
	score := c.Score(tokens)
	c.logger.Debug("classified text",
		slog.Int("tokens", len(tokens)),
		slog.Int("positive_hits", score.PositiveHits),
		slog.Int("negative_hits", score.NegativeHits),
	)
	return score.Label(), score, tokens
}

// SentenceScore is the classification of one segmented sentence.
type SentenceScore struct {
	Sentence Sentence
	Tokens   TokenSequence
	Score    Score
	Label    Label
}

// Explanation breaks a document's classification down by sentence. The
// overall result is computed from the whole text, not summed from sentences.
type Explanation struct {
	Label     Label
	Score     Score
	Tokens    TokenSequence
	Sentences []SentenceScore
}

// Explain classifies doc as a whole and each of its sentences separately.
func (c *Classifier) Explain(doc *Document) Explanation {
	tokens := doc.Tokens()
	score := c.Score(tokens)

	exp := Explanation{
		Label:     score.Label(),
		Score:     score,
		Tokens:    tokens,
		Sentences: make([]SentenceScore, 0, len(doc.Sentences())),
	}
	for _, sent := range doc.Sentences() {
		sentTokens := doc.tokenizer.Tokenize(NewText(sent.Text))
		sentScore := c.Score(sentTokens)
		exp.Sentences = append(exp.Sentences, SentenceScore{
			Sentence: sent,
			Tokens:   sentTokens,
			Score:    sentScore,
			Label:    sentScore.Label(),
		})
	}
	return exp
}
