package tweets

import "sync"

// Corpus holds the token sequences seen during training, one list per label.
// Sequences are stored verbatim: no counting and no deduplication.
type Corpus struct {
	Positive []TokenSequence
	Negative []TokenSequence

	indexOnce sync.Once
	index     *corpusIndex
}

// NewCorpus returns an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{
		Positive: []TokenSequence{},
		Negative: []TokenSequence{},
	}
}

// TrainOne appends tokens to the side named by label. Any other label is
// ignored and reported as false.
func (c *Corpus) TrainOne(label Label, tokens TokenSequence) bool {
	switch label {
	case Positive:
		c.Positive = append(c.Positive, tokens)
	case Negative:
		c.Negative = append(c.Negative, tokens)
	default:
		return false
	}
	c.indexOnce = sync.Once{}
	c.index = nil
	return true
}

// Size returns the number of sequences on each side.
func (c *Corpus) Size() (positive, negative int) {
	return len(c.Positive), len(c.Negative)
}

// corpusIndex is the set of distinct tokens on each side of a corpus. A token
// is in a set iff it appears in at least one sequence of that side, which is
// exactly the existence test the classifier performs.
type corpusIndex struct {
	positive map[TextValue]struct{}
	negative map[TextValue]struct{}
}

// lookup returns the index, building it on first use after training.
func (c *Corpus) lookup() *corpusIndex {
	c.indexOnce.Do(func() {
		c.index = &corpusIndex{
			positive: vocabulary(c.Positive),
			negative: vocabulary(c.Negative),
		}
	})
	return c.index
}

// Vocabulary returns the number of distinct tokens on each side.
func (c *Corpus) Vocabulary() (positive, negative int) {
	idx := c.lookup()
	return len(idx.positive), len(idx.negative)
}

func vocabulary(seqs []TokenSequence) map[TextValue]struct{} {
	set := make(map[TextValue]struct{})
	for _, seq := range seqs {
		for _, tok := range seq {
			set[tok] = struct{}{}
		}
	}
	return set
}
