package tweets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpusTrainOne(t *testing.T) {
	c := NewCorpus()

	assert.True(t, c.TrainOne(Positive, SequenceOf("good", "great")))
	assert.True(t, c.TrainOne(Positive, SequenceOf("good", "great")))
	assert.True(t, c.TrainOne(Negative, SequenceOf("bad")))
	assert.False(t, c.TrainOne(Label("2"), SequenceOf("meh")))

	pos, neg := c.Size()
	assert.Equal(t, 2, pos, "sequences are not deduplicated")
	assert.Equal(t, 1, neg)
	assert.Equal(t, []string{"good", "great"}, c.Positive[1].Strings())
}

func TestCorpusVocabularyTracksTraining(t *testing.T) {
	c := NewCorpus()
	c.TrainOne(Positive, SequenceOf("good", "good", "great"))
	c.TrainOne(Negative, SequenceOf("bad"))

	pos, neg := c.Vocabulary()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 1, neg)

	c.TrainOne(Negative, SequenceOf("awful", "bad"))
	pos, neg = c.Vocabulary()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 2, neg)
}

func TestEmptyCorpus(t *testing.T) {
	c := NewCorpus()
	pos, neg := c.Size()
	assert.Zero(t, pos)
	assert.Zero(t, neg)

	pos, neg = c.Vocabulary()
	assert.Zero(t, pos)
	assert.Zero(t, neg)
}
