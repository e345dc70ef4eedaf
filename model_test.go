package tweets

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRoundTrip(t *testing.T) {
	corpus := NewCorpus()
	corpus.TrainOne(Positive, SequenceOf("good", "great"))
	corpus.TrainOne(Positive, SequenceOf("good"))
	corpus.TrainOne(Negative, SequenceOf("bad", "day"))

	dir := filepath.Join(t.TempDir(), "model")
	model := NewModel("tweets", corpus, NewStopwordSet("the", "a"))
	require.NoError(t, model.Write(dir))

	loaded, err := ModelFromDisk(dir)
	require.NoError(t, err)
	assert.Equal(t, "tweets", loaded.Name)
	assert.Equal(t, []string{"a", "the"}, loaded.Stopwords.Words())
	require.Len(t, loaded.Corpus.Positive, 2)
	require.Len(t, loaded.Corpus.Negative, 1)
	assert.Equal(t, []string{"bad", "day"}, loaded.Corpus.Negative[0].Strings())

	label, score, tokens := loaded.Classifier().ClassifyText("the good day")
	assert.Equal(t, []string{"good", "day"}, tokens.Strings())
	assert.Equal(t, Score{PositiveHits: 1, NegativeHits: 1}, score)
	assert.Equal(t, Negative, label)
}

func TestModelFromDiskMissing(t *testing.T) {
	_, err := ModelFromDisk(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceUnavailable))
}

func TestModelNameDefaultsToDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nightly")
	require.NoError(t, NewModel("", NewCorpus(), nil).Write(dir))

	loaded, err := ModelFromDisk(dir)
	require.NoError(t, err)
	assert.Equal(t, "nightly", loaded.Name)
	assert.Empty(t, loaded.Stopwords)
}
