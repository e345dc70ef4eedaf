package tweets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracyTally(t *testing.T) {
	var tally AccuracyTally
	_, err := tally.Accuracy()
	require.ErrorIs(t, err, ErrDivisionUndefined)

	tally.Record(true)
	tally.Record(false)
	tally.Record(true)
	tally.Record(true)

	acc, err := tally.Accuracy()
	require.NoError(t, err)
	assert.Equal(t, 0.75, acc)
	assert.Equal(t, "0.750", FormatAccuracy(acc))
}

func TestConfusionMatrix(t *testing.T) {
	cm := NewConfusionMatrix()
	cm.Add("4", Positive)
	cm.Add("4", Positive)
	cm.Add("4", Negative)
	cm.Add("0", Negative)
	cm.Add("0", Positive)
	cm.Add("2", Negative)

	assert.Equal(t, 2, cm.Count(Positive, Positive))
	assert.Equal(t, 1, cm.Count(Positive, Negative))
	assert.Equal(t, 1, cm.Count(Negative, Negative))
	assert.Equal(t, 1, cm.Count(Negative, Positive))
	assert.Equal(t, 0, cm.Count(Label("2"), Negative))
	assert.Equal(t, 5, cm.Total())
	assert.Equal(t, 1, cm.UnknownGold)
	assert.InDelta(t, 0.6, cm.Accuracy(), 1e-9)

	pos := cm.Metrics(Positive)
	assert.InDelta(t, 2.0/3.0, pos.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, pos.Recall, 1e-9)
	assert.InDelta(t, 2.0/3.0, pos.F1Score, 1e-9)
	assert.Equal(t, 3, pos.Support)

	neg := cm.Metrics(Negative)
	assert.InDelta(t, 0.5, neg.Precision, 1e-9)
	assert.InDelta(t, 0.5, neg.Recall, 1e-9)
	assert.Equal(t, 2, neg.Support)
}

func TestConfusionMatrixEmpty(t *testing.T) {
	cm := NewConfusionMatrix()
	assert.Zero(t, cm.Accuracy())
	assert.Equal(t, ClassMetrics{}, cm.Metrics(Positive))
	assert.Equal(t, ClassMetrics{}, cm.Metrics(Label("x")))
}
