package tweets

import (
	"gonum.org/v1/gonum/mat"
)

// labelIndex orders the rows and columns of a ConfusionMatrix.
var labelIndex = map[Label]int{
	Positive: 0,
	Negative: 1,
}

// ConfusionMatrix counts predictions against gold labels. Rows are gold
// labels and columns are predicted labels, both ordered Positive, Negative.
// Gold values outside the two labels are counted separately.
type ConfusionMatrix struct {
	counts      *mat.Dense
	UnknownGold int
}

// NewConfusionMatrix returns an empty matrix.
func NewConfusionMatrix() *ConfusionMatrix {
	return &ConfusionMatrix{counts: mat.NewDense(2, 2, nil)}
}

// Add records one prediction.
func (cm *ConfusionMatrix) Add(gold string, predicted Label) {
	g, ok := ParseLabel(gold)
	if !ok {
		cm.UnknownGold++
		return
	}
	i, j := labelIndex[g], labelIndex[predicted]
	cm.counts.Set(i, j, cm.counts.At(i, j)+1)
}

// Count returns how many records with gold label gold were predicted as
// predicted.
func (cm *ConfusionMatrix) Count(gold, predicted Label) int {
	i, iok := labelIndex[gold]
	j, jok := labelIndex[predicted]
	if !iok || !jok {
		return 0
	}
	return int(cm.counts.At(i, j))
}

// Total returns the number of records with a known gold label.
func (cm *ConfusionMatrix) Total() int {
	return int(mat.Sum(cm.counts))
}

// ClassMetrics holds precision, recall and F1 for one label.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1Score   float64
	Support   int
}

// Metrics computes per-label scores. A ratio with a zero denominator is 0.
func (cm *ConfusionMatrix) Metrics(label Label) ClassMetrics {
	k, ok := labelIndex[label]
	if !ok {
		return ClassMetrics{}
	}

	tp := cm.counts.At(k, k)
	predicted := mat.Sum(cm.counts.ColView(k))
	actual := mat.Sum(cm.counts.RowView(k))

	var m ClassMetrics
	m.Support = int(actual)
	if predicted > 0 {
		m.Precision = tp / predicted
	}
	if actual > 0 {
		m.Recall = tp / actual
	}
	if m.Precision+m.Recall > 0 {
		m.F1Score = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Accuracy returns the share of known-gold records on the diagonal.
func (cm *ConfusionMatrix) Accuracy() float64 {
	total := mat.Sum(cm.counts)
	if total == 0 {
		return 0
	}
	return mat.Trace(cm.counts) / total
}
