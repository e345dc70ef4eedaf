package tweets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentSegments(t *testing.T) {
	doc, err := NewDocument("I loved the show. The ending was bad!")
	require.NoError(t, err)

	sents := doc.Sentences()
	require.Len(t, sents, 2)
	assert.Contains(t, sents[0].Text, "loved")
	assert.Contains(t, sents[1].Text, "ending")
	assert.Equal(t, []string{"I", "loved", "the", "show", "The", "ending", "was", "bad"}, doc.Tokens().Strings())
}

func TestNewDocumentWithoutSegmentation(t *testing.T) {
	text := "one. two. three."
	doc, err := NewDocument(text, WithSegmentation(false))
	require.NoError(t, err)

	require.Len(t, doc.Sentences(), 1)
	assert.Equal(t, Sentence{Text: text, Start: 0, End: len(text)}, doc.Sentences()[0])
}

func TestNewDocumentBlank(t *testing.T) {
	doc, err := NewDocument("   ")
	require.NoError(t, err)
	assert.Empty(t, doc.Sentences())
	assert.Empty(t, doc.Tokens())
}

func TestNewDocumentUsingTokenizer(t *testing.T) {
	tok := NewAlphaTokenizer(UsingStopwords(NewStopwordSet("the")))
	doc, err := NewDocument("the cat sat", UsingTokenizer(tok), WithSegmentation(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "sat"}, doc.Tokens().Strings())
}
