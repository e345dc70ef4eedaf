package tweets

// Tokenizer turns a record's text into tokens.
type Tokenizer interface {
	Tokenize(TextValue) TokenSequence
}

// alphaTokenizer splits text into maximal runs of ASCII letters and drops
// stopwords.
type alphaTokenizer struct {
	stopwords StopwordSet
}

type TokenizerOptFunc func(*alphaTokenizer)

// UsingStopwords sets the words removed after scanning.
func UsingStopwords(x StopwordSet) TokenizerOptFunc {
	return func(tokenizer *alphaTokenizer) {
		tokenizer.stopwords = x
	}
}

// NewAlphaTokenizer returns the default tokenizer. Without options no words
// are removed.
func NewAlphaTokenizer(opts ...TokenizerOptFunc) *alphaTokenizer {
	tok := new(alphaTokenizer)
	tok.stopwords = StopwordSet{}

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	return tok
}

// Tokenize scans text left to right. Any non-letter byte, and the end of the
// input, closes the current run; empty runs are never emitted. Case is kept.
func (t *alphaTokenizer) Tokenize(text TextValue) TokenSequence {
	words := TokenSequence{}

	length := text.Len()
	start := 0
	for i := 0; i <= length; i++ {
		if i < length && isASCIILetter(text.s[i]) {
			continue
		}
		if i > start {
			words = append(words, TextValue{s: text.s[start:i]})
		}
		start = i + 1
	}

	if len(t.stopwords) == 0 {
		return words
	}

	kept := make(TokenSequence, 0, len(words))
	for _, word := range words {
		if !t.stopwords.Contains(word.String()) {
			kept = append(kept, word)
		}
	}
	return kept
}

// Tokenize is a shortcut for NewAlphaTokenizer(UsingStopwords(stop)).Tokenize.
func Tokenize(text string, stop StopwordSet) TokenSequence {
	return NewAlphaTokenizer(UsingStopwords(stop)).Tokenize(NewText(text))
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
