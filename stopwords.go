package tweets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// StopwordSet holds words removed from token sequences. Membership is exact
// and case-sensitive.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from words.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, found := s[word]
	return found
}

// Words returns the set's members in sorted order.
func (s StopwordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// LoadStopwords reads one word per line. Blank lines are ignored and a
// trailing carriage return is stripped; nothing else is normalized.
func LoadStopwords(r io.Reader) (StopwordSet, error) {
	set := StopwordSet{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return set, nil
}

// LoadStopwordsFile opens path and reads it with LoadStopwords.
func LoadStopwordsFile(path string) (StopwordSet, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, &ResourceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return LoadStopwords(f)
}

// Language is an ISO 639-1 code understood by DefaultStopwords.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)

// SupportedLanguages returns the languages DefaultStopwords accepts.
func SupportedLanguages() []Language {
	return []Language{English, Spanish, French, German}
}

// IsSupportedLanguage reports whether lang has a built-in stopword list.
func IsSupportedLanguage(lang Language) bool {
	for _, supported := range SupportedLanguages() {
		if lang == supported {
			return true
		}
	}
	return false
}

// DefaultStopwords returns a built-in stopword set for lang.
//
// The bbalet/stopwords package does not export its lists, so each candidate
// word is run through stopwords.CleanString and kept when the library removes
// it. Only ASCII candidates are probed since the tokenizer never produces
// anything else.
func DefaultStopwords(lang Language) (StopwordSet, error) {
	if !IsSupportedLanguage(lang) {
		return nil, fmt.Errorf("language %s is not supported. Supported languages: %v",
			string(lang), SupportedLanguages())
	}

	set := StopwordSet{}
	for _, word := range stopwordCandidates(lang) {
		cleaned := stopwords.CleanString(word, string(lang), false)
		if strings.TrimSpace(cleaned) == "" {
			set[word] = struct{}{}
		}
	}
	return set, nil
}

// stopwordCandidates lists words worth probing for lang.
func stopwordCandidates(lang Language) []string {
	switch lang {
	case Spanish:
		return []string{
			"el", "la", "los", "las", "un", "una", "unos", "unas", "y", "o", "pero",
			"que", "de", "en", "a", "por", "para", "con", "sin", "sobre", "entre",
			"hasta", "desde", "es", "son", "ser", "estar", "hay", "fue", "era",
			"yo", "ella", "ellos", "mi", "tu", "su", "este", "esta", "ese", "esa",
			"lo", "le", "les", "se", "me", "te", "nos", "como", "cuando", "donde",
			"porque", "si", "no", "muy", "mucho", "poco", "todo", "nada", "algo",
		}
	case French:
		return []string{
			"le", "la", "les", "un", "une", "des", "de", "du", "et", "au", "aux",
			"en", "pour", "par", "avec", "sans", "sous", "sur", "dans", "contre",
			"est", "sont", "avoir", "fait", "je", "tu", "il", "elle", "on", "nous",
			"vous", "ils", "elles", "mon", "ton", "son", "ma", "ta", "sa", "mes",
			"ce", "cette", "ces", "que", "qui", "quoi", "dont", "si", "ne", "pas",
			"plus", "moins", "bien", "tout", "tous",
		}
	case German:
		return []string{
			"der", "die", "das", "den", "dem", "des", "ein", "eine", "einen", "und",
			"oder", "aber", "doch", "denn", "weil", "wenn", "als", "dass", "ob", "zu",
			"in", "an", "auf", "aus", "bei", "mit", "nach", "von", "vor", "durch",
			"gegen", "ohne", "um", "bis", "ist", "sind", "war", "sein", "haben",
			"ich", "du", "er", "sie", "es", "wir", "ihr", "mein", "dein", "dieser",
			"man", "sich", "nicht", "kein", "sehr", "noch", "nur", "auch",
		}
	default:
		return []string{
			"a", "an", "and", "are", "as", "at", "be", "been", "by", "for", "from",
			"has", "had", "have", "he", "her", "his", "how", "i", "in", "is", "it",
			"its", "of", "on", "or", "she", "that", "the", "their", "them", "they",
			"this", "to", "was", "we", "were", "what", "when", "where", "which", "who",
			"will", "with", "would", "you", "your",
			"about", "after", "all", "also", "am", "any", "because", "before",
			"being", "between", "both", "but", "can", "could", "did", "do", "does",
			"down", "each", "few", "further", "here", "him", "himself", "if", "into",
			"just", "me", "more", "most", "my", "no", "nor", "not", "now", "off",
			"only", "other", "our", "out", "over", "own", "same", "should", "so",
			"some", "such", "than", "then", "there", "these", "those", "through",
			"too", "under", "until", "up", "very", "while", "why", "yet",
		}
	}
}
