package tweets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStopwords(t *testing.T) {
	set, err := LoadStopwords(strings.NewReader("is\r\na\n\n  the\nIs\n"))
	require.NoError(t, err)

	assert.True(t, set.Contains("is"))
	assert.True(t, set.Contains("a"))
	assert.True(t, set.Contains("Is"))
	// only the trailing carriage return is stripped
	assert.True(t, set.Contains("  the"))
	assert.False(t, set.Contains("the"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, []string{"  the", "Is", "a", "is"}, set.Words())
}

func TestLoadStopwordsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stopwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("what\nsuch\n"), 0o600))

	set, err := LoadStopwordsFile(path)
	require.NoError(t, err)
	assert.Len(t, set, 2)

	_, err = LoadStopwordsFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResourceUnavailable))
	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "open", rerr.Op)
}

func TestDefaultStopwords(t *testing.T) {
	tests := []struct {
		language Language
		expected []string
	}{
		{English, []string{"the", "and", "of"}},
		{Spanish, []string{"el", "la", "de"}},
		{French, []string{"le", "de", "et"}},
		{German, []string{"der", "die", "und"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.language), func(t *testing.T) {
			set, err := DefaultStopwords(tt.language)
			require.NoError(t, err)
			for _, word := range tt.expected {
				assert.True(t, set.Contains(word), "expected %q in %s stopwords", word, tt.language)
			}
		})
	}
}

func TestDefaultStopwordsUnsupported(t *testing.T) {
	_, err := DefaultStopwords(Language("xx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
	assert.False(t, IsSupportedLanguage("xx"))
	assert.True(t, IsSupportedLanguage(English))
}
