package wordpool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "object with words",
			input: `{"words": ["cat", "dog"], "name": "english"}`,
			want:  []string{"cat", "dog"},
		},
		{
			name:  "plain list",
			input: `["a", "a", "bb"]`,
			want:  []string{"a", "a", "bb"},
		},
		{
			name:  "empty list",
			input: `[]`,
			want:  []string{},
		},
		{
			name:  "non-string elements pass through",
			input: `[42, "x", null, true, {"a": 1}]`,
			want:  []string{"42", "x", "null", "true", `{"a":1}`},
		},
		{
			name:    "object without words",
			input:   `{"foo": 1}`,
			wantErr: ErrInvalidInputShape,
		},
		{
			name:    "words is not a list",
			input:   `{"words": "cat dog"}`,
			wantErr: ErrInvalidInputShape,
		},
		{
			name:    "scalar document",
			input:   `"cat"`,
			wantErr: ErrInvalidInputShape,
		},
		{
			name:    "null document",
			input:   `null`,
			wantErr: ErrInvalidInputShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractWords([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractWords_SyntaxErrorIsNotShapeError(t *testing.T) {
	_, err := ExtractWords([]byte(`{"words": [`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInputShape)
}

func TestExtractWords_NonStringMatchesItsText(t *testing.T) {
	words, err := ExtractWords([]byte(`{"words": [42, "42", true, "true"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"42", "42", "true", "true"}, words)

	// The number and the string are the same word once grouped.
	p := Group(words)
	assert.Equal(t, []string{"42"}, p.Words(2))
	assert.Equal(t, []string{"true"}, p.Words(4))
	assert.Equal(t, 2, p.Total())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.json"))
		require.ErrorIs(t, err, ErrMissingInput)
		assert.Contains(t, err.Error(), "nope.json")
	})

	t.Run("present", func(t *testing.T) {
		path := filepath.Join(dir, "words.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"words":["über","at"]}`), 0644))

		words, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"über", "at"}, words)
	})
}
