package wordpool

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrMissingInput is returned when the input path does not exist.
	ErrMissingInput = errors.New("input not found")

	// ErrInvalidInputShape is returned when the input JSON is neither an
	// object with a "words" list nor a list.
	ErrInvalidInputShape = errors.New("input JSON must be an object with a top-level 'words' list, or a list of words")
)

// LoadFile reads a words file from disk and extracts its word list.
func LoadFile(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ExtractWords(data)
}

// ExtractWords parses a JSON document and returns its words.
//
// Accepted shapes are {"words": [...], ...} and [...]. Other keys of the
// object are ignored. String elements are returned as-is; any other element
// is returned as its compact JSON text, uninterpreted.
func ExtractWords(data []byte) ([]string, error) {
	var root json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	var list []json.RawMessage
	switch firstByte(root) {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(root, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse input JSON: %w", err)
		}
		raw, ok := obj["words"]
		if !ok || firstByte(raw) != '[' {
			return nil, ErrInvalidInputShape
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("failed to parse words list: %w", err)
		}
	case '[':
		if err := json.Unmarshal(root, &list); err != nil {
			return nil, fmt.Errorf("failed to parse words list: %w", err)
		}
	default:
		return nil, ErrInvalidInputShape
	}

	words := make([]string, 0, len(list))
	for i, raw := range list {
		w, err := elementText(raw)
		if err != nil {
			return nil, fmt.Errorf("words[%d]: %w", i, err)
		}
		words = append(words, w)
	}
	return words, nil
}

func elementText(raw json.RawMessage) (string, error) {
	if firstByte(raw) == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func firstByte(b []byte) byte {
	b = bytes.TrimLeft(b, " \t\r\n")
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
