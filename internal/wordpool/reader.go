package wordpool

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadCombinedFile reads a combined JSON pool from disk.
func ReadCombinedFile(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}
	defer f.Close()

	p, err := ReadCombined(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ReadCombined parses a combined JSON pool, the format written for
// Combined+JSON output. It is lenient the way game-side loaders are: keys
// that are not integers, values that are not arrays and array elements that
// are not strings are skipped. Key order is preserved.
func ReadCombined(r io.Reader) (*Pool, error) {
	p := NewPool()
	if err := decodeCombined(json.NewDecoder(r), p, false); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeCombined walks the top-level object token by token so that key
// order survives decoding.
func decodeCombined(dec *json.Decoder, p *Pool, strict bool) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read pool: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		if strict {
			return fmt.Errorf("pool must be a JSON object")
		}
		return nil
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read pool key: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to read group %q: %w", key, err)
		}

		n, err := strconv.Atoi(key)
		if err != nil {
			if strict {
				return fmt.Errorf("pool key %q is not a length", key)
			}
			continue
		}

		var elems []json.RawMessage
		if firstByte(raw) != '[' || json.Unmarshal(raw, &elems) != nil {
			if strict {
				return fmt.Errorf("group %q is not an array", key)
			}
			continue
		}

		words := make([]string, 0, len(elems))
		for _, e := range elems {
			var s string
			if firstByte(e) != '"' || json.Unmarshal(e, &s) != nil {
				if strict {
					return fmt.Errorf("group %q holds a non-string word", key)
				}
				continue
			}
			words = append(words, s)
		}
		p.Set(n, words)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read pool end: %w", err)
	}
	return nil
}
