package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wordpools/internal/wordpool"

	"go.uber.org/zap"
)

// Writer serializes pools to disk. Writes are not transactional: files
// written before a failure stay on disk.
type Writer struct {
	logger *zap.Logger
}

// NewWriter returns a Writer. A nil logger disables logging.
func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger}
}

// Write serializes pool at target and returns the paths written, in pool
// order.
func (w *Writer) Write(ctx context.Context, pool *wordpool.Pool, target Target) ([]string, error) {
	switch target.Mode {
	case Combined:
		if err := w.WriteCombined(pool, target.Path, target.Format); err != nil {
			return nil, err
		}
		return []string{target.Path}, nil
	case Split:
		return w.WriteSplit(ctx, pool, target.Path, target.Format)
	default:
		return nil, fmt.Errorf("unsupported output mode: %v", target.Mode)
	}
}

// WriteCombined writes every group into one file.
func (w *Writer) WriteCombined(pool *wordpool.Pool, path string, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var data []byte
	switch format {
	case FormatJSON:
		b, err := encodeJSON(pool)
		if err != nil {
			return fmt.Errorf("failed to encode pool: %w", err)
		}
		data = b
	case FormatTXT:
		data = encodeCombinedText(pool)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.logger.Debug("Wrote combined pool",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("groups", pool.Len()),
		zap.Int("words", pool.Total()))
	return nil
}

// WriteSplit writes one word_pool_<length> file per group into dir. The
// context is checked between files; on cancellation the files already
// written are left in place.
func (w *Writer) WriteSplit(ctx context.Context, pool *wordpool.Pool, dir string, format Format) ([]string, error) {
	if format != FormatJSON && format != FormatTXT {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, pool.Len())
	for _, n := range pool.Lengths() {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		words := pool.Words(n)
		path := filepath.Join(dir, SplitFileName(n, format))

		var data []byte
		if format == FormatJSON {
			b, err := encodeJSON(words)
			if err != nil {
				return written, fmt.Errorf("failed to encode group %d: %w", n, err)
			}
			data = b
		} else {
			data = []byte(strings.Join(words, "\n"))
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		w.logger.Debug("Wrote pool file", zap.String("path", path), zap.Int("length", n), zap.Int("words", len(words)))
		written = append(written, path)
	}
	return written, nil
}

// SplitFileName is the file name of the group for length n.
func SplitFileName(n int, format Format) string {
	return "word_pool_" + strconv.Itoa(n) + "." + string(format)
}

// encodeJSON pretty-prints v with a two-space indent, leaving non-ASCII
// and HTML characters unescaped and no trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeCombinedText(pool *wordpool.Pool) []byte {
	var buf bytes.Buffer
	for _, n := range pool.Lengths() {
		fmt.Fprintf(&buf, "# %d\n", n)
		for _, word := range pool.Words(n) {
			buf.WriteString(word)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}
