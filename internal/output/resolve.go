// Package output decides where word pools are written and serializes them.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Format is the serialization of written pools.
type Format string

const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatTXT}

// ErrUnknownFormat is returned for a format other than json or txt.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: json, txt)", ErrUnknownFormat, s)
}

// Mode selects one combined artifact or one artifact per length.
type Mode int

const (
	Combined Mode = iota
	Split
)

func (m Mode) String() string {
	switch m {
	case Combined:
		return "combined"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	// DefaultDirName is the split directory created next to the input.
	DefaultDirName = "word_pools"
	// CombinedBaseName is the combined file name used inside directories.
	CombinedBaseName = "word_pools"
)

// Target is a resolved output location. Path is a file for Combined and a
// directory for Split.
type Target struct {
	Mode   Mode
	Path   string
	Format Format
}

// Options are the user-facing knobs that decide the Target.
type Options struct {
	Input  string // input file, used to derive defaults
	Output string // optional file or directory
	Split  bool
	Format Format
	// OutputIsDir forces Output to be treated as a directory even when it
	// looks like a file name.
	OutputIsDir bool
}

// Resolve applies the output decision table:
//
//  1. no output, split:         Split at <input dir>/word_pools
//  2. no output, not split:     Combined at <input dir>/word_pools.json (any format)
//  3. output with a suffix, not split: Combined at output
//  4. otherwise output is a directory: Split at it, or Combined at
//     <output>/word_pools.json|.txt by format
func Resolve(opts Options) (Target, error) {
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return Target{}, err
	}

	if opts.Output == "" {
		inputDir := filepath.Dir(opts.Input)
		if opts.Split {
			return Target{Mode: Split, Path: filepath.Join(inputDir, DefaultDirName), Format: opts.Format}, nil
		}
		return Target{Mode: Combined, Path: filepath.Join(inputDir, CombinedBaseName+".json"), Format: opts.Format}, nil
	}

	if !opts.Split && !opts.OutputIsDir && HasSuffix(opts.Output) {
		return Target{Mode: Combined, Path: opts.Output, Format: opts.Format}, nil
	}

	dir := opts.Output
	if opts.Split {
		return Target{Mode: Split, Path: dir, Format: opts.Format}, nil
	}
	return Target{Mode: Combined, Path: filepath.Join(dir, CombinedBaseName+"."+string(opts.Format)), Format: opts.Format}, nil
}

// HasSuffix reports whether the last element of p carries a file extension.
// Trailing separators are ignored, dotfiles such as ".hidden" have no
// extension, and neither does a name ending in a bare dot.
func HasSuffix(p string) bool {
	name := filepath.Base(filepath.Clean(p))
	ext := filepath.Ext(name)
	return ext != "" && ext != "." && ext != name
}
