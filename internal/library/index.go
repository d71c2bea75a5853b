package library

import (
	"path/filepath"
	"strings"
)

// Index maps filename stems to the local files sharing that stem. All path
// storage lives in a single arena; candidate lists hold arena offsets so no
// path string is ever duplicated. The index is read-only after Build.
type Index struct {
	paths  []string
	byStem map[string][]int
}

// Build constructs an index from a flat list of discovered music file paths.
// Files without a usable stem are skipped. Candidate order within a stem
// preserves input order; tie-breaking in the matcher depends on it.
func Build(paths []string) *Index {
	ix := &Index{
		paths:  make([]string, 0, len(paths)),
		byStem: make(map[string][]int),
	}
	for _, path := range paths {
		stem := Stem(path)
		if stem == "" {
			continue
		}
		offset := len(ix.paths)
		ix.paths = append(ix.paths, path)
		ix.byStem[stem] = append(ix.byStem[stem], offset)
	}
	return ix
}

// Candidates returns the arena offsets of all files sharing stem, in insertion
// order. The returned slice is owned by the index and must not be modified.
func (ix *Index) Candidates(stem string) []int {
	return ix.byStem[stem]
}

// Path returns the arena-backed path at the given offset.
func (ix *Index) Path(offset int) string {
	return ix.paths[offset]
}

// Len reports the number of indexed files.
func (ix *Index) Len() int {
	return len(ix.paths)
}

// Stem returns the filename of path with its final extension removed, or ""
// when path has no usable filename.
func Stem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Extension returns the final extension of path including the leading dot, or
// "" when there is none.
func Extension(path string) string {
	return filepath.Ext(path)
}
