package matcher

import (
	"path/filepath"
	"strings"

	"playlink/internal/library"
)

// Resolve finds the local file best matching reference and returns its arena
// offset in ix. The reference must already be normalized to the host path
// separator. References lacking a stem or an extension never resolve, and a
// candidate whose stem differs from the reference's is never proposed.
func Resolve(ix *library.Index, reference string) (int, bool) {
	stem := library.Stem(reference)
	ext := library.Extension(reference)
	if stem == "" || ext == "" {
		return 0, false
	}

	refDirs := reverseDirComponents(reference)

	best := -1
	bestScore := 0
	bestExtMatches := false
	for _, offset := range ix.Candidates(stem) {
		candidate := ix.Path(offset)
		candidateExt := library.Extension(candidate)
		if candidateExt == "" {
			continue
		}
		score := matchingComponents(refDirs, reverseDirComponents(candidate))
		extMatches := candidateExt == ext
		switch {
		case best == -1 || score > bestScore:
			best, bestScore, bestExtMatches = offset, score, extMatches
		case score == bestScore && extMatches && !bestExtMatches:
			best, bestExtMatches = offset, true
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// matchingComponents returns the index of the first divergence between two
// reversed directory chains, counting from 0 at the immediate parent. A pure
// suffix overlap never diverges and keeps the zero default (see package doc).
func matchingComponents(a, b []string) int {
	limit := min(len(a), len(b))
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return 0
}

// reverseDirComponents splits the directory part of path into components
// ordered from the immediate parent outward toward the root.
func reverseDirComponents(path string) []string {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	parts := strings.Split(dir, string(filepath.Separator))
	components := make([]string, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" || parts[i] == "." {
			continue
		}
		components = append(components, parts[i])
	}
	return components
}
