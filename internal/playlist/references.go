package playlist

import (
	"path/filepath"
	"strings"
)

// directiveMarker prefixes extended-format metadata lines, which carry no file
// references.
const directiveMarker = "#EXT"

// ExtractReferences parses playlist text into the ordered references it
// carries, one per content line. Directive lines are skipped; every other line
// is taken verbatim as a reference with its separators normalized to the host
// convention. No validation of whether a line looks like a path is performed.
func ExtractReferences(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		// A trailing newline does not start a new content line.
		lines = lines[:n-1]
	}

	var refs []string
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, directiveMarker) {
			continue
		}
		refs = append(refs, NormalizeSeparators(line))
	}
	return refs
}

// NormalizeSeparators translates both '/' and '\' in ref to the host's native
// path separator. References are never canonicalized against the filesystem.
func NormalizeSeparators(ref string) string {
	sep := string(filepath.Separator)
	ref = strings.ReplaceAll(ref, "\\", sep)
	return strings.ReplaceAll(ref, "/", sep)
}
