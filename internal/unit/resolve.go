package unit

import (
	"path/filepath"

	"github.com/keurnel/supdef/internal/supdeferrors"
)

// resolveImport implements spec.md §4.3's three-step search:
//  1. If search paths are configured, try each "<searchpath>/<path>" and
//     collect existing regular files.
//  2. If exactly one candidate exists, use it.
//  3. Otherwise (zero or more than one), fall back to
//     "<dir(fromPath)>/<path>"; use it if it exists, else fail with
//     NotFound (zero search-path candidates) or Ambiguous (more than
//     one), matching whichever condition sent us to the fallback.
func resolveImport(fromPath, importedPath string, searchPaths []string) (string, error) {
	var matches []string
	for _, sp := range searchPaths {
		candidate := filepath.Join(sp, importedPath)
		if isRegularFile(candidate) {
			matches = append(matches, candidate)
		}
	}

	if len(matches) == 1 {
		return matches[0], nil
	}

	fallback := filepath.Join(filepath.Dir(fromPath), importedPath)
	if isRegularFile(fallback) {
		return fallback, nil
	}

	if len(matches) == 0 {
		return "", &supdeferrors.NotFoundError{From: fromPath, Path: importedPath}
	}
	return "", &supdeferrors.AmbiguousError{From: fromPath, Path: importedPath, Candidates: matches}
}
