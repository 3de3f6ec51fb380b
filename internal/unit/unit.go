// Package unit implements SupDef's InputUnit data model and the Import
// Resolver (spec.md §4.3, component C3): one InputUnit per source file,
// linked into a tree (diamond-deduplicated, cycle-rejecting) by
// #pragma supdef import directives.
//
// Grounded on the teacher assembler's v0/kasm/filesystem package
// (PersistedFile/FileInMemory) for the unit-as-tracked-file shape, and
// v0/kasm/preProcessing/includes.go's HandleIncludes for the ordered
// search-path resolution and multi-file dedup strategy.
package unit

import (
	"os"
	"path/filepath"

	"github.com/keurnel/supdef/internal/lexer"
	"github.com/keurnel/supdef/internal/linetrack"
	"github.com/keurnel/supdef/internal/pragma"
)

// osStat is indirected for test doubles, matching the teacher's
// OsStat/OsReadFile convention in internal/lineMap/source.go.
var osStat = os.Stat

// InputUnit is one source file after normalisation and pragma scanning,
// linked to the child units it imports.
type InputUnit struct {
	// Path is the canonical, absolute path of the source file.
	Path string
	// Text is the residual document: normalised, with pragma blocks
	// blanked out (see pragma.Scan), ready for invocation scanning.
	Text string
	// Pragmas holds the Define/Runnable/Import pragmas declared directly
	// in this unit, in source order.
	Pragmas []pragma.Pragma
	// Children holds the imported units, in import-declaration order.
	Children []*InputUnit
	// Tracker maps lines of Text back to their origin in the on-disk file.
	Tracker *linetrack.Tracker
}

// normalize runs C1 and C2 over the unit's on-disk content, recording
// each stage in the tracker for later origin-tracing.
func normalize(path string) (text string, pragmas []pragma.Pragma, tracker *linetrack.Tracker, err error) {
	tr, err := linetrack.Track(path)
	if err != nil {
		return "", nil, nil, err
	}

	normalised, err := lexer.Normalize(path, tr.Source())
	if err != nil {
		return "", nil, nil, err
	}
	tr.Snapshot("normalise", normalised)

	residual, pragmas, err := pragma.Scan(path, normalised)
	if err != nil {
		return "", nil, nil, err
	}
	tr.Snapshot("pragma-scan", residual)

	return residual, pragmas, tr, nil
}

// isRegularFile reports whether path exists and is a regular file.
func isRegularFile(path string) bool {
	info, err := osStat(path)
	return err == nil && info.Mode().IsRegular()
}

// canonicalize resolves path to an absolute, cleaned form, used as the
// unit's identity throughout the import graph and registry.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
