// Package linetrack maps lines in a SupDef input unit's current text back
// to their line number in the original, on-disk source, across lexical
// normalisation, pragma scanning, and macro expansion. It is adapted from
// the teacher assembler's internal/lineMap package (Source/Instance/
// Tracker/History), generalised from assembly pre-processing snapshots to
// SupDef's pipeline stages and backed by a real line-diff (via
// github.com/sergi/go-diff) instead of the teacher's unfinished
// placeholder diff computation.
package linetrack

import (
	"errors"
	"os"
)

var (
	osStat     = os.Stat
	osReadFile = os.ReadFile
)

// Source represents a validated, loaded source file. If a Source value
// exists, it is guaranteed to hold a valid path and its file content.
//
// Create a Source exclusively through LoadSource().
type Source struct {
	path    string
	content string
}

// LoadSource validates the path, reads the file, and returns a ready-to-use
// Source, or an error.
func LoadSource(path string) (Source, error) {
	info, err := osStat(path)
	if err != nil {
		return Source{}, err
	}
	if info.IsDir() {
		return Source{}, errors.New("linetrack: source path is a directory where a file is expected")
	}

	contentBytes, err := osReadFile(path)
	if err != nil {
		return Source{}, err
	}

	return Source{path: path, content: string(contentBytes)}, nil
}

// Path returns the file path of the source.
func (s Source) Path() string { return s.path }

// Content returns the loaded content of the source file.
func (s Source) Content() string { return s.content }
