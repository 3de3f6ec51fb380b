package linetrack

// Tracker provides a simplified, high-level API for the most common
// workflow: load a source file, track it through pipeline stages, and
// trace lines back to their origin.
//
// Create a Tracker exclusively through Track() or TrackText(). If a Tracker exists, it is
// guaranteed to hold a valid, fully initialised Instance.
type Tracker struct {
	instance *Instance
	source   Source
}

// Track is the single entry point for the facade. It validates and reads
// the file at path, creates an Instance with the initial snapshot, and
// returns a ready-to-use *Tracker, or an error if the file cannot be
// loaded.
func Track(path string) (*Tracker, error) {
	src, err := LoadSource(path)
	if err != nil {
		return nil, err
	}
	return &Tracker{instance: New(src.Content()), source: src}, nil
}

// TrackText builds a Tracker directly from in-memory text, used for the
// import tree's non-root units and for tests that don't want to touch
// disk.
func TrackText(path, text string) *Tracker {
	return &Tracker{instance: New(text), source: Source{path: path, content: text}}
}

// Snapshot records a new version of the text after a pipeline stage.
func (t *Tracker) Snapshot(stage, text string) {
	t.instance.Update(stage, text)
}

// Origin traces a line in the latest text back to its original line
// number in the initial (on-disk) source. Returns -1 if the line was
// inserted during preprocessing.
func (t *Tracker) Origin(lineNumber int) int {
	return t.instance.Origin(lineNumber)
}

// History returns the chronological stage labels a line passed through.
func (t *Tracker) History(lineNumber int) []string {
	return t.instance.History(lineNumber)
}

// Source returns the current text.
func (t *Tracker) Source() string {
	return t.instance.Value()
}

// Original returns the first snapshot recorded for this unit: the raw,
// on-disk (or in-memory) text before any pipeline stage ran.
func (t *Tracker) Original() string {
	return t.instance.Original()
}

// Lines returns the lines of the current text.
func (t *Tracker) Lines() []string {
	return t.instance.Lines()
}

// FilePath returns the original file path passed to Track/TrackText.
func (t *Tracker) FilePath() string {
	return t.source.Path()
}
