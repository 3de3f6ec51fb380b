package linetrack

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineChange describes how one line in a snapshot relates to the previous
// snapshot: kept unchanged from a given origin line, or inserted with no
// origin in the prior snapshot.
type LineChange struct {
	Inserted bool
	Origin   int // 1-based line number in the previous snapshot, or -1 if Inserted.
}

// snapshot is one recorded version of a unit's text, plus the per-line
// mapping back to the previous snapshot.
type snapshot struct {
	text    string
	lines   []string
	origins []LineChange // origins[i] describes line i+1 of this snapshot.
	label   string
}

// Instance accumulates snapshots of a single unit's text as it passes
// through normalisation, pragma scanning, and expansion, and can trace a
// line in the latest snapshot back to its line number in the very first
// (on-disk) snapshot.
type Instance struct {
	snapshots []snapshot
}

// New creates an Instance with the given initial text as its first
// snapshot (label "source").
func New(initialText string) *Instance {
	i := &Instance{}
	i.appendInitial(initialText)
	return i
}

func (i *Instance) appendInitial(text string) {
	lines := splitLines(text)
	origins := make([]LineChange, len(lines))
	for idx := range origins {
		origins[idx] = LineChange{Origin: idx + 1}
	}
	i.snapshots = append(i.snapshots, snapshot{text: text, lines: lines, origins: origins, label: "source"})
}

// Update records a new snapshot labelled by stage, computing its per-line
// correspondence to the immediately preceding snapshot via a line-level
// diff.
func (i *Instance) Update(stage, newText string) {
	prev := i.snapshots[len(i.snapshots)-1]
	if prev.text == newText {
		// No-op pass: same lines, same origins, relabelled as a no-op for
		// this stage so History() still shows it happened.
		i.snapshots = append(i.snapshots, snapshot{text: newText, lines: prev.lines, origins: prev.origins, label: stage})
		return
	}

	origins := diffOrigins(prev.lines, splitLines(newText))
	i.snapshots = append(i.snapshots, snapshot{text: newText, lines: splitLines(newText), origins: origins, label: stage})
}

// diffOrigins computes, for each line of newLines, whether it corresponds
// to a line in oldLines (and which one) or was inserted.
func diffOrigins(oldLines, newLines []string) []LineChange {
	dmp := diffmatchpatch.New()
	oldJoined := strings.Join(oldLines, "\n")
	newJoined := strings.Join(newLines, "\n")
	a, b, _ := dmp.DiffLinesToChars(oldJoined, newJoined)
	diffs := dmp.DiffMain(a, b, false)

	origins := make([]LineChange, 0, len(newLines))
	oldIdx := 0
	for _, d := range diffs {
		for range d.Text {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldIdx++
				origins = append(origins, LineChange{Origin: oldIdx})
			case diffmatchpatch.DiffDelete:
				oldIdx++
			case diffmatchpatch.DiffInsert:
				origins = append(origins, LineChange{Inserted: true, Origin: -1})
			}
		}
	}
	return origins
}

// Origin traces lineNumber (1-based, in the latest snapshot) back through
// every recorded snapshot to the original on-disk line number. Returns -1
// if the line was inserted at some point and therefore has no origin.
func (i *Instance) Origin(lineNumber int) int {
	current := lineNumber
	for s := len(i.snapshots) - 1; s > 0; s-- {
		origins := i.snapshots[s].origins
		if current < 1 || current > len(origins) {
			return -1
		}
		change := origins[current-1]
		if change.Inserted {
			return -1
		}
		current = change.Origin
	}
	return current
}

// History returns, for lineNumber in the latest snapshot, the stage labels
// it passed through, oldest first. The first label carries an
// ": <inserted>" suffix when the line was inserted at that stage.
func (i *Instance) History(lineNumber int) []string {
	var hist []string
	current := lineNumber
	for s := len(i.snapshots) - 1; s >= 0; s-- {
		label := i.snapshots[s].label
		if current < 1 || current > len(i.snapshots[s].origins) {
			hist = append([]string{label + ": <inserted>"}, hist...)
			return hist
		}
		change := i.snapshots[s].origins[current-1]
		if change.Inserted {
			hist = append([]string{label + ": <inserted>"}, hist...)
			return hist
		}
		hist = append([]string{label}, hist...)
		current = change.Origin
	}
	return hist
}

// Value returns the latest snapshot's text.
func (i *Instance) Value() string {
	return i.snapshots[len(i.snapshots)-1].text
}

// Original returns the very first recorded snapshot's text.
func (i *Instance) Original() string {
	return i.snapshots[0].text
}

// Lines returns the latest snapshot's lines.
func (i *Instance) Lines() []string {
	return i.snapshots[len(i.snapshots)-1].lines
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
