package debugtrace

import (
	"sync"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Context accumulates diagnostic entries as the preprocessing pipeline
// progresses. It is safe for concurrent writes.
//
// Create a Context exclusively through New(). It is passed through the
// pipeline by reference — every stage records entries into the same
// context.
type Context struct {
	filePath string
	stage    string
	entries  []*Entry
	mu       sync.Mutex
}

// New returns a *Context initialised with the root input unit's path, an
// empty entry list, and no active stage.
func New(filePath string) *Context {
	return &Context{filePath: filePath, entries: make([]*Entry, 0)}
}

// SetStage sets the current pipeline stage. Subsequent entries are tagged
// with this stage until it is changed again.
func (c *Context) SetStage(name string) {
	c.mu.Lock()
	c.stage = name
	c.mu.Unlock()
}

// Stage returns the current pipeline stage name.
func (c *Context) Stage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

func (c *Context) record(severity string, location Location, message string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{
		severity: severity,
		stage:    c.stage,
		message:  message,
		location: location,
	}
	c.entries = append(c.entries, entry)
	return entry
}

// Error records an entry with severity "error".
func (c *Context) Error(location Location, message string) *Entry {
	return c.record(SeverityError, location, message)
}

// Warning records an entry with severity "warning".
func (c *Context) Warning(location Location, message string) *Entry {
	return c.record(SeverityWarning, location, message)
}

// Info records an entry with severity "info".
func (c *Context) Info(location Location, message string) *Entry {
	return c.record(SeverityInfo, location, message)
}

// Trace records an entry with severity "trace".
func (c *Context) Trace(location Location, message string) *Entry {
	return c.record(SeverityTrace, location, message)
}

// TraceChange records a trace entry with a Diff of before/after,
// attached only when the stage actually changed the text — a no-op pass
// records nothing, keeping -d output focused on stages that did work.
func (c *Context) TraceChange(location Location, message, before, after string) *Entry {
	if before == after {
		return nil
	}
	e := c.Trace(location, message)
	e.WithDiff(Diff(before, after))
	return e
}

// Entries returns all recorded entries in insertion order.
func (c *Context) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*Entry, len(c.entries))
	copy(result, c.entries)
	return result
}

// Errors returns only entries with severity "error".
func (c *Context) Errors() []*Entry {
	return c.filter(SeverityError)
}

// Warnings returns only entries with severity "warning".
func (c *Context) Warnings() []*Entry {
	return c.filter(SeverityWarning)
}

// HasErrors returns true if at least one "error" entry exists.
func (c *Context) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the total number of entries.
func (c *Context) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// FilePath returns the root input unit's path.
func (c *Context) FilePath() string {
	return c.filePath
}

func (c *Context) filter(severity string) []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []*Entry
	for _, e := range c.entries {
		if e.severity == severity {
			result = append(result, e)
		}
	}
	return result
}

// Diff renders the change from before to after as diffmatchpatch's pretty
// text over a line-level diff: the merged text, with inserted and deleted
// lines marked by ANSI colour codes. It returns "" when before and after
// are equal.
func Diff(before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	return dmp.DiffPrettyText(diffs)
}
