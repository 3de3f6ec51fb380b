// Package pragma implements SupDef's pragma scanner (spec.md §4.2,
// component C2): line-oriented recognition of import/define/runnable
// pragma blocks and their bodies and options.
//
// Grounded on the teacher assembler's v0/kasm/preProcessing/macros.go and
// includes.go (precompiled per-line regexes, multi-pass body collection)
// and original_source's PRAGMA_*_REGEX family.
package pragma

// Kind discriminates the tagged variant of Pragma.
type Kind int

const (
	// Import names a path to resolve and splice macros from.
	Import Kind = iota
	// Define declares a positional-substitution text template.
	Define
	// Runnable declares a compile-and-execute code snippet.
	Runnable
)

func (k Kind) String() string {
	switch k {
	case Import:
		return "import"
	case Define:
		return "define"
	case Runnable:
		return "runnable"
	default:
		return "unknown"
	}
}

// Language is a Runnable pragma's source language.
type Language string

const (
	LangC   Language = "c"
	LangCPP Language = "c++"
)

// Op selects which channel of a Runnable macro's subprocess execution
// becomes the invocation's replacement text.
type Op string

const (
	OpStdout     Op = "stdout"
	OpStderr     Op = "stderr"
	OpRetcode    Op = "retcode"
	OpTrycompile Op = "trycompile"
)

// Pragma is the tagged variant described in spec.md §3: Import carries
// only Name (the searched path); Define carries Name and Body; Runnable
// carries Name, Body, Language and Op.
type Pragma struct {
	Kind     Kind
	Name     string
	Body     string
	Language Language
	Op       Op

	// Line is the 1-based line number, in the normalised text, of the
	// pragma's opening directive (import line, or "begin" line).
	Line int
}
