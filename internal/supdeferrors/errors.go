// Package supdeferrors defines the typed error taxonomy a SupDef pipeline
// can fail with, so callers can distinguish categories with errors.As
// instead of matching on message text.
package supdeferrors

import "fmt"

// UnterminatedLiteralError is raised by the lexical normaliser when a
// backslash inside a string or character literal is the last character of
// the file, leaving its escape with no following character.
type UnterminatedLiteralError struct {
	File   string
	Offset int
}

func (e *UnterminatedLiteralError) Error() string {
	return fmt.Sprintf("%s:%d: unterminated string or character literal", e.File, e.Offset)
}

// StrayBackslashError is raised when a backslash appears outside a literal
// and is not immediately followed by a newline (line continuation).
type StrayBackslashError struct {
	File   string
	Offset int
}

func (e *StrayBackslashError) Error() string {
	return fmt.Sprintf("%s:%d: stray backslash outside of a string or character literal", e.File, e.Offset)
}

// BadPragmaError covers malformed pragma syntax: unknown options,
// duplicate language/op selectors, or a begin without a matching end.
type BadPragmaError struct {
	File   string
	Line   int
	Reason string
}

func (e *BadPragmaError) Error() string {
	return fmt.Sprintf("%s:%d: bad pragma: %s", e.File, e.Line, e.Reason)
}

// NotFoundError is raised by the import resolver when no candidate file
// exists for an imported path.
type NotFoundError struct {
	From string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: import not found: %s", e.From, e.Path)
}

// AmbiguousError is raised by the import resolver when more than one
// search-path candidate exists for an imported path.
type AmbiguousError struct {
	From       string
	Path       string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s: import %q is ambiguous across %d search-path candidates", e.From, e.Path, len(e.Candidates))
}

// CycleError is raised by the import resolver when resolving an import
// would revisit a unit already on the current resolution stack.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	s := ""
	for i, p := range e.Path {
		if i > 0 {
			s += " -> "
		}
		s += p
	}
	return fmt.Sprintf("import cycle detected: %s", s)
}

// UnknownMacroError is raised when an invocation names a macro absent
// from the registry.
type UnknownMacroError struct {
	Name string
}

func (e *UnknownMacroError) Error() string {
	return fmt.Sprintf("unknown macro: %s", e.Name)
}

// UnterminatedInvocationError is raised when an invocation's argument list
// never finds a matching closing parenthesis.
type UnterminatedInvocationError struct {
	Name string
}

func (e *UnterminatedInvocationError) Error() string {
	return fmt.Sprintf("unterminated invocation of %s: no matching ')'", e.Name)
}

// CompileFailedError is raised when a runnable macro's compile step exits
// non-zero and the macro's op is not trycompile.
type CompileFailedError struct {
	Macro string
	Err   error
}

func (e *CompileFailedError) Error() string {
	return fmt.Sprintf("runnable macro %s: compile failed: %v", e.Macro, e.Err)
}

func (e *CompileFailedError) Unwrap() error { return e.Err }

// ExecuteFailedError is raised when a runnable macro's compiled artifact
// cannot be executed at all (as opposed to exiting non-zero, which is a
// valid outcome captured by retcode/trycompile).
type ExecuteFailedError struct {
	Macro string
	Err   error
}

func (e *ExecuteFailedError) Error() string {
	return fmt.Sprintf("runnable macro %s: execute failed: %v", e.Macro, e.Err)
}

func (e *ExecuteFailedError) Unwrap() error { return e.Err }

// UnsupportedLanguageError is raised when a runnable macro names a
// language other than c/c++.
type UnsupportedLanguageError struct {
	Macro    string
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("runnable macro %s: unsupported language %q", e.Macro, e.Language)
}
