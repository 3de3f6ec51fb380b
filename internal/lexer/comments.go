package lexer

import "regexp"

// commentOrLiteral matches, in order, a single-quoted literal, a
// double-quoted literal, a line comment, or a block comment. Literal
// forms are listed first: at any given starting position at most one
// alternative can match (each begins with a distinct prefix: ', ", //
// or /*), but
// listing literals first keeps the pattern's intent explicit, per
// spec.md §4.1's "literal forms must be matched before comment forms".
//
// The (?s) flag makes '.' match newlines (needed for block comments
// spanning lines); (?m) makes '$' match end-of-line (needed to bound
// a line comment without consuming the trailing newline).
var commentOrLiteral = regexp.MustCompile(`(?sm)'(?:\\.|[^\\'])*'|"(?:\\.|[^\\"])*"|//.*?$|/\*.*?\*/`)

// ElideComments removes C/C++-style line and block comments, replacing
// each with a single space, while leaving the contents of single- and
// double-quoted literals untouched. See spec.md §4.1 "Comment elision",
// grounded on original_source's _rm_clike_comments.
func ElideComments(text string) string {
	return commentOrLiteral.ReplaceAllStringFunc(text, func(match string) string {
		if len(match) > 0 && match[0] == '/' {
			return " "
		}
		return match
	})
}
