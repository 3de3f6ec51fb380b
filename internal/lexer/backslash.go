// Package lexer implements SupDef's lexical pre-normaliser (spec.md §4.1,
// component C1): backslash/line-continuation handling followed by
// comment elision, both aware of single- and double-quoted literals.
//
// Grounded on the teacher assembler's internal/asm/pre_processing.go
// (character-class-aware line handling) and on original_source's
// _preprocess_backslashes/_rm_clike_comments, which this package
// reproduces with a manual character walk for the backslash pass and Go's
// regexp package standing in for Python's re for comment elision.
package lexer

import "github.com/keurnel/supdef/internal/supdeferrors"

// StripBackslashes elides line-continuation backslashes outside of string
// and character literals, and passes backslash-escapes inside literals
// through unchanged. See spec.md §4.1 "Backslash pass".
func StripBackslashes(file, text string) (string, error) {
	var out []byte
	n := len(text)
	inString := false
	inChar := false

	for i := 0; i < n; {
		c := text[i]
		switch {
		case c == '\\':
			if inString || inChar {
				if i+1 >= n {
					return "", &supdeferrors.UnterminatedLiteralError{File: file, Offset: i}
				}
				out = append(out, text[i], text[i+1])
				i += 2
				continue
			}
			if i+1 < n && text[i+1] == '\n' {
				i += 2
				continue
			}
			return "", &supdeferrors.StrayBackslashError{File: file, Offset: i}
		case c == '"':
			if !inChar {
				inString = !inString
			}
			out = append(out, c)
			i++
		case c == '\'':
			if !inString {
				inChar = !inChar
			}
			out = append(out, c)
			i++
		default:
			out = append(out, c)
			i++
		}
	}

	return string(out), nil
}
