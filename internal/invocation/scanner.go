// Package invocation implements SupDef's Invocation Scanner and Argument
// Splitter (spec.md §4.5-4.6, components C5 and C6): a literal-aware
// forward scan locating NAME(...) call sites for known macro names, and
// a top-level-comma splitter over the located argument span.
//
// Grounded on the teacher assembler's v0/kasm/preProcessing/macros.go
// (PreProcessingCollectMacroCalls scans for call-like sites) generalised
// from its ASCII/regex approach to spec.md's Unicode-aware, literal-aware
// character scan, which regexp cannot express without backtracking.
package invocation

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/keurnel/supdef/internal/supdeferrors"
)

// Raw is a located, unparsed invocation: the call's full span
// [Start, End) and the inner argument span [ArgStart, ArgEnd) (the bytes
// strictly between the parentheses).
type Raw struct {
	Name       string
	Start, End int
	ArgStart   int
	ArgEnd     int
}

var errUnterminatedParens = errors.New("invocation: no matching ')'")

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Next returns the first invocation of a name satisfying isKnown at or
// after byte offset from in text, or (nil, nil) if none remains.
func Next(file, text string, isKnown func(string) bool, from int) (*Raw, error) {
	n := len(text)
	inString, inChar := false, false
	i := from

	for i < n {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case r == '\\':
			if inString || inChar {
				i += size
				if i < n {
					_, size2 := utf8.DecodeRuneInString(text[i:])
					i += size2
				}
				continue
			}
			return nil, &supdeferrors.StrayBackslashError{File: file, Offset: i}

		case r == '"':
			if !inChar {
				inString = !inString
			}
			i += size

		case r == '\'':
			if !inString {
				inChar = !inChar
			}
			i += size

		case !inString && !inChar && isIdentStart(r):
			identStart := i
			j := i + size
			for j < n {
				r2, size2 := utf8.DecodeRuneInString(text[j:])
				if !isIdentPart(r2) {
					break
				}
				j += size2
			}
			name := text[identStart:j]
			i = j

			if !isKnown(name) {
				continue
			}

			k := i
			for k < n {
				r3, size3 := utf8.DecodeRuneInString(text[k:])
				if !unicode.IsSpace(r3) {
					break
				}
				k += size3
			}
			if k >= n {
				continue
			}
			r4, size4 := utf8.DecodeRuneInString(text[k:])
			if r4 != '(' {
				continue
			}

			argStart := k + size4
			argEnd, end, err := scanParens(text, argStart)
			if err != nil {
				if errors.Is(err, errUnterminatedParens) {
					return nil, &supdeferrors.UnterminatedInvocationError{Name: name}
				}
				return nil, err
			}
			return &Raw{Name: name, Start: identStart, End: end, ArgStart: argStart, ArgEnd: argEnd}, nil

		default:
			i += size
		}
	}

	return nil, nil
}

// scanParens scans forward from argStart (just past the opening '(')
// for the matching top-level ')', counting nested parens and respecting
// string/char literals. Returns argEnd (index of the matching ')') and
// end (one past it).
func scanParens(text string, argStart int) (argEnd, end int, err error) {
	n := len(text)
	depth := 1
	inString, inChar := false, false
	i := argStart

	for i < n {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case r == '\\':
			if inString || inChar {
				i += size
				if i < n {
					_, size2 := utf8.DecodeRuneInString(text[i:])
					i += size2
				}
				continue
			}
			return 0, 0, &supdeferrors.StrayBackslashError{Offset: i}

		case r == '"':
			if !inChar {
				inString = !inString
			}
			i += size

		case r == '\'':
			if !inString {
				inChar = !inChar
			}
			i += size

		case r == '(' && !inString && !inChar:
			depth++
			i += size

		case r == ')' && !inString && !inChar:
			depth--
			if depth == 0 {
				return i, i + size, nil
			}
			i += size

		default:
			i += size
		}
	}

	return 0, 0, errUnterminatedParens
}
