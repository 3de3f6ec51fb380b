// Package substitute implements the positional $N substitution shared by
// SupDef's Define Substitutor and Runnable Evaluator (spec.md §4.8-4.9,
// components C8/C9 step 1): "perform positional substitution on the
// body exactly as C8".
//
// Grounded on original_source's sequential `.replace(f"${i}", arg)` loop
// (original_source/scripts/supdef.py:692-695,702-705) and on the
// teacher's v0/kasm/preProcessing/macros.go, which performs the
// analogous %N substitution via repeated strings.ReplaceAll.
package substitute

import (
	"strconv"
	"strings"
)

// Substitute replaces every occurrence of the literal substring "$N"
// (N a 1-based index, ascending) in body with the corresponding element
// of args, one index at a time and in increasing order — exactly the
// original's `.replace(f"${i}", arg)` loop, reproduced including its two
// surprising consequences: a later index's argument can itself contain
// text that a still-later index's replacement goes on to match (no
// cascading guard), and replacing "$1" as a substring also touches any
// "$10", "$11", ... occurrences still present in the body at that point.
// Indices beyond len(args) are left untouched.
func Substitute(body string, args []string) string {
	for i, arg := range args {
		body = strings.ReplaceAll(body, "$"+strconv.Itoa(i+1), arg)
	}
	return body
}
