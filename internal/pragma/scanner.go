package pragma

import (
	"regexp"
	"strings"

	"github.com/keurnel/supdef/internal/supdeferrors"
)

var (
	importRe        = regexp.MustCompile(`^\s*#\s*pragma\s+supdef\s+import\s*<(.+)>\s*$`)
	defineStartRe   = regexp.MustCompile(`^\s*#\s*pragma\s+supdef\s+begin\s+(\w+)\s*$`)
	runnableStartRe = regexp.MustCompile(`^\s*#\s*pragma\s+supdef\s+runnable\s+(\S.*?)\s+begin\s+(\w+)\s*$`)
	endRe           = regexp.MustCompile(`^\s*#\s*pragma\s+supdef\s+end\s*$`)
)

var langTokens = map[string]Language{
	"c": LangC, "C": LangC,
	"cpp": LangCPP, "CPP": LangCPP,
	"cxx": LangCPP, "CXX": LangCPP,
}

var opTokens = map[string]Op{
	"stdout": OpStdout, "STDOUT": OpStdout,
	"stderr": OpStderr, "STDERR": OpStderr,
	"retcode": OpRetcode, "RETCODE": OpRetcode,
	"trycompile": OpTrycompile, "TRYCOMPILE": OpTrycompile,
}

// Scan performs the C2 pass over normalised text, which it splits into
// lines on '\n'. It returns the residual
// document — pragma-block lines blanked out but line count preserved,
// per spec.md §6 "pragma lines are emitted as empty lines" — and the
// ordered list of Pragmas declared in this unit (in source order).
func Scan(file, text string) (residual string, pragmas []Pragma, err error) {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	copy(out, lines)

	i := 0
	for i < len(lines) {
		line := lines[i]

		if m := importRe.FindStringSubmatch(line); m != nil {
			pragmas = append(pragmas, Pragma{Kind: Import, Name: m[1], Line: i + 1})
			out[i] = ""
			i++
			continue
		}

		if m := defineStartRe.FindStringSubmatch(line); m != nil {
			body, end, berr := collectBody(file, lines, i+1)
			if berr != nil {
				return "", nil, berr
			}
			pragmas = append(pragmas, Pragma{Kind: Define, Name: m[1], Body: body, Line: i + 1})
			blank(out, i, end)
			i = end + 1
			continue
		}

		if m := runnableStartRe.FindStringSubmatch(line); m != nil {
			lang, op, operr := parseRunnableOpts(file, i+1, m[1])
			if operr != nil {
				return "", nil, operr
			}
			body, end, berr := collectBody(file, lines, i+1)
			if berr != nil {
				return "", nil, berr
			}
			pragmas = append(pragmas, Pragma{
				Kind: Runnable, Name: m[2], Body: body,
				Language: lang, Op: op, Line: i + 1,
			})
			blank(out, i, end)
			i = end + 1
			continue
		}

		if endRe.MatchString(line) {
			return "", nil, &supdeferrors.BadPragmaError{
				File: file, Line: i + 1, Reason: "end without matching begin",
			}
		}

		i++
	}

	return strings.Join(out, "\n"), pragmas, nil
}

// collectBody scans forward from startLine (the line after "begin ..."),
// concatenating every intermediate line into the body with its line break,
// until the first matching "end" pragma. Nested begin/end blocks are not
// recognised — the first "end" closes the current block, per spec.md §4.2.
// Returns the body text and the 0-based index of the "end" line.
func collectBody(file string, lines []string, startLine int) (string, int, error) {
	var sb strings.Builder
	for j := startLine; j < len(lines); j++ {
		if endRe.MatchString(lines[j]) {
			return strings.TrimSpace(sb.String()), j, nil
		}
		sb.WriteString(lines[j])
		sb.WriteString("\n")
	}
	return "", 0, &supdeferrors.BadPragmaError{
		File: file, Line: startLine, Reason: "begin without matching end",
	}
}

func blank(out []string, start, end int) {
	for i := start; i <= end; i++ {
		out[i] = ""
	}
}

// parseRunnableOpts validates the whitespace-separated option token list
// of a runnable pragma, rejecting unknown tokens and duplicate language
// or duplicate op selectors. Defaults are LangC / OpStdout when the
// corresponding token class is absent.
func parseRunnableOpts(file string, line int, opts string) (Language, Op, error) {
	lang := LangC
	op := OpStdout
	haveLang := false
	haveOp := false

	for _, tok := range strings.Fields(opts) {
		if l, ok := langTokens[tok]; ok {
			if haveLang {
				return "", "", &supdeferrors.BadPragmaError{
					File: file, Line: line, Reason: "duplicate language option: " + tok,
				}
			}
			lang = l
			haveLang = true
			continue
		}
		if o, ok := opTokens[tok]; ok {
			if haveOp {
				return "", "", &supdeferrors.BadPragmaError{
					File: file, Line: line, Reason: "duplicate op option: " + tok,
				}
			}
			op = o
			haveOp = true
			continue
		}
		return "", "", &supdeferrors.BadPragmaError{
			File: file, Line: line, Reason: "unknown runnable option: " + tok,
		}
	}

	return lang, op, nil
}
