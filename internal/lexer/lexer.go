package lexer

// Normalize runs the full C1 pass over text: the backslash/line-continuation
// pass first, then comment elision, matching the ordering original_source
// uses (_preprocess_backslashes before _rm_clike_comments). Running
// comments first would leave the continuation line of a `//` comment
// ending in a backslash behind as code, instead of eliding it with the
// comment it was joined onto.
func Normalize(file, text string) (string, error) {
	stripped, err := StripBackslashes(file, text)
	if err != nil {
		return "", err
	}
	return ElideComments(stripped), nil
}
