package scss

import "strings"

type sanitizeState int

const (
	stateInitial sanitizeState = iota
	stateSingleQuote
	stateDoubleQuote
	stateURL
	stateBlockComment
	stateInlineComment
)

// SanitizeInlineComments returns a variant of text in which every quote
// character inside a "//" comment is replaced by a space. The output always
// has the same length as the input, so positions computed against either
// variant agree. A quote left inside an inline comment would otherwise be
// read by the tokenizer as opening a string that swallows the following
// lines and corrupts its line/column bookkeeping; the original text is kept
// by the caller to recover comments verbatim later.
//
// A raw newline reached inside an open string or url() context means the
// input is already malformed in a way this workaround does not cover; the
// text is returned unchanged.
func SanitizeInlineComments(text string) string {
	state := stateInitial
	returnState := stateInitial
	commentStart := 0
	containsQuote := false
	var ranges [][2]int

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch state {
		case stateInitial:
			switch {
			case c == '\'':
				state = stateSingleQuote
			case c == '"':
				state = stateDoubleQuote
			case (c == 'u' || c == 'U') && i+4 <= len(text) && strings.EqualFold(text[i:i+4], "url("):
				state = stateURL
				i += 3
			case c == '*' && i > 0 && text[i-1] == '/':
				state = stateBlockComment
			case c == '/' && i > 0 && text[i-1] == '/':
				state = stateInlineComment
				commentStart = i - 1
			}

		case stateSingleQuote:
			switch {
			case c == '\'' && text[i-1] != '\\':
				state = returnState
				returnState = stateInitial
			case c == '\n' || c == '\r':
				return text
			}

		case stateDoubleQuote:
			switch {
			case c == '"' && text[i-1] != '\\':
				state = returnState
				returnState = stateInitial
			case c == '\n' || c == '\r':
				return text
			}

		case stateURL:
			switch c {
			case ')':
				state = stateInitial
			case '\n', '\r':
				return text
			case '\'':
				state = stateSingleQuote
				returnState = stateURL
			case '"':
				state = stateDoubleQuote
				returnState = stateURL
			}

		case stateBlockComment:
			if c == '/' && text[i-1] == '*' {
				state = stateInitial
			}

		case stateInlineComment:
			switch c {
			case '\'', '"':
				containsQuote = true
			case '\n', '\r':
				if containsQuote {
					ranges = append(ranges, [2]int{commentStart, i})
				}
				state = stateInitial
				containsQuote = false
			}
		}
	}
	// End of text closes an open inline comment the same way a line
	// terminator does.
	if state == stateInlineComment && containsQuote {
		ranges = append(ranges, [2]int{commentStart, len(text)})
	}
	if len(ranges) == 0 {
		return text
	}

	// Ranges are non-overlapping and in scan order, so a single buffer pass
	// applies them all without disturbing indices.
	buf := []byte(text)
	for _, r := range ranges {
		for i := r[0]; i < r[1]; i++ {
			if buf[i] == '\'' || buf[i] == '"' {
				buf[i] = ' '
			}
		}
	}
	return string(buf)
}
