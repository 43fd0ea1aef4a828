package scss

// tokenType identifies the kind of a scanned token.
type tokenType int

const (
	tokEOF tokenType = iota
	tokSpace
	tokWord
	tokString
	tokComment // /* ... */
	tokInline  // // ...
	tokAtWord  // @name
	tokColon
	tokSemicolon
	tokOpenBrace
	tokCloseBrace
	tokOpenParen
	tokCloseParen
)

// token is a lexical item with its verbatim text and 1-based line/column
// positions. pos addresses the first byte, end the last byte. The scanner
// never reports byte offsets; offsets are derived later from positions.
type token struct {
	typ  tokenType
	text string
	pos  Position
	end  Position
}

// scanner splits stylesheet text into coarse tokens, tracking line/column
// as it goes. It is deliberately permissive: malformed input produces a
// best-effort token stream plus a recorded error.
type scanner struct {
	text string
	off  int
	line int
	col  int
	last Position // position of the most recently consumed byte
	err  *ParseError
}

func newScanner(text string) *scanner {
	return &scanner{text: text, line: 1, col: 1}
}

func (s *scanner) pos() Position { return Position{Line: s.line, Column: s.col} }

func (s *scanner) step() {
	s.last = s.pos()
	if s.text[s.off] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.off++
}

func (s *scanner) fail(pos Position, msg string) {
	if s.err == nil {
		s.err = &ParseError{Pos: pos, Msg: msg}
	}
}

func (s *scanner) tok(typ tokenType, startOff int, start Position) token {
	return token{typ: typ, text: s.text[startOff:s.off], pos: start, end: s.last}
}

func (s *scanner) scan() token {
	if s.off >= len(s.text) {
		return token{typ: tokEOF, pos: s.pos(), end: s.pos()}
	}
	start := s.pos()
	startOff := s.off
	c := s.text[s.off]
	switch {
	case isSpaceByte(c):
		for s.off < len(s.text) && isSpaceByte(s.text[s.off]) {
			s.step()
		}
		return s.tok(tokSpace, startOff, start)

	case c == '\'' || c == '"':
		s.step()
		for s.off < len(s.text) {
			b := s.text[s.off]
			if b == '\\' && s.off+1 < len(s.text) {
				s.step()
				s.step()
				continue
			}
			s.step()
			if b == c {
				return s.tok(tokString, startOff, start)
			}
		}
		s.fail(start, "unterminated string")
		return s.tok(tokString, startOff, start)

	case c == '/' && s.off+1 < len(s.text) && s.text[s.off+1] == '*':
		s.step()
		s.step()
		for s.off < len(s.text) {
			if s.text[s.off] == '*' && s.off+1 < len(s.text) && s.text[s.off+1] == '/' {
				s.step()
				s.step()
				return s.tok(tokComment, startOff, start)
			}
			s.step()
		}
		s.fail(start, "unterminated comment")
		return s.tok(tokComment, startOff, start)

	case c == '/' && s.off+1 < len(s.text) && s.text[s.off+1] == '/':
		for s.off < len(s.text) && s.text[s.off] != '\n' && s.text[s.off] != '\r' {
			s.step()
		}
		return s.tok(tokInline, startOff, start)

	case c == '@':
		s.step()
		for s.off < len(s.text) && isNameByte(s.text[s.off]) {
			s.step()
		}
		return s.tok(tokAtWord, startOff, start)

	case c == '{':
		s.step()
		return s.tok(tokOpenBrace, startOff, start)
	case c == '}':
		s.step()
		return s.tok(tokCloseBrace, startOff, start)
	case c == '(':
		s.step()
		return s.tok(tokOpenParen, startOff, start)
	case c == ')':
		s.step()
		return s.tok(tokCloseParen, startOff, start)
	case c == ':':
		s.step()
		return s.tok(tokColon, startOff, start)
	case c == ';':
		s.step()
		return s.tok(tokSemicolon, startOff, start)

	default:
		for s.off < len(s.text) {
			b := s.text[s.off]
			if isSpaceByte(b) || isDelimByte(b) {
				break
			}
			if b == '/' && s.off+1 < len(s.text) && (s.text[s.off+1] == '*' || s.text[s.off+1] == '/') {
				break
			}
			s.step()
		}
		return s.tok(tokWord, startOff, start)
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func isDelimByte(b byte) bool {
	switch b {
	case '{', '}', '(', ')', ':', ';', '\'', '"':
		return true
	}
	return false
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-' || b == '_'
}
