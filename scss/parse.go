package scss

import "strings"

const spaceChars = " \t\r\n\f"

// Parse builds a stylesheet tree from text. The parser understands the
// SCSS-flavoured subset needed for source mapping: rules with nested
// blocks, at-rules with and without blocks, declarations with !important,
// and block and inline comments. It records line/column positions and raw
// formatting fragments only; byte offsets are attached separately by
// AnnotateOffsets.
//
// Parse is lenient about unclosed blocks at end of input: the open
// containers simply end up without an end position. Structural errors such
// as a declaration with no colon are reported as a *ParseError.
func Parse(text string) (*Node, error) {
	p := &parser{sc: newScanner(text)}
	root := &Node{Type: RootNode, Source: newSource(Position{Line: 1, Column: 1})}
	p.parseBlock(root, false)
	if p.err != nil {
		return nil, p.err
	}
	if p.sc.err != nil {
		return nil, p.sc.err
	}
	return root, nil
}

type parser struct {
	sc     *scanner
	peeked *token
	err    *ParseError
}

func (p *parser) next() token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	return p.sc.scan()
}

func (p *parser) unread(t token) { p.peeked = &t }

func (p *parser) fail(pos Position, msg string) {
	if p.err == nil {
		p.err = &ParseError{Pos: pos, Msg: msg}
	}
}

// parseBlock consumes the children of parent until the closing brace (when
// inBlock is set) or end of input. Reaching EOF inside a block is accepted;
// the container is left without an end position.
func (p *parser) parseBlock(parent *Node, inBlock bool) {
	before := ""
	for {
		t := p.next()
		switch t.typ {
		case tokEOF:
			parent.Raws.After = before
			return

		case tokSpace, tokSemicolon:
			// Stray semicolons are kept as formatting so printing stays
			// byte-exact.
			before += t.text

		case tokCloseBrace:
			if !inBlock {
				p.fail(t.pos, "unexpected '}'")
				before += t.text
				continue
			}
			parent.Raws.After = before
			parent.Source.End = t.end
			return

		case tokComment:
			n := &Node{Type: CommentNode, Text: innerComment(t.text), Source: newSource(t.pos)}
			n.Source.End = t.end
			n.Raws.Before = before
			before = ""
			parent.Nodes = append(parent.Nodes, n)

		case tokInline:
			// Inline comments get no end position; the annotator bounds
			// them by the physical line.
			n := &Node{Type: CommentNode, Text: t.text[2:], Inline: true, Source: newSource(t.pos)}
			n.Raws.Before = before
			before = ""
			parent.Nodes = append(parent.Nodes, n)

		case tokAtWord:
			n := p.parseAtRule(t)
			n.Raws.Before = before
			before = ""
			parent.Nodes = append(parent.Nodes, n)

		default:
			p.unread(t)
			if n := p.parseDeclOrRule(); n != nil {
				n.Raws.Before = before
				before = ""
				parent.Nodes = append(parent.Nodes, n)
			} else {
				return
			}
		}
	}
}

// parseDeclOrRule collects prelude tokens until it can tell a rule (hits a
// top-level '{') from a declaration (hits ';', '}' or EOF).
func (p *parser) parseDeclOrRule() *Node {
	var buf strings.Builder
	var start, lastEnd Position
	first := true
	depth := 0
	colonOff := -1
	for {
		t := p.next()
		if first {
			start = t.pos
			first = false
		}
		switch t.typ {
		case tokEOF:
			return p.finishDecl(buf.String(), start, lastEnd, colonOff, false)

		case tokCloseBrace:
			if depth == 0 {
				p.unread(t)
				return p.finishDecl(buf.String(), start, lastEnd, colonOff, false)
			}
			buf.WriteString(t.text)

		case tokSemicolon:
			if depth == 0 {
				n := p.finishDecl(buf.String(), start, lastEnd, colonOff, true)
				if n != nil {
					n.Source.End = t.end
				}
				return n
			}
			buf.WriteString(t.text)

		case tokOpenBrace:
			if depth == 0 {
				return p.parseRuleBody(buf.String(), start)
			}
			buf.WriteString(t.text)

		case tokOpenParen:
			depth++
			buf.WriteString(t.text)

		case tokCloseParen:
			if depth > 0 {
				depth--
			}
			buf.WriteString(t.text)

		case tokColon:
			if depth == 0 && colonOff < 0 {
				colonOff = buf.Len()
			}
			buf.WriteString(t.text)

		default:
			buf.WriteString(t.text)
		}
		if t.typ != tokSpace {
			lastEnd = t.end
		}
	}
}

func (p *parser) parseRuleBody(prelude string, start Position) *Node {
	n := &Node{Type: RuleNode, HasBlock: true, Source: newSource(start)}
	sel := strings.TrimRight(prelude, spaceChars)
	n.Selector = sel
	n.Raws.Between = prelude[len(sel):]
	p.parseBlock(n, true)
	return n
}

func (p *parser) finishDecl(raw string, start, lastEnd Position, colonOff int, semi bool) *Node {
	if strings.TrimLeft(raw, spaceChars) == "" {
		return nil
	}
	if colonOff < 0 {
		p.fail(start, "missing ':' between property and value")
		return nil
	}
	n := &Node{Type: DeclNode, Source: newSource(start)}
	n.Raws.Semicolon = semi
	if !semi {
		n.Source.End = lastEnd
	}

	propRaw := raw[:colonOff]
	prop := strings.TrimRight(propRaw, spaceChars)
	rest := raw[colonOff+1:]
	value := strings.TrimLeft(rest, spaceChars)
	n.Prop = prop
	n.Raws.Between = propRaw[len(prop):] + ":" + rest[:len(rest)-len(value)]

	if bang := strings.LastIndexByte(value, '!'); bang >= 0 &&
		strings.EqualFold(strings.TrimSpace(value[bang+1:]), "important") {
		cut := strings.TrimRight(value[:bang], spaceChars)
		n.Raws.Important = value[len(cut):]
		value = cut
		n.Important = true
	}
	n.Value = value
	if value != "" {
		n.ValueRoot = ParseValue(value)
	}
	return n
}

func (p *parser) parseAtRule(at token) *Node {
	n := &Node{Type: AtRuleNode, Name: at.text[1:], Source: newSource(at.pos)}
	lastEnd := at.end

	t := p.next()
	if t.typ == tokSpace {
		n.Raws.AfterName = t.text
		t = p.next()
	}

	var buf strings.Builder
	depth := 0
loop:
	for {
		switch t.typ {
		case tokEOF:
			break loop

		case tokSemicolon:
			if depth == 0 {
				n.Raws.Semicolon = true
				n.Source.End = t.end
				break loop
			}
			buf.WriteString(t.text)

		case tokCloseBrace:
			if depth == 0 {
				p.unread(t)
				n.Source.End = lastEnd
				break loop
			}
			buf.WriteString(t.text)

		case tokOpenBrace:
			if depth == 0 {
				params := buf.String()
				trimmed := strings.TrimRight(params, spaceChars)
				n.Params = trimmed
				n.Raws.Between = params[len(trimmed):]
				if trimmed != "" {
					n.ValueRoot = ParseValue(trimmed)
				}
				n.HasBlock = true
				p.parseBlock(n, true)
				return n
			}
			buf.WriteString(t.text)

		case tokOpenParen:
			depth++
			buf.WriteString(t.text)

		case tokCloseParen:
			if depth > 0 {
				depth--
			}
			buf.WriteString(t.text)

		default:
			buf.WriteString(t.text)
		}
		if t.typ != tokSpace {
			lastEnd = t.end
		}
		t = p.next()
	}

	if n.Source.End.IsZero() {
		n.Source.End = lastEnd
	}
	params := buf.String()
	trimmed := strings.TrimRight(params, spaceChars)
	n.Params = trimmed
	n.Raws.Between = params[len(trimmed):]
	if trimmed != "" {
		n.ValueRoot = ParseValue(trimmed)
	}
	return n
}

func innerComment(text string) string {
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	return text
}
