package scss

// ValueKind identifies the kind of a value sub-tree node.
type ValueKind int

const (
	// ValueRoot is the synthetic root of a parsed value sub-tree.
	ValueRoot ValueKind = iota
	ValueWord
	ValueSpace
	ValueDiv
	ValueString
	ValueFunc
	// ValueUnknown wraps a fragment that could not be value-parsed and is
	// kept verbatim.
	ValueUnknown
)

func (k ValueKind) String() string {
	switch k {
	case ValueRoot:
		return "value-root"
	case ValueWord:
		return "word"
	case ValueSpace:
		return "space"
	case ValueDiv:
		return "div"
	case ValueString:
		return "string"
	case ValueFunc:
		return "function"
	case ValueUnknown:
		return "value-unknown"
	}
	return "invalid"
}

// ValueNode is an element of a value sub-tree: the independently parsed
// right-hand side of a declaration or the params of an at-rule. All of its
// positions are relative to the substring the sub-tree was parsed from;
// AnnotateOffsets translates them into offsets of the outer document.
type ValueNode struct {
	Kind ValueKind

	// Value holds the node's text: the word, the whitespace run, the
	// divider character, the quoted string including its quotes, or the
	// function name.
	Value string

	// Text is the full source substring of a ValueRoot or ValueUnknown
	// node.
	Text string

	// Before and After hold the whitespace just inside a function's
	// parentheses.
	Before string
	After  string

	Source *Source
	Nodes  []*ValueNode
}

func (n *ValueNode) lastChild() *ValueNode {
	if len(n.Nodes) == 0 {
		return nil
	}
	return n.Nodes[len(n.Nodes)-1]
}

// WalkValue calls fn for every node of a value sub-tree in source order.
// Returning false from fn skips the node's children.
func WalkValue(n *ValueNode, fn func(*ValueNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Nodes {
		WalkValue(c, fn)
	}
}

// ParseValue parses the textual value of a declaration or the params of an
// at-rule into a value sub-tree. Leaf nodes carry substring-relative start
// indexes and line/column end positions. When the text cannot be parsed
// (an unclosed string or unbalanced parentheses), the root wraps a single
// ValueUnknown node holding the text verbatim.
func ParseValue(text string) *ValueNode {
	root := &ValueNode{Kind: ValueRoot, Text: text, Source: indexSource(0, Position{})}
	p := &valueParser{text: text, line: 1, col: 1}
	nodes := p.parseNodes(false)
	if p.bad {
		root.Nodes = []*ValueNode{{
			Kind:   ValueUnknown,
			Value:  text,
			Text:   text,
			Source: &Source{Start: Position{Line: 1, Column: 1}, End: lastPosition(text), StartOffset: NoOffset, EndOffset: NoOffset},
		}}
		return root
	}
	root.Nodes = nodes
	return root
}

type valueParser struct {
	text string
	off  int
	line int
	col  int
	last Position
	bad  bool
}

func (p *valueParser) pos() Position { return Position{Line: p.line, Column: p.col} }

func (p *valueParser) step() {
	p.last = p.pos()
	if p.text[p.off] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.off++
}

// parseNodes scans value tokens until end of text or, when inFunc is set,
// until an unconsumed closing parenthesis.
func (p *valueParser) parseNodes(inFunc bool) []*ValueNode {
	var nodes []*ValueNode
	for p.off < len(p.text) {
		c := p.text[p.off]
		startOff := p.off
		switch {
		case isSpaceByte(c):
			for p.off < len(p.text) && isSpaceByte(p.text[p.off]) {
				p.step()
			}
			nodes = append(nodes, &ValueNode{Kind: ValueSpace, Value: p.text[startOff:p.off], Source: indexSource(startOff, p.last)})

		case c == ',' || c == '/' || c == ':':
			p.step()
			nodes = append(nodes, &ValueNode{Kind: ValueDiv, Value: p.text[startOff:p.off], Source: indexSource(startOff, p.last)})

		case c == '\'' || c == '"':
			p.step()
			closed := false
			for p.off < len(p.text) {
				b := p.text[p.off]
				if b == '\\' && p.off+1 < len(p.text) {
					p.step()
					p.step()
					continue
				}
				p.step()
				if b == c {
					closed = true
					break
				}
			}
			if !closed {
				p.bad = true
				return nodes
			}
			nodes = append(nodes, &ValueNode{Kind: ValueString, Value: p.text[startOff:p.off], Source: indexSource(startOff, p.last)})

		case c == ')':
			if inFunc {
				return nodes
			}
			p.bad = true
			return nodes

		case c == '(':
			fn := p.parseFunc("", startOff)
			if fn == nil {
				return nodes
			}
			nodes = append(nodes, fn)

		default:
			for p.off < len(p.text) && isValueWordByte(p.text[p.off]) {
				p.step()
			}
			word := p.text[startOff:p.off]
			wordEnd := p.last
			if p.off < len(p.text) && p.text[p.off] == '(' {
				fn := p.parseFunc(word, startOff)
				if fn == nil {
					return nodes
				}
				nodes = append(nodes, fn)
			} else {
				nodes = append(nodes, &ValueNode{Kind: ValueWord, Value: word, Source: indexSource(startOff, wordEnd)})
			}
		}
	}
	if inFunc {
		p.bad = true
	}
	return nodes
}

func (p *valueParser) parseFunc(name string, startOff int) *ValueNode {
	fn := &ValueNode{Kind: ValueFunc, Value: name}
	p.step() // consume '('
	wsStart := p.off
	for p.off < len(p.text) && isSpaceByte(p.text[p.off]) {
		p.step()
	}
	fn.Before = p.text[wsStart:p.off]
	fn.Nodes = p.parseNodes(true)
	if p.bad {
		return nil
	}
	if p.off >= len(p.text) || p.text[p.off] != ')' {
		p.bad = true
		return nil
	}
	if k := len(fn.Nodes); k > 0 && fn.Nodes[k-1].Kind == ValueSpace {
		fn.After = fn.Nodes[k-1].Value
		fn.Nodes = fn.Nodes[:k-1]
	}
	p.step() // consume ')'
	fn.Source = indexSource(startOff, p.last)
	return fn
}

func isValueWordByte(b byte) bool {
	if isSpaceByte(b) {
		return false
	}
	switch b {
	case ',', '/', ':', '\'', '"', '(', ')':
		return false
	}
	return true
}

// lastPosition returns the line/column of the final byte of text, or the
// zero Position for empty text.
func lastPosition(text string) Position {
	line, col := 1, 1
	var last Position
	for i := 0; i < len(text); i++ {
		last = Position{Line: line, Column: col}
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return last
}
