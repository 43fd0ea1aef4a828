package scss

import (
	"io"
	"strings"
)

// Fprint writes the stylesheet tree to w, reproducing the original layout
// from the captured raws. text, when non-empty, must be the original
// document the tree was annotated against; inline comments are then sliced
// from it verbatim, which undoes the sanitizer's quote replacement. With an
// empty text the comment content stored in the tree is printed instead.
func Fprint(w io.Writer, root *Node, text string) error {
	p := &printer{w: w, text: text}
	p.node(root)
	return p.err
}

// Sprint renders the tree to a string. See Fprint.
func Sprint(root *Node, text string) string {
	var sb strings.Builder
	_ = Fprint(&sb, root, text)
	return sb.String()
}

type printer struct {
	w    io.Writer
	text string
	err  error
}

func (p *printer) write(s string) {
	if p.err == nil && s != "" {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) node(n *Node) {
	switch n.Type {
	case RootNode:
		p.children(n)

	case RuleNode:
		p.write(n.Selector)
		p.write(n.Raws.Between)
		p.write("{")
		p.children(n)
		p.write("}")

	case AtRuleNode:
		p.write("@")
		p.write(n.Name)
		p.write(n.Raws.AfterName)
		p.write(n.Params)
		p.write(n.Raws.Between)
		switch {
		case n.HasBlock:
			p.write("{")
			p.children(n)
			p.write("}")
		case n.Raws.Semicolon:
			p.write(";")
		}

	case DeclNode:
		p.write(n.Prop)
		p.write(n.Raws.Between)
		p.write(n.Value)
		p.write(n.Raws.Important)
		if n.Raws.Semicolon {
			p.write(";")
		}

	case CommentNode:
		if n.Inline {
			if s, ok := p.slice(n.Source); ok {
				p.write(s)
			} else {
				p.write("//")
				p.write(n.Text)
			}
		} else {
			p.write("/*")
			p.write(n.Text)
			p.write("*/")
		}
	}
}

func (p *printer) children(n *Node) {
	for _, c := range n.Nodes {
		p.write(c.Raws.Before)
		p.node(c)
	}
	p.write(n.Raws.After)
}

// slice cuts the node's annotated range out of the original text.
func (p *printer) slice(src *Source) (string, bool) {
	if p.text == "" || src == nil || src.StartOffset == NoOffset || src.EndOffset == NoOffset {
		return "", false
	}
	if src.StartOffset < 0 || src.EndOffset > len(p.text) || src.StartOffset > src.EndOffset {
		return "", false
	}
	return p.text[src.StartOffset:src.EndOffset], true
}
