package scss

// NodeType identifies the kind of a stylesheet node.
type NodeType int

const (
	RootNode NodeType = iota
	RuleNode
	AtRuleNode
	DeclNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case RootNode:
		return "root"
	case RuleNode:
		return "rule"
	case AtRuleNode:
		return "atrule"
	case DeclNode:
		return "decl"
	case CommentNode:
		return "comment"
	}
	return "unknown"
}

// Raws holds verbatim formatting fragments captured around a node. The
// printer uses them to reproduce the original layout; the offset annotator
// uses Between and AfterName for arithmetic only and never reinterprets
// them.
type Raws struct {
	// Before is the text (whitespace and stray semicolons) preceding the
	// node within its parent.
	Before string

	// Between separates a declaration's property from its value (the colon
	// and surrounding whitespace), a rule's selector from its block, or an
	// at-rule's params from its block.
	Between string

	// AfterName is the whitespace between an at-rule's name and its params.
	AfterName string

	// After is the text between a container's last child and its closing
	// brace (or end of input for the root).
	After string

	// Important is the raw "!important" tail of a declaration, including
	// the whitespace before the bang.
	Important string

	// Semicolon reports whether the node was terminated by a semicolon.
	Semicolon bool
}

// Node is one element of the parsed stylesheet tree. Only the fields of the
// node's own type are meaningful; the rest stay zero. The parser builds the
// tree with line/column Source metadata; AnnotateOffsets adds byte offsets
// without restructuring anything.
type Node struct {
	Type NodeType

	// Selector is a rule's prelude, trimmed of trailing whitespace.
	Selector string

	// Name and Params describe an at-rule, e.g. "media" and "(min-width: 100px)".
	Name   string
	Params string

	// Prop and Value describe a declaration. Value keeps the raw value text
	// minus any "!important" tail.
	Prop      string
	Value     string
	Important bool

	// Text is a comment's inner content: the text between the comment
	// delimiters for block comments, or everything after the slashes for
	// inline comments.
	Text string

	// Inline marks a single-line "//" comment. Such comments have no end
	// position from the parser; their end offset is bounded by the physical
	// line during annotation.
	Inline bool

	// HasBlock distinguishes `@media ... {}` from `@import ...;` even when
	// the block is empty. Rules always have a block.
	HasBlock bool

	Raws   Raws
	Source *Source

	// Nodes holds the structural children of root, rule and at-rule nodes.
	Nodes []*Node

	// ValueRoot is the independently parsed value sub-tree of a declaration
	// value or an at-rule's params. Its positions are relative to the
	// substring it was parsed from until AnnotateOffsets rebases them into
	// document offsets.
	ValueRoot *ValueNode
}

func (n *Node) lastChild() *Node {
	if len(n.Nodes) == 0 {
		return nil
	}
	return n.Nodes[len(n.Nodes)-1]
}

// Walk calls fn for every node of the tree in document order, parents
// before children. Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Nodes {
		Walk(c, fn)
	}
}
