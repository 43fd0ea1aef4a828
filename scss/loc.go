package scss

import "strings"

// AnnotateOffsets walks the tree and attaches absolute byte offsets to the
// Source of every node that has one. text must be the document the tree's
// line/column positions refer to; when the tree was parsed from a sanitized
// variant of the source, pass the original unsanitized text so downstream
// consumers can slice comments out of it verbatim (the two variants have
// identical length and line structure, so positions agree).
//
// Offsets that cannot be determined are set to NoOffset. The tree is only
// annotated, never restructured.
func AnnotateOffsets(root *Node, text string) {
	annotateNode(root, text)
}

func annotateNode(n *Node, text string) {
	if n.Source != nil {
		n.Source.StartOffset = sourceStartOffset(n.Source, text)
		n.Source.EndOffset = nodeEndOffset(n, text)
	}
	for _, c := range n.Nodes {
		annotateNode(c, text)
	}
	// The value sub-tree lives in its own coordinate space: offsets are
	// resolved against the value text and translated by the root offset.
	// Without a resolved owner start the translation constant is unknown
	// and the sub-tree is left unannotated.
	if n.ValueRoot != nil && n.Source != nil && n.Source.StartOffset != NoOffset {
		annotateValueNode(n.ValueRoot, valueRootOffset(n), n.ValueRoot.Text)
	}
}

// sourceStartOffset resolves a start offset against text. A pre-existing
// relative index wins; otherwise the 1-based start position is mapped
// through lineColumnToIndex, which addresses the byte plus one, hence the
// minus one.
func sourceStartOffset(src *Source, text string) int {
	if src == nil {
		return NoOffset
	}
	if src.HasIndex {
		return src.Index
	}
	if src.Start.IsZero() {
		return NoOffset
	}
	return lineColumnToIndex(src.Start, text) - 1
}

// nodeEndOffset applies the end rules in precedence order: inline comments
// are bounded by their physical line; a container without an end position
// takes the end of its last child; a known end position maps through
// lineColumnToIndex (the inclusive end column yields an exclusive offset);
// otherwise the end is unknown.
func nodeEndOffset(n *Node, text string) int {
	src := n.Source
	if src == nil {
		return NoOffset
	}
	if n.Type == CommentNode && n.Inline {
		return inlineCommentEnd(src, text)
	}
	if last := n.lastChild(); last != nil && src.End.IsZero() {
		return nodeEndOffset(last, text)
	}
	if !src.End.IsZero() {
		return lineColumnToIndex(src.End, text)
	}
	return NoOffset
}

func inlineCommentEnd(src *Source, text string) int {
	start := sourceStartOffset(src, text)
	if start == NoOffset || start > len(text) {
		return NoOffset
	}
	if i := strings.IndexAny(text[start:], "\r\n"); i >= 0 {
		return start + i
	}
	return len(text)
}

// annotateValueNode applies the same start/end rules as annotateNode but
// resolves them against the local value text, then translates the result by
// rootOffset. Children share the root offset and the text; value sub-trees
// do not open further coordinate spaces.
func annotateValueNode(n *ValueNode, rootOffset int, text string) {
	if n.Source != nil {
		if start := sourceStartOffset(n.Source, text); start != NoOffset {
			n.Source.StartOffset = start + rootOffset
		} else {
			n.Source.StartOffset = NoOffset
		}
		if end := valueEndOffset(n, text); end != NoOffset {
			n.Source.EndOffset = end + rootOffset
		} else {
			n.Source.EndOffset = NoOffset
		}
	}
	for _, c := range n.Nodes {
		annotateValueNode(c, rootOffset, text)
	}
}

func valueEndOffset(n *ValueNode, text string) int {
	src := n.Source
	if src == nil {
		return NoOffset
	}
	if last := n.lastChild(); last != nil && src.End.IsZero() {
		return valueEndOffset(last, text)
	}
	if !src.End.IsZero() {
		return lineColumnToIndex(src.End, text)
	}
	return NoOffset
}

// valueRootOffset computes where the value sub-tree's coordinate zero sits
// in the outer document: the owner's start offset plus the property name,
// then either the at-rule's marker, name and post-name whitespace, or the
// raw separator between property and value.
func valueRootOffset(n *Node) int {
	offset := n.Source.StartOffset
	if n.Type == DeclNode {
		offset += len(n.Prop)
	}
	if n.Type == AtRuleNode {
		offset += 1 + len(n.Name) + leadingSpaceLen(n.Raws.AfterName)
	} else {
		offset += len(n.Raws.Between)
	}
	return offset
}

func leadingSpaceLen(s string) int {
	return len(s) - len(strings.TrimLeft(s, spaceChars))
}

// ShiftOffsets adds base to every determined offset in the tree. It rebases
// the annotations of an embedded stylesheet into the document that embeds
// it.
func ShiftOffsets(root *Node, base int) {
	Walk(root, func(n *Node) bool {
		shiftSource(n.Source, base)
		WalkValue(n.ValueRoot, func(v *ValueNode) bool {
			shiftSource(v.Source, base)
			return true
		})
		return true
	})
}

func shiftSource(src *Source, base int) {
	if src == nil {
		return
	}
	if src.StartOffset != NoOffset {
		src.StartOffset += base
	}
	if src.EndOffset != NoOffset {
		src.EndOffset += base
	}
}
