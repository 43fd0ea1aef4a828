// Package cssloc maps stylesheet syntax trees to absolute byte offsets in
// the documents they were parsed from. It combines the scss package's quote
// sanitizer, parser and offset annotator into one pipeline and can locate
// stylesheets embedded in HTML documents.
package cssloc

import (
	"io"

	"github.com/stylekit/go-cssloc/scss"
)

// Stylesheet couples a parsed tree with the text its offsets refer to.
type Stylesheet struct {
	Root *scss.Node
	Text string
}

// Parse runs the full pipeline: the sanitizer neutralizes quotes inside
// inline comments, the parser builds the tree from the sanitized text, and
// the annotator attaches offsets computed against the original text. The
// sanitized and original variants have identical length and line structure,
// so the offsets are valid for both.
func Parse(src string) (*Stylesheet, error) {
	root, err := scss.Parse(scss.SanitizeInlineComments(src))
	if err != nil {
		return nil, err
	}
	scss.AnnotateOffsets(root, src)
	return &Stylesheet{Root: root, Text: src}, nil
}

// Print writes the stylesheet back out, recovering comment content
// verbatim from the original text.
func (s *Stylesheet) Print(w io.Writer) error {
	return scss.Fprint(w, s.Root, s.Text)
}

func (s *Stylesheet) String() string {
	return scss.Sprint(s.Root, s.Text)
}

// Slice returns the source text behind an annotated Source, or false when
// either offset is unknown or out of range.
func (s *Stylesheet) Slice(src *scss.Source) (string, bool) {
	if src == nil || src.StartOffset == scss.NoOffset || src.EndOffset == scss.NoOffset {
		return "", false
	}
	if src.StartOffset < 0 || src.EndOffset > len(s.Text) || src.StartOffset > src.EndOffset {
		return "", false
	}
	return s.Text[src.StartOffset:src.EndOffset], true
}
