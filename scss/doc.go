// Package scss parses SCSS-flavoured stylesheets and annotates the
// resulting tree with absolute byte offsets.
//
// The parser records only 1-based line/column positions; AnnotateOffsets
// later converts them to offsets into the full document, including the
// positions of value sub-trees that were parsed from a substring of a
// declaration or at-rule and live in their own coordinate space.
//
// SanitizeInlineComments is a pre-parse pass that replaces quote characters
// inside "//" comments with spaces, so a stray apostrophe in a comment
// cannot be tokenized as an unterminated string spanning the following
// lines. It preserves length, which keeps positions valid for both text
// variants; callers keep the original text to recover comments verbatim
// when printing.
package scss
