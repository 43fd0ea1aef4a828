package scss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintRoundTrip(t *testing.T) {
	inputs := []string{
		"a{b:c}",
		"a {\n  color : red ;\n}\n",
		"/* head */\n@import 'x';\na, b {\n  margin: 0 auto !important;\n}\n",
		"@media screen {\n  a { b: c; }\n}\n",
		"// note\na{}\n",
		"a{;}",
		".a {\n  .b { x: y; }\n}\n",
	}
	for _, in := range inputs {
		root, err := Parse(in)
		require.NoError(t, err)
		require.Equal(t, in, Sprint(root, ""), "input %q", in)
	}
}

func TestPrintRecoversSanitizedComments(t *testing.T) {
	src := "// it's \"quoted\"\na { b: c; }\n"
	sanitized := SanitizeInlineComments(src)
	require.NotEqual(t, src, sanitized)

	root, err := Parse(sanitized)
	require.NoError(t, err)
	AnnotateOffsets(root, src)

	// Printing with the original text restores the comment verbatim even
	// though the tree was parsed from the sanitized variant.
	require.Equal(t, src, Sprint(root, src))

	// Without the original text the sanitized content is all we have.
	require.Equal(t, sanitized, Sprint(root, ""))
}

func TestPrintUnannotatedInlineComment(t *testing.T) {
	root, err := Parse("// note")
	require.NoError(t, err)
	require.Equal(t, "// note", Sprint(root, ""))
}
