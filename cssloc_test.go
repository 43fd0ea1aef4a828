package cssloc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stylekit/go-cssloc/scss"
)

func TestParsePipeline(t *testing.T) {
	src := "// it's \"quoted\"\na {\n  width: 10px;\n}\n"
	st, err := Parse(src)
	require.NoError(t, err)

	comment := st.Root.Nodes[0]
	require.True(t, comment.Inline)
	got, ok := st.Slice(comment.Source)
	require.True(t, ok)
	require.Equal(t, "// it's \"quoted\"", got)

	decl := st.Root.Nodes[1].Nodes[0]
	got, ok = st.Slice(decl.Source)
	require.True(t, ok)
	require.Equal(t, "width: 10px;", got)

	require.Equal(t, src, st.String())
}

func TestParseReportsErrors(t *testing.T) {
	_, err := Parse("a{oops}")
	require.Error(t, err)
	var perr *scss.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestSliceUnknownOffsets(t *testing.T) {
	st := &Stylesheet{Text: "abc"}
	_, ok := st.Slice(nil)
	require.False(t, ok)
	_, ok = st.Slice(&scss.Source{StartOffset: scss.NoOffset, EndOffset: scss.NoOffset})
	require.False(t, ok)
	_, ok = st.Slice(&scss.Source{StartOffset: 0, EndOffset: 10})
	require.False(t, ok)
}

func TestPrintToWriter(t *testing.T) {
	src := "a{b:c}"
	st, err := Parse(src)
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, st.Print(&sb))
	require.Equal(t, src, sb.String())
}
