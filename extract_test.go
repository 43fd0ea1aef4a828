package cssloc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const hostDoc = `<html>
<head>
<style type="text/css">
a { color: red; }
</style>
</head>
<body>
<p>text</p>
<style>b{margin:0}</style>
</body>
</html>
`

func TestExtractHTML(t *testing.T) {
	sheets, err := ExtractHTML(strings.NewReader(hostDoc))
	require.NoError(t, err)
	require.Len(t, sheets, 2)

	require.Equal(t, "\na { color: red; }\n", sheets[0].Text)
	require.Equal(t, strings.Index(hostDoc, "\na { color"), sheets[0].Offset)

	require.Equal(t, "b{margin:0}", sheets[1].Text)
	require.Equal(t, strings.Index(hostDoc, "b{margin"), sheets[1].Offset)

	// offsets address the host document exactly
	for _, s := range sheets {
		require.Equal(t, s.Text, hostDoc[s.Offset:s.Offset+len(s.Text)])
	}
}

func TestExtractHTMLNoStyles(t *testing.T) {
	sheets, err := ExtractHTML(strings.NewReader("<p>no styles</p>"))
	require.NoError(t, err)
	require.Empty(t, sheets)
}

func TestParseEmbedded(t *testing.T) {
	sheets, err := ExtractHTML(strings.NewReader(hostDoc))
	require.NoError(t, err)

	st, err := ParseEmbedded(sheets[1], hostDoc)
	require.NoError(t, err)

	rule := st.Root.Nodes[0]
	require.Equal(t, strings.Index(hostDoc, "b{margin"), rule.Source.StartOffset)
	got, ok := st.Slice(rule.Source)
	require.True(t, ok)
	require.Equal(t, "b{margin:0}", got)

	decl := rule.Nodes[0]
	got, ok = st.Slice(decl.Source)
	require.True(t, ok)
	require.Equal(t, "margin:0", got)
}
