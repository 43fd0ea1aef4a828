package scss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kinds(n *ValueNode) []ValueKind {
	out := make([]ValueKind, 0, len(n.Nodes))
	for _, c := range n.Nodes {
		out = append(out, c.Kind)
	}
	return out
}

func TestParseValueWordsAndSpaces(t *testing.T) {
	vr := ParseValue("10px 1em")
	require.Equal(t, ValueRoot, vr.Kind)
	require.Equal(t, "10px 1em", vr.Text)
	require.Equal(t, []ValueKind{ValueWord, ValueSpace, ValueWord}, kinds(vr))

	require.Equal(t, "10px", vr.Nodes[0].Value)
	require.Equal(t, 0, vr.Nodes[0].Source.Index)
	require.Equal(t, "1em", vr.Nodes[2].Value)
	require.Equal(t, 5, vr.Nodes[2].Source.Index)
}

func TestParseValueDividers(t *testing.T) {
	vr := ParseValue("a,b/c")
	require.Equal(t, []ValueKind{ValueWord, ValueDiv, ValueWord, ValueDiv, ValueWord}, kinds(vr))
	require.Equal(t, ",", vr.Nodes[1].Value)
	require.Equal(t, "/", vr.Nodes[3].Value)
}

func TestParseValueString(t *testing.T) {
	vr := ParseValue(`"hello \" world"`)
	require.Equal(t, []ValueKind{ValueString}, kinds(vr))
	require.Equal(t, `"hello \" world"`, vr.Nodes[0].Value)
}

func TestParseValueFunction(t *testing.T) {
	vr := ParseValue("url( foo.png )")
	require.Equal(t, []ValueKind{ValueFunc}, kinds(vr))
	fn := vr.Nodes[0]
	require.Equal(t, "url", fn.Value)
	require.Equal(t, " ", fn.Before)
	require.Equal(t, " ", fn.After)
	require.Len(t, fn.Nodes, 1)
	require.Equal(t, "foo.png", fn.Nodes[0].Value)
	require.Equal(t, 0, fn.Source.Index)
	require.Equal(t, Position{Line: 1, Column: 14}, fn.Source.End)
}

func TestParseValueNestedFunctions(t *testing.T) {
	vr := ParseValue("calc(1 + min(2,3))")
	fn := vr.Nodes[0]
	require.Equal(t, "calc", fn.Value)
	inner := fn.Nodes[len(fn.Nodes)-1]
	require.Equal(t, ValueFunc, inner.Kind)
	require.Equal(t, "min", inner.Value)
	require.Equal(t, 9, inner.Source.Index)
}

func TestParseValueUnknownFallback(t *testing.T) {
	for _, in := range []string{"calc(1", "a)b", `"open`} {
		vr := ParseValue(in)
		require.Len(t, vr.Nodes, 1, "input %q", in)
		u := vr.Nodes[0]
		require.Equal(t, ValueUnknown, u.Kind)
		require.Equal(t, in, u.Value)
		require.Equal(t, Position{Line: 1, Column: 1}, u.Source.Start)
		require.False(t, u.Source.HasIndex)
	}
}

func TestParseValueRootDelegatesEnd(t *testing.T) {
	vr := ParseValue("1px solid")
	require.True(t, vr.Source.HasIndex)
	require.Equal(t, 0, vr.Source.Index)
	require.True(t, vr.Source.End.IsZero())

	AnnotateOffsets(&Node{
		Type:      DeclNode,
		Prop:      "border",
		Value:     "1px solid",
		Raws:      Raws{Between: ":"},
		Source:    newSource(Position{Line: 1, Column: 1}),
		ValueRoot: vr,
	}, "border:1px solid")
	require.Equal(t, 7, vr.Source.StartOffset)
	require.Equal(t, 16, vr.Source.EndOffset)
}
