package svgdom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgdom/svgpath"
)

func TestElementTree(t *testing.T) {
	root := NewElement("svg")
	g := NewElement("g")
	root.AppendChild(g)
	g.AppendChild(NewElement("path"))
	require.Len(t, root.Children, 1)
	require.Equal(t, "path", root.Children[0].Children[0].Name)
}

func TestElementStyleDefault(t *testing.T) {
	e := NewElement("rect")
	st, err := e.Style()
	require.NoError(t, err)
	require.Empty(t, st.Properties())

	// the materialized style is stored: updates show up on later reads
	st.Set("fill", "red")
	again, err := e.Style()
	require.NoError(t, err)
	require.Same(t, st, again)
}

func TestElementTransformLazy(t *testing.T) {
	e := NewElement("g")
	e.Attrs.SetRaw("transform", "scale(2) translate(1,1)")

	tr, err := e.Transform()
	require.NoError(t, err)
	require.Len(t, tr.Funcs(), 2)
	x, y := tr.Matrix().Apply(1, 0)
	require.InDelta(t, 4, x, 1e-9)
	require.InDelta(t, 2, y, 1e-9)

	// the raw text was coerced in place
	v, _ := e.Attrs.Get("transform")
	require.Same(t, tr, v)
}

func TestElementTransformDefault(t *testing.T) {
	e := NewElement("g")
	tr, err := e.Transform()
	require.NoError(t, err)
	require.Empty(t, tr.Funcs())
}

func TestElementPathData(t *testing.T) {
	e := NewElement("path")
	e.Attrs.SetRaw("d", "M 0 0 L 10 10")

	p, err := e.PathData()
	require.NoError(t, err)
	require.Len(t, *p, 2)
	require.Equal(t, "M 0 0 10 10 ", p.ToSVGPath())

	e = NewElement("path")
	e.Attrs.SetRaw("d", "K 1 2")
	_, err = e.PathData()
	var mp svgpath.MalformedPathError
	require.True(t, errors.As(err, &mp))
}
