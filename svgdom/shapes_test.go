package svgdom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func shapeElement(name string, attrs ...string) *Element {
	e := NewElement(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		e.Attrs.SetRaw(attrs[i], attrs[i+1])
	}
	return e
}

func TestShapePath(t *testing.T) {
	for _, tc := range []struct {
		el   *Element
		want string
	}{
		{shapeElement("rect", "x", "1", "y", "2", "width", "10", "height", "20"),
			"M 1 2 11 2 11 22 1 22 Z "},
		{shapeElement("circle", "cx", "0", "cy", "0", "r", "4"),
			"M 4 0 A 4 4 0 1 1 -4 0 4 4 0 1 1 4 0 Z "},
		{shapeElement("ellipse", "cx", "5", "cy", "5", "rx", "3", "ry", "2"),
			"M 8 5 A 3 2 0 1 1 2 5 3 2 0 1 1 8 5 Z "},
		{shapeElement("line", "x1", "1", "y1", "2", "x2", "3", "y2", "4"),
			"M 1 2 3 4 "},
		{shapeElement("polyline", "points", "0,0 10,0 5,8"),
			"M 0 0 10 0 5 8 "},
		{shapeElement("polygon", "points", "0,0 10,0 5,8"),
			"M 0 0 10 0 5 8 Z "},
		{shapeElement("path", "d", "M 0 0 L 1 1"),
			"M 0 0 1 1 "},
	} {
		p, err := tc.el.ShapePath()
		require.NoError(t, err, tc.el.Name)
		require.Equal(t, tc.want, p.ToSVGPath(), tc.el.Name)
	}
}

func TestShapePathErrors(t *testing.T) {
	_, err := shapeElement("g").ShapePath()
	require.Error(t, err)

	_, err = shapeElement("rect", "width", "ten").ShapePath()
	require.Error(t, err)

	_, err = shapeElement("polygon", "points", "1,2 3").ShapePath()
	require.Error(t, err) // odd coordinate count

	_, err = shapeElement("polyline", "points", "1,x").ShapePath()
	require.Error(t, err)
}
