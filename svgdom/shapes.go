package svgdom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgdom/svgpath"
)

// floatAttr returns the attribute as a number, or 0 when it is absent.
func (e *Element) floatAttr(name string) (float64, error) {
	v, ok := e.Attrs.Get(name)
	if !ok || v == nil {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("svgdom: invalid numeric attribute %s=%q", name, v)
	}
	return f, nil
}

// pointsAttr reads the "points" attribute of a polyline or polygon,
// a list of coordinates separated by whitespace or commas.
func (e *Element) pointsAttr() ([]float64, error) {
	v, ok := e.Attrs.Get("points")
	if !ok || v == nil {
		return nil, nil
	}
	fields := strings.FieldsFunc(v.String(), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == ','
	})
	out := make([]float64, len(fields))
	for i, f := range fields {
		p, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("svgdom: invalid points attribute %q", v)
		}
		out[i] = p
	}
	if len(out)%2 != 0 {
		return nil, fmt.Errorf("svgdom: odd number of coordinates in points attribute %q", v)
	}
	return out, nil
}

// ShapePath returns the outline of a shape element as a path:
// rect, circle, ellipse, line, polyline and polygon elements reduce
// to their path equivalent, and a path element yields its "d"
// attribute. Other element names are an error.
func (e *Element) ShapePath() (svgpath.Path, error) {
	switch e.Name {
	case "path":
		p, err := e.PathData()
		if err != nil {
			return nil, err
		}
		return *p, nil
	case "rect":
		var vals [6]float64
		for i, name := range [...]string{"x", "y", "width", "height", "rx", "ry"} {
			f, err := e.floatAttr(name)
			if err != nil {
				return nil, err
			}
			vals[i] = f
		}
		return svgpath.RectPath(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]), nil
	case "circle", "ellipse":
		cx, err := e.floatAttr("cx")
		if err != nil {
			return nil, err
		}
		cy, err := e.floatAttr("cy")
		if err != nil {
			return nil, err
		}
		if e.Name == "circle" {
			r, err := e.floatAttr("r")
			if err != nil {
				return nil, err
			}
			return svgpath.CirclePath(cx, cy, r), nil
		}
		rx, err := e.floatAttr("rx")
		if err != nil {
			return nil, err
		}
		ry, err := e.floatAttr("ry")
		if err != nil {
			return nil, err
		}
		return svgpath.EllipsePath(cx, cy, rx, ry), nil
	case "line":
		var vals [4]float64
		for i, name := range [...]string{"x1", "y1", "x2", "y2"} {
			f, err := e.floatAttr(name)
			if err != nil {
				return nil, err
			}
			vals[i] = f
		}
		return svgpath.LinePath(vals[0], vals[1], vals[2], vals[3]), nil
	case "polyline", "polygon":
		points, err := e.pointsAttr()
		if err != nil {
			return nil, err
		}
		if e.Name == "polygon" {
			return svgpath.PolygonPath(points), nil
		}
		return svgpath.PolylinePath(points), nil
	}
	return nil, fmt.Errorf("svgdom: element %s is not a shape", e.Name)
}
