package svgpath

// This file implements the transformation from
// high level shapes to their path equivalent

func segment(cmd Command, args ...float64) Segment {
	return Segment{Cmd: cmd, Abs: true, Args: args}
}

// RectPath returns the path of a rectangle of the indicated size,
// with rounded corners of radius `rx` in the x axis and `ry` in the
// y axis. Per the shape element rules, a single positive radius is
// copied to the other axis, and radii larger than half the side are
// clamped.
func RectPath(x, y, w, h, rx, ry float64) Path {
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	if rx == 0 {
		rx = ry
	}
	if ry == 0 {
		ry = rx
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	if rx == 0 || ry == 0 {
		return Path{
			segment(MoveTo, x, y),
			segment(LineTo, x+w, y),
			segment(LineTo, x+w, y+h),
			segment(LineTo, x, y+h),
			segment(Close),
		}
	}
	corner := func(ex, ey float64) Segment {
		return segment(ArcTo, rx, ry, 0, 0, 1, ex, ey)
	}
	return Path{
		segment(MoveTo, x+rx, y),
		segment(LineTo, x+w-rx, y),
		corner(x+w, y+ry),
		segment(LineTo, x+w, y+h-ry),
		corner(x+w-rx, y+h),
		segment(LineTo, x+rx, y+h),
		corner(x, y+h-ry),
		segment(LineTo, x, y+ry),
		corner(x+rx, y),
		segment(Close),
	}
}

// EllipsePath returns the path of the ellipse centered at (cx, cy),
// built from two half turn arcs.
func EllipsePath(cx, cy, rx, ry float64) Path {
	return Path{
		segment(MoveTo, cx+rx, cy),
		segment(ArcTo, rx, ry, 0, 1, 1, cx-rx, cy),
		segment(ArcTo, rx, ry, 0, 1, 1, cx+rx, cy),
		segment(Close),
	}
}

// CirclePath returns the path of the circle of radius `r` centered
// at (cx, cy).
func CirclePath(cx, cy, r float64) Path {
	return EllipsePath(cx, cy, r, r)
}

// LinePath returns the path of the segment from (x1, y1) to (x2, y2).
func LinePath(x1, y1, x2, y2 float64) Path {
	return Path{
		segment(MoveTo, x1, y1),
		segment(LineTo, x2, y2),
	}
}

// PolylinePath returns the open path joining the given points,
// interleaved x then y. Fewer than two points give an empty path.
func PolylinePath(points []float64) Path {
	if len(points) < 4 {
		return nil
	}
	out := Path{segment(MoveTo, points[0], points[1])}
	for i := 2; i+1 < len(points); i += 2 {
		out = append(out, segment(LineTo, points[i], points[i+1]))
	}
	return out
}

// PolygonPath returns the closed path joining the given points.
func PolygonPath(points []float64) Path {
	out := PolylinePath(points)
	if out == nil {
		return nil
	}
	return append(out, segment(Close))
}
