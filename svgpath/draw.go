package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations,
// but doesn't need any SVG knowledge.
// In particular, relative coordinates, the shorthand commands and the
// elliptical arcs are already resolved before reaching the Drawer.
// It is satisfied by the rasterx path adders.
type Drawer interface {
	// Start starts a new subpath at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`.
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path.
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path.
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true.
	Stop(closeLoop bool)
}

// Number of cubic beziers to approx half a circle
const cubicsPerHalfCircle = 8

// DrawTo replays the path on the drawer `d`, scaled by `scale`,
// reducing every segment to the basic operations: relative operands
// are resolved against the current point, horizontal and vertical
// lines become plain lines, the smooth shorthands reflect the previous
// control point, and arcs are approximated with cubic beziers.
// The segments must be well formed, as returned by Parse.
func (p Path) DrawTo(d Drawer, scale float64) {
	pt := func(x, y float64) fixed.Point26_6 {
		return fixed.Point26_6{X: fixed.Int26_6(x * scale * 64), Y: fixed.Int26_6(y * scale * 64)}
	}
	var (
		x, y   float64 // current point
		sx, sy float64 // start of the current subpath
		cx, cy float64 // last control point, for the smooth shorthands
		prev   Command = Close
	)
	for _, seg := range p {
		a := seg.Args
		switch seg.Cmd {
		case MoveTo:
			d.Stop(false) // implicit close if currently in path
			if seg.Abs {
				x, y = a[0], a[1]
			} else {
				x, y = x+a[0], y+a[1]
			}
			sx, sy = x, y
			d.Start(pt(x, y))
		case LineTo:
			if seg.Abs {
				x, y = a[0], a[1]
			} else {
				x, y = x+a[0], y+a[1]
			}
			d.Line(pt(x, y))
		case HLineTo:
			if seg.Abs {
				x = a[0]
			} else {
				x += a[0]
			}
			d.Line(pt(x, y))
		case VLineTo:
			if seg.Abs {
				y = a[0]
			} else {
				y += a[0]
			}
			d.Line(pt(x, y))
		case CurveTo:
			x1, y1, x2, y2, ex, ey := a[0], a[1], a[2], a[3], a[4], a[5]
			if !seg.Abs {
				x1, y1, x2, y2, ex, ey = x+x1, y+y1, x+x2, y+y2, x+ex, y+ey
			}
			d.CubeBezier(pt(x1, y1), pt(x2, y2), pt(ex, ey))
			cx, cy, x, y = x2, y2, ex, ey
		case SmoothCurveTo:
			x1, y1 := x, y
			if prev == CurveTo || prev == SmoothCurveTo {
				x1, y1 = 2*x-cx, 2*y-cy // reflection of the previous control point
			}
			x2, y2, ex, ey := a[0], a[1], a[2], a[3]
			if !seg.Abs {
				x2, y2, ex, ey = x+x2, y+y2, x+ex, y+ey
			}
			d.CubeBezier(pt(x1, y1), pt(x2, y2), pt(ex, ey))
			cx, cy, x, y = x2, y2, ex, ey
		case QuadTo:
			x1, y1, ex, ey := a[0], a[1], a[2], a[3]
			if !seg.Abs {
				x1, y1, ex, ey = x+x1, y+y1, x+ex, y+ey
			}
			d.QuadBezier(pt(x1, y1), pt(ex, ey))
			cx, cy, x, y = x1, y1, ex, ey
		case SmoothQuadTo:
			x1, y1 := x, y
			if prev == QuadTo || prev == SmoothQuadTo {
				x1, y1 = 2*x-cx, 2*y-cy
			}
			ex, ey := a[0], a[1]
			if !seg.Abs {
				ex, ey = x+ex, y+ey
			}
			d.QuadBezier(pt(x1, y1), pt(ex, ey))
			cx, cy, x, y = x1, y1, ex, ey
		case ArcTo:
			ex, ey := a[5], a[6]
			if !seg.Abs {
				ex, ey = x+ex, y+ey
			}
			drawArc(d, pt, x, y, ex, ey, a[0], a[1], a[2], a[3] != 0, a[4] != 0)
			x, y = ex, ey
		case Close:
			d.Stop(true)
			x, y = sx, sy
		}
		prev = seg.Cmd
	}
	d.Stop(false)
}

// drawArc approximates an elliptical arc with cubic bezier curves,
// using the endpoint to center parameterization of the SVG
// implementation notes.
func drawArc(d Drawer, pt func(x, y float64) fixed.Point26_6,
	x1, y1, x2, y2, rx, ry, rot float64, large, sweep bool) {
	if rx == 0 || ry == 0 || (x1 == x2 && y1 == y2) {
		d.Line(pt(x2, y2)) // degenerate arcs are lines
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	phi := rot * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// midpoint coordinates, in the rotated frame
	dx, dy := (x1-x2)/2, (y1-y2)/2
	xp := cosPhi*dx + sinPhi*dy
	yp := -sinPhi*dx + cosPhi*dy

	// scale the radii up if they cannot reach from start to end
	if lambda := xp*xp/(rx*rx) + yp*yp/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = s*rx, s*ry
	}

	num := rx*rx*ry*ry - rx*rx*yp*yp - ry*ry*xp*xp
	den := rx*rx*yp*yp + ry*ry*xp*xp
	co := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		co = -co
	}
	cxp, cyp := co*rx*yp/ry, -co*ry*xp/rx
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	theta1 := math.Atan2((yp-cyp)/ry, (xp-cxp)/rx)
	theta2 := math.Atan2((-yp-cyp)/ry, (-xp-cxp)/rx)
	dtheta := theta2 - theta1
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	} else if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}

	// point and derivative on the ellipse at angle t
	point := func(t float64) (px, py, dpx, dpy float64) {
		cosT, sinT := math.Cos(t), math.Sin(t)
		px = cx + rx*cosT*cosPhi - ry*sinT*sinPhi
		py = cy + rx*cosT*sinPhi + ry*sinT*cosPhi
		dpx = -rx*sinT*cosPhi - ry*cosT*sinPhi
		dpy = -rx*sinT*sinPhi + ry*cosT*cosPhi
		return
	}

	n := int(math.Ceil(math.Abs(dtheta) * cubicsPerHalfCircle / math.Pi))
	if n < 1 {
		n = 1
	}
	step := dtheta / float64(n)
	k := 4. / 3. * math.Tan(step/4)
	t := theta1
	p0x, p0y, d0x, d0y := point(t)
	for i := 0; i < n; i++ {
		p3x, p3y, d3x, d3y := point(t + step)
		d.CubeBezier(pt(p0x+k*d0x, p0y+k*d0y), pt(p3x-k*d3x, p3y-k*d3y), pt(p3x, p3y))
		t += step
		p0x, p0y, d0x, d0y = p3x, p3y, d3x, d3y
	}
}
