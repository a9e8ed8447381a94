package svgstyle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix2D is a 2x3 affine transformation matrix, where
// the resulting coordinates are given by
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns the multiplication of `m` and `n`, applying `n` first.
func (m Matrix2D) Mult(n Matrix2D) Matrix2D {
	return Matrix2D{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate composes a translation with the matrix.
func (m Matrix2D) Translate(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale composes a scaling with the matrix.
func (m Matrix2D) Scale(x, y float64) Matrix2D {
	return m.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate composes a rotation of `a` radians with the matrix.
func (m Matrix2D) Rotate(a float64) Matrix2D {
	sin, cos := math.Sin(a), math.Cos(a)
	return m.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// SkewX composes an horizontal skew of `a` radians with the matrix.
func (m Matrix2D) SkewX(a float64) Matrix2D {
	return m.Mult(Matrix2D{1, 0, math.Tan(a), 1, 0, 0})
}

// SkewY composes a vertical skew of `a` radians with the matrix.
func (m Matrix2D) SkewY(a float64) Matrix2D {
	return m.Mult(Matrix2D{1, math.Tan(a), 0, 1, 0, 0})
}

// Apply transforms the point (x, y).
func (m Matrix2D) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// TransformFunc is one call in a transform attribute,
// such as "rotate(90)".
type TransformFunc struct {
	Name string // lowercase: matrix, translate, scale, rotate, skewx or skewy
	Args []float64
}

// TransformList holds the function calls of a transform attribute,
// in application order.
type TransformList struct {
	funcs []TransformFunc
}

// MalformedTransformError is returned when a transform attribute
// cannot be interpreted. It carries the offending source text.
type MalformedTransformError struct {
	Data string
}

func (e MalformedTransformError) Error() string {
	return fmt.Sprintf("svgstyle: malformed transform %q", e.Data)
}

// accepted operand counts for each transform function
var transformArities = map[string][]int{
	"matrix":    {6},
	"translate": {1, 2},
	"scale":     {1, 2},
	"rotate":    {1, 3},
	"skewx":     {1},
	"skewy":     {1},
}

func acceptedArity(name string, got int) bool {
	for _, n := range transformArities[name] {
		if n == got {
			return true
		}
	}
	return false
}

// splitOnCommaOrSpace returns a list of strings after splitting the
// input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// ParseTransformList reads the content of a transform attribute,
// a list of function calls "name(arg, ...)".
// Unknown function names, bad operand counts and non-numeric operands
// fail with a MalformedTransformError.
func ParseTransformList(text string) (*TransformList, error) {
	out := &TransformList{}
	for _, t := range strings.Split(text, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 { // badly formed transformation
			return nil, MalformedTransformError{Data: text}
		}
		name := strings.ToLower(strings.TrimSpace(d[0]))
		fields := splitOnCommaOrSpace(d[1])
		args := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, MalformedTransformError{Data: text}
			}
			args[i] = v
		}
		if !acceptedArity(name, len(args)) {
			return nil, MalformedTransformError{Data: text}
		}
		out.funcs = append(out.funcs, TransformFunc{Name: name, Args: args})
	}
	return out, nil
}

// Append adds a function call at the end of the list.
func (t *TransformList) Append(f TransformFunc) { t.funcs = append(t.funcs, f) }

// Funcs returns a copy of the function calls, in order.
func (t *TransformList) Funcs() []TransformFunc {
	return append([]TransformFunc(nil), t.funcs...)
}

// Matrix composes the function calls into a single matrix.
// Angles are given in degrees in the text form, and converted
// to radians here.
func (t *TransformList) Matrix() Matrix2D {
	m := Identity
	for _, f := range t.funcs {
		a := f.Args
		switch f.Name {
		case "matrix":
			m = m.Mult(Matrix2D{a[0], a[1], a[2], a[3], a[4], a[5]})
		case "translate":
			if len(a) == 1 {
				m = m.Translate(a[0], 0)
			} else {
				m = m.Translate(a[0], a[1])
			}
		case "scale":
			if len(a) == 1 {
				m = m.Scale(a[0], a[0])
			} else {
				m = m.Scale(a[0], a[1])
			}
		case "rotate":
			if len(a) == 1 {
				m = m.Rotate(a[0] * math.Pi / 180)
			} else {
				m = m.Translate(a[1], a[2]).
					Rotate(a[0] * math.Pi / 180).
					Translate(-a[1], -a[2])
			}
		case "skewx":
			m = m.SkewX(a[0] * math.Pi / 180)
		case "skewy":
			m = m.SkewY(a[0] * math.Pi / 180)
		}
	}
	return m
}

// String returns the canonical text of the list: function calls
// separated by one space, operands separated by commas.
func (t *TransformList) String() string {
	chunks := make([]string, len(t.funcs))
	for i, f := range t.funcs {
		args := make([]string, len(f.Args))
		for j, a := range f.Args {
			args[j] = strconv.FormatFloat(a, 'g', -1, 64)
		}
		chunks[i] = f.Name + "(" + strings.Join(args, ",") + ")"
	}
	return strings.Join(chunks, " ")
}
