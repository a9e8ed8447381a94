// Package svgpath implements the SVG path data mini-language:
// it parses the textual value of a "d" attribute into an abstract
// sequence of typed segments, and writes such a sequence back
// in a compacted canonical form.
// The parsed representation may then be consumed by painting drivers,
// see the `Drawer` interface.
package svgpath

import "strings"

// Command identifies one kind of path instruction.
type Command uint8

const (
	MoveTo Command = iota
	LineTo
	HLineTo
	VLineTo
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	ArcTo
	Close
)

// number of operands expected after each command letter
var arities = [...]int{
	MoveTo:        2,
	LineTo:        2,
	HLineTo:       1,
	VLineTo:       1,
	CurveTo:       6,
	SmoothCurveTo: 4,
	QuadTo:        4,
	SmoothQuadTo:  2,
	ArcTo:         7,
	Close:         0,
}

var letters = [...]byte{
	MoveTo:        'M',
	LineTo:        'L',
	HLineTo:       'H',
	VLineTo:       'V',
	CurveTo:       'C',
	SmoothCurveTo: 'S',
	QuadTo:        'Q',
	SmoothQuadTo:  'T',
	ArcTo:         'A',
	Close:         'Z',
}

// Arity returns the number of operands required by the command.
func (c Command) Arity() int { return arities[c] }

func (c Command) String() string {
	if int(c) < len(letters) {
		return string(rune(letters[c]))
	}
	return "<unknown Command>"
}

// Segment is one path instruction: a command, its absolute/relative
// flag, and exactly `Arity()` numeric operands.
// A segment is owned by its containing Path and should not be
// mutated once built.
type Segment struct {
	Args []float64
	Cmd  Command
	Abs  bool // operands are document-space coordinates, not offsets
}

// letter returns the command letter, cased after the absolute flag.
func (s Segment) letter() byte {
	b := letters[s.Cmd]
	if !s.Abs {
		b += 'a' - 'A'
	}
	return b
}

// Path describes a sequence of path segments, in drawing order.
type Path []Segment

// ToSVGPath writes the path back as SVG path data, in canonical
// compacted form: the command letter is shared by consecutive segments
// with the same command and absolute flag, and the letter of a LineTo
// directly following a MoveTo with the same flag is left implicit,
// mirroring the parser.
func (p Path) ToSVGPath() string {
	var b strings.Builder
	for i, seg := range p {
		implicit := false
		if i > 0 {
			prev := p[i-1]
			implicit = prev.Abs == seg.Abs &&
				(prev.Cmd == seg.Cmd || (prev.Cmd == MoveTo && seg.Cmd == LineTo))
		}
		if !implicit {
			b.WriteByte(seg.letter())
			b.WriteByte(' ')
		}
		for _, arg := range seg.Args {
			b.WriteString(formatFloat(arg))
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Copy returns an independent copy of the path, produced by
// serializing and re-parsing it rather than duplicating the
// segment structure.
func (p Path) Copy() Path {
	out, _ := Parse(p.ToSVGPath()) // canonical output always re-parses
	return out
}
