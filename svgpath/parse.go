package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errCommandUnknown = errors.New("unknown command")
	errParamMismatch  = errors.New("param mismatch")
)

// MalformedPathError is returned by Parse when the path data cannot
// be interpreted. It carries the offending source text.
type MalformedPathError struct {
	Cause error
	Data  string // the full path data given to Parse
}

func (e MalformedPathError) Error() string {
	return fmt.Sprintf("svgpath: malformed path data %q: %s", e.Data, e.Cause)
}

func (e MalformedPathError) Unwrap() error { return e.Cause }

// path data tokens are separated by whitespace and commas
func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == ','
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// lookupCommand maps a command letter to its command; the absolute
// flag is given by the case of the letter.
func lookupCommand(b byte) (cmd Command, abs, ok bool) {
	abs = 'A' <= b && b <= 'Z'
	lower := b
	if abs {
		lower += 'a' - 'A'
	}
	switch lower {
	case 'm':
		cmd = MoveTo
	case 'z':
		cmd = Close
	case 'l':
		cmd = LineTo
	case 'h':
		cmd = HLineTo
	case 'v':
		cmd = VLineTo
	case 'c':
		cmd = CurveTo
	case 's':
		cmd = SmoothCurveTo
	case 'q':
		cmd = QuadTo
	case 't':
		cmd = SmoothQuadTo
	case 'a':
		cmd = ArcTo
	default:
		return 0, abs, false
	}
	return cmd, abs, true
}

// Parse reads SVG path data into a Path.
// The tokenizer splits the input on whitespace and commas, so exactly
// one separator is expected between the elements: inputs packing
// numbers against a command letter or against each other without a
// separator (such as "M10-20") are not supported.
// Coordinate pairs following a complete MoveTo are read as implicit
// LineTo segments, per the SVG grammar.
// An unrecognized command letter, a missing operand or a non-numeric
// operand make Parse fail with a MalformedPathError; no partial path
// is returned.
func Parse(data string) (Path, error) {
	tokens := strings.FieldsFunc(data, isSeparator)
	var (
		path    Path
		cmd     Command
		abs     bool
		started bool
	)
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if isLetter(tok[0]) {
			var ok bool
			cmd, abs, ok = lookupCommand(tok[0])
			if !ok {
				return nil, MalformedPathError{Data: data, Cause: errCommandUnknown}
			}
			started = true
			if tok = tok[1:]; tok == "" {
				i++
			} else {
				// the rest of the token is the first operand
				tokens[i] = tok
			}
		} else {
			if !started {
				return nil, MalformedPathError{Data: data, Cause: errCommandUnknown}
			}
			if cmd == MoveTo { // implicit LineTo after MoveTo
				cmd = LineTo
			}
			if cmd == Close { // a close takes no operand
				return nil, MalformedPathError{Data: data, Cause: errParamMismatch}
			}
		}
		arity := cmd.Arity()
		if i+arity > len(tokens) {
			return nil, MalformedPathError{Data: data, Cause: errParamMismatch}
		}
		args := make([]float64, arity)
		for j := range args {
			v, err := strconv.ParseFloat(tokens[i+j], 64)
			if err != nil {
				return nil, MalformedPathError{Data: data, Cause: errParamMismatch}
			}
			args[j] = v
		}
		path = append(path, Segment{Cmd: cmd, Abs: abs, Args: args})
		i += arity
	}
	return path, nil
}

// formatFloat writes a float in locale independent decimal form.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
