// Package svgstyle implements the two attribute value grammars
// shared by all the visual elements: the style property list and
// the transform function list.
// Both types are built from text and convert back to a canonical
// text form, so that a document can be round-tripped.
package svgstyle

import (
	"fmt"
	"strings"
)

// Property is one style declaration, such as "fill:none".
type Property struct {
	Name, Value string
}

// Style holds the declarations of a style attribute,
// preserving their order.
type Style struct {
	props []Property
}

// MalformedStyleError is returned when a style attribute cannot be
// interpreted. It carries the offending source text.
type MalformedStyleError struct {
	Data string
}

func (e MalformedStyleError) Error() string {
	return fmt.Sprintf("svgstyle: malformed style %q", e.Data)
}

// ParseStyle reads the content of a style attribute: declarations are
// separated by semicolons, the name and value of a declaration by a
// colon. Empty declarations are skipped, so a trailing semicolon is
// accepted.
func ParseStyle(text string) (*Style, error) {
	out := &Style{}
	for _, pair := range strings.Split(text, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			return nil, MalformedStyleError{Data: text}
		}
		out.props = append(out.props, Property{
			Name:  strings.TrimSpace(kv[0]),
			Value: strings.TrimSpace(kv[1]),
		})
	}
	return out, nil
}

// Get returns the value of the property `name`, or false
// if it is not declared.
func (s *Style) Get(name string) (string, bool) {
	for _, p := range s.props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Set updates the property `name`, adding it at the end
// of the declarations if needed.
func (s *Style) Set(name, value string) {
	for i, p := range s.props {
		if p.Name == name {
			s.props[i].Value = value
			return
		}
	}
	s.props = append(s.props, Property{Name: name, Value: value})
}

// Properties returns a copy of the declarations, in order.
func (s *Style) Properties() []Property {
	return append([]Property(nil), s.props...)
}

// String returns the canonical text of the style, one "name:value"
// declaration per property, separated by semicolons.
func (s *Style) String() string {
	chunks := make([]string, len(s.props))
	for i, p := range s.props {
		chunks[i] = p.Name + ":" + p.Value
	}
	return strings.Join(chunks, ";")
}
