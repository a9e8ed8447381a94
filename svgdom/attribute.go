// Package svgdom implements the attribute layer of an SVG document
// object model: a per-element attribute store with lazy type coercion,
// and the conversion between elements and markup nodes.
// Parsing and writing are pure, synchronous operations; an element and
// its store are exclusively owned by one goroutine at a time.
package svgdom

// Value is the content of one attribute: either raw text (Raw) or an
// already coerced typed object, such as *svgstyle.Style,
// *svgstyle.TransformList or *svgpath.Path.
// The String method gives the text written back to markup.
type Value interface {
	String() string
}

// Raw is attribute text which has not been coerced yet.
type Raw string

func (r Raw) String() string { return string(r) }

// Coercion tells the store how to build the typed value of an
// attribute: FromText interprets existing raw text, Default
// materializes an instance when the attribute is absent.
type Coercion struct {
	FromText func(text string) (Value, error)
	Default  func() Value
}

// AttributeStore maps attribute names, possibly namespace prefixed
// such as "xlink:href", to their values.
// Insertion order is preserved, and determines the emission order.
type AttributeStore struct {
	table map[string]Value
	order []string
}

// Set stores `v` under `name`, replacing a previous value.
func (s *AttributeStore) Set(name string, v Value) {
	if s.table == nil {
		s.table = make(map[string]Value)
	}
	if _, ok := s.table[name]; !ok {
		s.order = append(s.order, name)
	}
	s.table[name] = v
}

// SetRaw stores attribute text without interpreting it.
func (s *AttributeStore) SetRaw(name, text string) { s.Set(name, Raw(text)) }

// Get returns the value stored under `name`, or false if the
// attribute is absent.
func (s *AttributeStore) Get(name string) (Value, bool) {
	v, ok := s.table[name]
	return v, ok
}

// Len returns the number of attributes.
func (s *AttributeStore) Len() int { return len(s.order) }

// Names returns a snapshot of the attribute names, in insertion
// order: mutating the store while walking the snapshot is safe.
func (s *AttributeStore) Names() []string {
	return append([]string(nil), s.order...)
}

// Typed returns the attribute `name` as a typed value.
// A value already stored is returned as is, except that raw text is
// first interpreted with c.FromText and the result cached; an absent
// attribute is materialized with c.Default and stored, so that the
// first typed read of a fresh element always yields a usable
// instance. Coercion failures are returned unchanged.
func (s *AttributeStore) Typed(name string, c Coercion) (Value, error) {
	if v, ok := s.table[name]; ok {
		raw, isRaw := v.(Raw)
		if !isRaw || c.FromText == nil {
			return v, nil
		}
		tv, err := c.FromText(string(raw))
		if err != nil {
			return nil, err
		}
		s.Set(name, tv)
		return tv, nil
	}
	v := c.Default()
	s.Set(name, v)
	return v, nil
}
