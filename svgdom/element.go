package svgdom

import (
	"fmt"

	"github.com/benoitkugler/svgdom/svgpath"
	"github.com/benoitkugler/svgdom/svgstyle"
)

// Element is one node of the document object model: a name, an
// attribute store and the child elements, in order.
// An element owns its store and its children; a child has a single
// parent, and the tree has no cycles.
type Element struct {
	Name     string
	Attrs    AttributeStore
	Children []*Element
}

// NewElement returns an element with the given tag name.
func NewElement(name string) *Element { return &Element{Name: name} }

// AppendChild adds `child` at the end of the children.
// The child must not belong to another element.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// Style returns the style attribute as a typed value, interpreting
// raw text if needed. A fresh element yields an empty style.
func (e *Element) Style() (*svgstyle.Style, error) {
	v, err := e.Attrs.Typed("style", Coercion{
		FromText: func(text string) (Value, error) { return svgstyle.ParseStyle(text) },
		Default:  func() Value { return &svgstyle.Style{} },
	})
	if err != nil {
		return nil, err
	}
	st, ok := v.(*svgstyle.Style)
	if !ok {
		return nil, fmt.Errorf("svgdom: style attribute holds a %T value", v)
	}
	return st, nil
}

// Transform returns the transform attribute as a typed value,
// interpreting raw text if needed. A fresh element yields an empty
// transform list.
func (e *Element) Transform() (*svgstyle.TransformList, error) {
	v, err := e.Attrs.Typed("transform", Coercion{
		FromText: func(text string) (Value, error) { return svgstyle.ParseTransformList(text) },
		Default:  func() Value { return &svgstyle.TransformList{} },
	})
	if err != nil {
		return nil, err
	}
	tr, ok := v.(*svgstyle.TransformList)
	if !ok {
		return nil, fmt.Errorf("svgdom: transform attribute holds a %T value", v)
	}
	return tr, nil
}

// PathData returns the "d" attribute as a parsed path, interpreting
// raw text if needed. A fresh element yields an empty path.
// Unlike style and transform, the path text of a freshly read element
// is kept raw until this first access.
func (e *Element) PathData() (*svgpath.Path, error) {
	v, err := e.Attrs.Typed("d", Coercion{
		FromText: func(text string) (Value, error) {
			p, err := svgpath.Parse(text)
			if err != nil {
				return nil, err
			}
			return &p, nil
		},
		Default: func() Value { return &svgpath.Path{} },
	})
	if err != nil {
		return nil, err
	}
	p, ok := v.(*svgpath.Path)
	if !ok {
		return nil, fmt.Errorf("svgdom: d attribute holds a %T value", v)
	}
	return p, nil
}
