package svgdom

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/svgdom/svgstyle"
)

// namespaces fixed by the SVG specification
const (
	SVGNamespace   = "http://www.w3.org/2000/svg"
	XLinkNamespace = "http://www.w3.org/1999/xlink"
)

const xlinkPrefix = "xlink:"

// Node is an element of the hosting markup tree, distinct from the
// DOM Element: it is the exchange format between the attribute layer
// and the document layer.
type Node struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*Node
	Text     string // character data directly under the node
}

// NewNode returns a named markup node in the namespace `space`
// (empty for the inherited default namespace).
func NewNode(space, name string) *Node {
	return &Node{Name: xml.Name{Space: space, Local: name}}
}

// SetAttr sets the attribute `local` in the namespace `space` (empty
// for the node's own namespace), replacing a previous value.
func (n *Node) SetAttr(space, local, value string) {
	for i, at := range n.Attr {
		if at.Name.Space == space && at.Name.Local == local {
			n.Attr[i].Value = value
			return
		}
	}
	n.Attr = append(n.Attr, xml.Attr{Name: xml.Name{Space: space, Local: local}, Value: value})
}

// AppendChild adds `child` under the node.
func (n *Node) AppendChild(child *Node) { n.Children = append(n.Children, child) }

// Document owns the markup tree produced when writing elements.
type Document struct {
	Root *Node
}

// attrName rebuilds the prefixed name of an attribute, mapping the
// xlink namespace back to its conventional prefix. Decoders resolve
// the prefix to the namespace URI when it is declared, and leave it
// verbatim otherwise: both spellings are accepted.
func attrName(name xml.Name) string {
	if name.Space == XLinkNamespace || name.Space == "xlink" {
		return xlinkPrefix + name.Local
	}
	return name.Local
}

// ReadNode copies the attributes of the markup node into the element
// store: raw text for most attributes, with the style and transform
// attributes eagerly coerced to their typed form.
// Coercion failures are returned unchanged. No other validation is
// performed: strict conformance checks are left to the caller.
func (e *Element) ReadNode(n *Node) error {
	for _, attr := range n.Attr {
		if attr.Name.Local == "xmlns" || attr.Name.Space == "xmlns" {
			continue // namespace declarations belong to the document layer
		}
		name := attrName(attr.Name)
		switch name {
		case "style":
			st, err := svgstyle.ParseStyle(attr.Value)
			if err != nil {
				return err
			}
			e.Attrs.Set(name, st)
		case "transform":
			tr, err := svgstyle.ParseTransformList(attr.Value)
			if err != nil {
				return err
			}
			e.Attrs.Set(name, tr)
		default:
			e.Attrs.SetRaw(name, attr.Value)
		}
	}
	return nil
}

// ElementFromNode builds the element for `n` and, recursively, for
// its children.
func ElementFromNode(n *Node) (*Element, error) {
	e := NewElement(n.Name.Local)
	if err := e.ReadNode(n); err != nil {
		return nil, err
	}
	for _, child := range n.Children {
		ce, err := ElementFromNode(child)
		if err != nil {
			return nil, err
		}
		e.AppendChild(ce)
	}
	return e, nil
}

// WriteNode writes the element and its children as markup: a new node
// named after the element receives the attributes in insertion order,
// skipping nil values, then the children append themselves in order,
// and the node is appended under `parent`, or set as the document
// root when `parent` is nil.
//
// A style attribute holding a Style value writes its canonical text;
// any other value writes its generic text form. A transform attribute
// writes its text form. An "xlink:" prefixed name is stripped and set
// as a namespace qualified attribute in the xlink namespace. Every
// other attribute is set in the element's own namespace.
func (e *Element) WriteNode(doc *Document, parent *Node) *Node {
	n := NewNode("", e.Name)
	for _, name := range e.Attrs.Names() { // snapshot: the store may be mutated while emitting
		v, _ := e.Attrs.Get(name)
		if v == nil {
			continue
		}
		switch {
		case name == "style":
			if st, ok := v.(*svgstyle.Style); ok {
				n.SetAttr("", name, st.String())
			} else {
				n.SetAttr("", name, v.String())
			}
		case name == "transform":
			n.SetAttr("", name, v.String())
		case strings.HasPrefix(name, xlinkPrefix):
			n.SetAttr(XLinkNamespace, strings.TrimPrefix(name, xlinkPrefix), v.String())
		default:
			n.SetAttr("", name, v.String())
		}
	}
	for _, child := range e.Children {
		child.WriteNode(doc, n)
	}
	if parent == nil {
		doc.Root = n
	} else {
		parent.AppendChild(n)
	}
	return n
}

// DecodeNode reads a markup tree from `r`, detecting the charset from
// the XML declaration.
func DecodeNode(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Node
		stack []*Node
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			n := &Node{Name: se.Name, Attr: append([]xml.Attr(nil), se.Attr...)}
			if len(stack) == 0 {
				if root == nil {
					root = n
				}
			} else {
				stack[len(stack)-1].AppendChild(n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) != 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) != 0 {
				stack[len(stack)-1].Text += strings.TrimSpace(string(se))
			}
		}
	}
	if root == nil {
		return nil, errors.New("svgdom: invalid markup input")
	}
	return root, nil
}

// Encode writes the document as XML to `w`.
// The xlink namespace is declared on the root, and namespace
// qualified attributes are written with their conventional prefix.
func (d *Document) Encode(w io.Writer, indent bool) error {
	if d.Root == nil {
		return errors.New("svgdom: document has no root")
	}
	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	if err := encodeNode(enc, d.Root, true); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeNode(enc *xml.Encoder, n *Node, isRoot bool) error {
	se := xml.StartElement{Name: xml.Name{Local: n.Name.Local}}
	if isRoot {
		if n.Name.Space != "" {
			se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: n.Name.Space})
		}
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: "xmlns:xlink"}, Value: XLinkNamespace})
	}
	for _, at := range n.Attr {
		// prefixed form, to keep the encoder out of namespace resolution
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: attrName(at.Name)}, Value: at.Value})
	}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := encodeNode(enc, child, false); err != nil {
			return err
		}
	}
	return enc.EncodeToken(xml.EndElement{Name: se.Name})
}
