package svgdom

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgdom/svgstyle"
)

const sampleMarkup = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="24" height="24">
	<defs>
		<path id="p" d="M 0 0 L 10 10"/>
	</defs>
	<use xlink:href="#p" style="fill:none; stroke:black" transform="translate(2,2)"/>
</svg>`

func TestDecodeNode(t *testing.T) {
	root, err := DecodeNode(strings.NewReader(sampleMarkup))
	require.NoError(t, err)
	require.Equal(t, "svg", root.Name.Local)
	require.Equal(t, SVGNamespace, root.Name.Space)
	require.Len(t, root.Children, 2)

	use := root.Children[1]
	require.Equal(t, "use", use.Name.Local)
	// the decoder resolves the xlink prefix to its namespace
	var href string
	for _, at := range use.Attr {
		if at.Name.Space == XLinkNamespace && at.Name.Local == "href" {
			href = at.Value
		}
	}
	require.Equal(t, "#p", href)
}

func TestDecodeNodeInvalid(t *testing.T) {
	_, err := DecodeNode(strings.NewReader("   "))
	require.Error(t, err)

	_, err = DecodeNode(strings.NewReader("<svg><g></svg>"))
	require.Error(t, err)
}

func TestReadNode(t *testing.T) {
	root, err := DecodeNode(strings.NewReader(sampleMarkup))
	require.NoError(t, err)
	el, err := ElementFromNode(root)
	require.NoError(t, err)

	// namespace declarations are not attributes of the element
	require.Equal(t, []string{"width", "height"}, el.Attrs.Names())

	use := el.Children[1]
	require.Equal(t, []string{"xlink:href", "style", "transform"}, use.Attrs.Names())

	// style and transform are coerced while reading
	v, _ := use.Attrs.Get("style")
	require.IsType(t, &svgstyle.Style{}, v)
	v, _ = use.Attrs.Get("transform")
	require.IsType(t, &svgstyle.TransformList{}, v)

	// other attributes stay raw until a typed access
	v, _ = el.Children[0].Children[0].Attrs.Get("d")
	require.Equal(t, Raw("M 0 0 L 10 10"), v)
}

func TestReadNodeMalformed(t *testing.T) {
	n := NewNode("", "g")
	n.SetAttr("", "transform", "spin(90)")
	err := NewElement("g").ReadNode(n)
	require.Error(t, err)
	// the coercion error is returned unchanged
	require.IsType(t, svgstyle.MalformedTransformError{}, err)
}

func TestWriteNodeDispatch(t *testing.T) {
	e := NewElement("use")
	st, err := svgstyle.ParseStyle("fill:none;stroke:black")
	require.NoError(t, err)
	e.Attrs.Set("style", st)
	e.Attrs.SetRaw("xlink:href", "#p")
	e.Attrs.SetRaw("width", "24")

	var doc Document
	n := e.WriteNode(&doc, nil)
	require.Same(t, n, doc.Root) // nil parent makes the node the root

	require.Equal(t, []xml.Attr{
		{Name: xml.Name{Local: "style"}, Value: "fill:none;stroke:black"},
		{Name: xml.Name{Space: XLinkNamespace, Local: "href"}, Value: "#p"},
		{Name: xml.Name{Local: "width"}, Value: "24"},
	}, n.Attr)
}

func TestWriteNodeChildren(t *testing.T) {
	root := NewElement("svg")
	g := NewElement("g")
	g.Attrs.SetRaw("id", "layer")
	root.AppendChild(g)
	g.AppendChild(NewElement("rect"))

	var doc Document
	root.WriteNode(&doc, nil)
	require.Len(t, doc.Root.Children, 1)
	require.Equal(t, "g", doc.Root.Children[0].Name.Local)
	require.Equal(t, "rect", doc.Root.Children[0].Children[0].Name.Local)
}

func TestMarkupRoundTrip(t *testing.T) {
	root, err := DecodeNode(strings.NewReader(sampleMarkup))
	require.NoError(t, err)
	el, err := ElementFromNode(root)
	require.NoError(t, err)

	var doc Document
	el.WriteNode(&doc, nil)
	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf, false))
	out := buf.String()
	require.Contains(t, out, `xmlns:xlink="http://www.w3.org/1999/xlink"`)
	require.Contains(t, out, `xlink:href="#p"`)
	require.Contains(t, out, `style="fill:none;stroke:black"`)
	require.Contains(t, out, `transform="translate(2,2)"`)
	require.Contains(t, out, `d="M 0 0 L 10 10"`)

	// the output is valid markup, reading back to the same elements
	root2, err := DecodeNode(strings.NewReader(out))
	require.NoError(t, err)
	el2, err := ElementFromNode(root2)
	require.NoError(t, err)
	require.Equal(t, el.Attrs.Names(), el2.Attrs.Names())
	require.Len(t, el2.Children, len(el.Children))
}
