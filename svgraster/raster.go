// Package svgraster implements a raster backend for the svgpath
// drawing boundary, by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"

	"github.com/benoitkugler/svgdom/svgpath"
)

var _ svgpath.Drawer = (*rasterx.Filler)(nil) // assert interface conformance

// Renderer fills parsed paths into an image.
type Renderer struct {
	filler *rasterx.Filler
}

// NewRenderer returns a renderer writing to `img`.
// If scanner is nil, a default rasterx.ScannerGV is used.
func NewRenderer(img *image.RGBA, scanner rasterx.Scanner) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, img, img.Bounds())
	}
	return &Renderer{filler: rasterx.NewFiller(w, h, scanner)}
}

// Fill rasterizes the path with the color `c`, scaled by `scale`,
// using the non zero winding rule.
func (rd *Renderer) Fill(p svgpath.Path, c color.Color, scale float64) {
	rd.filler.Clear()
	rd.filler.SetWinding(true)
	p.DrawTo(rd.filler, scale)
	rd.filler.Scanner.SetColor(c)
	rd.filler.Draw()
}

// RasterPathData parses SVG path data and fills it in black into a
// `w` x `h` image, scaled by `scale`.
func RasterPathData(data string, w, h int, scale float64) (*image.RGBA, error) {
	path, err := svgpath.Parse(data)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rd := NewRenderer(img, nil)
	rd.Fill(path, color.NRGBA{A: 0xff}, scale)
	return img, nil
}
