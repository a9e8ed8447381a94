package svgraster

import (
	"image"
	"image/color"
	"testing"

	"github.com/benoitkugler/svgdom/svgpath"
)

func TestRasterPathData(t *testing.T) {
	img, err := RasterPathData("M 2 2 L 18 2 L 10 18 Z", 20, 20, 1)
	if err != nil {
		t.Fatalf("can't raster path: %s", err)
	}

	if a := img.RGBAAt(10, 6).A; a == 0 {
		t.Error("inside of the triangle was not filled")
	}
	if a := img.RGBAAt(0, 19).A; a != 0 {
		t.Error("outside of the triangle was filled")
	}
}

func TestRasterPathDataMalformed(t *testing.T) {
	_, err := RasterPathData("K 1 2", 20, 20, 1)
	if err == nil {
		t.Fatal("expected an error on malformed path data")
	}
}

func TestFillScale(t *testing.T) {
	path, err := svgpath.Parse("M 1 1 h 8 v 8 h -8 Z")
	if err != nil {
		t.Fatalf("can't parse path: %s", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	rd := NewRenderer(img, nil)
	rd.Fill(path, color.NRGBA{R: 0xff, A: 0xff}, 4)

	// the 1..9 square maps to 4..36 under a scale of 4
	if a := img.RGBAAt(20, 20).A; a == 0 {
		t.Error("scaled square was not filled")
	}
	if a := img.RGBAAt(2, 2).A; a != 0 {
		t.Error("pixel outside the scaled square was filled")
	}
}
