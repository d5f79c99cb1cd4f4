package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed icons/*.svg
var iconFS embed.FS

// Icon names shipped with the module.
const (
	IconHome  = "home"
	IconRoute = "route"
)

// Icon returns the embedded SVG source for name, or nil if there is none.
func Icon(name string) []byte {
	data, err := iconFS.ReadFile("icons/" + name + ".svg")
	if err != nil {
		return nil
	}
	return data
}

// RasterizeIcon renders SVG source into a width x height RGBA image.
func RasterizeIcon(svg []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icon: invalid size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("icon: parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return img, nil
}
