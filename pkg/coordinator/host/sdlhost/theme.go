package sdlhost

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/config"
	"github.com/veandco/go-sdl2/sdl"
)

// Padding defines spacing on all four sides of the screen content.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Theme is the resolved visual configuration of the host.
type Theme struct {
	BackgroundColor sdl.Color
	TextColor       sdl.Color
	AccentColor     sdl.Color
	FontPath        string
	FontSize        int
	Padding         Padding
	IconSize        int32
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

func themeFromConfig(tc config.ThemeConfig) Theme {
	fontSize := tc.FontSize
	if fontSize == 0 {
		fontSize = 28
	}

	return Theme{
		BackgroundColor: HexToColor(tc.BackgroundColor),
		TextColor:       HexToColor(tc.TextColor),
		AccentColor:     HexToColor(tc.AccentColor),
		FontPath:        tc.FontPath,
		FontSize:        fontSize,
		Padding:         UniformPadding(int32(fontSize)),
		IconSize:        int32(fontSize) * 4,
	}
}
