package sdlhost

import (
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/config"
	"github.com/veandco/go-sdl2/sdl"
)

// windowFlags converts the configured window options to SDL window flags.
func windowFlags(wc config.WindowConfig) uint32 {
	var flags uint32

	if !wc.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wc.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wc.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wc.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if wc.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}
