// Package sdlhost presents navigation screens in an SDL window.
//
// All methods must be called from the goroutine that called New, which
// must be locked to the main OS thread.
package sdlhost

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/config"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/host"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const hintMessageID = "press_any_key"

// Host owns an SDL window and renderer.
type Host struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	font      *ttf.Font
	theme     Theme
	title     string
	localizer *i18n.Localizer
	icons     *textureCache
	logger    *slog.Logger
}

// New initializes SDL and opens the window described by cfg.
func New(cfg config.Config, localizer *i18n.Localizer) (*Host, error) {
	logger := internal.GetInternalLogger()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdlhost: init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: init ttf: %w", err)
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logger.Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	title := cfg.Title
	if title == "" {
		title = internal.Translate(localizer, "app_title", "Coordinator")
	}

	logger.Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, windowFlags(cfg.Window))
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logger.Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			ttf.Quit()
			sdl.Quit()
			return nil, fmt.Errorf("sdlhost: create renderer: %w", err)
		}
	}

	h := &Host{
		window:    window,
		renderer:  renderer,
		theme:     themeFromConfig(cfg.Theme),
		title:     title,
		localizer: localizer,
		icons:     newTextureCache(defaultMaxCacheSize),
		logger:    logger,
	}

	if h.theme.FontPath != "" {
		font, err := ttf.OpenFont(h.theme.FontPath, h.theme.FontSize)
		if err != nil {
			logger.Error("Failed to open font, text will not be drawn", "path", h.theme.FontPath, "error", err)
		} else {
			h.font = font
		}
	}

	return h, nil
}

// Present draws screen and shows it.
func (h *Host) Present(screen navigation.Screen) error {
	screenTitle := internal.Translate(h.localizer, screen.TitleID, screen.Title)
	h.window.SetTitle(fmt.Sprintf("%s - %s", h.title, screenTitle))

	bg := h.theme.BackgroundColor
	if err := h.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A); err != nil {
		return fmt.Errorf("sdlhost: set draw color: %w", err)
	}
	if err := h.renderer.Clear(); err != nil {
		return fmt.Errorf("sdlhost: clear: %w", err)
	}

	width, height := h.window.GetSize()
	pad := h.theme.Padding

	if err := h.drawIcon(screen, width-pad.Right-h.theme.IconSize, pad.Top); err != nil {
		// Screens stay usable without their icon.
		h.logger.Warn("Failed to draw icon", "screen", screen.Name, "error", err)
	}

	y := pad.Top
	lineHeight, err := h.drawText(screenTitle, h.theme.AccentColor, pad.Left, y)
	if err != nil {
		return err
	}
	y += lineHeight * 2

	for _, line := range screen.Lines {
		lineHeight, err = h.drawText(line, h.theme.TextColor, pad.Left, y)
		if err != nil {
			return err
		}
		y += lineHeight
	}

	hint := internal.Translate(h.localizer, hintMessageID, "Press any key to continue")
	if _, err := h.drawText(hint, h.theme.TextColor, pad.Left, height-pad.Bottom-h.lineHeight()); err != nil {
		return err
	}

	h.renderer.Present()
	return nil
}

func (h *Host) lineHeight() int32 {
	if h.font == nil {
		return int32(h.theme.FontSize)
	}
	return int32(h.font.Height())
}

// drawText renders text at x, y and returns the line height used.
func (h *Host) drawText(text string, color sdl.Color, x, y int32) (int32, error) {
	if h.font == nil || text == "" {
		return h.lineHeight(), nil
	}

	surface, err := h.font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, fmt.Errorf("sdlhost: render text: %w", err)
	}
	defer surface.Free()

	texture, err := h.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, fmt.Errorf("sdlhost: text texture: %w", err)
	}
	defer texture.Destroy()

	dst := &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	if err := h.renderer.Copy(texture, nil, dst); err != nil {
		return 0, fmt.Errorf("sdlhost: copy text: %w", err)
	}
	return h.lineHeight(), nil
}

func (h *Host) drawIcon(screen navigation.Screen, x, y int32) error {
	if len(screen.Icon) == 0 {
		return nil
	}

	size := h.theme.IconSize
	texture := h.icons.get(screen.Name)
	if texture == nil {
		var err error
		texture, err = h.iconTexture(screen.Icon, size)
		if err != nil {
			return err
		}
		h.icons.set(screen.Name, texture)
	}

	accent := h.theme.AccentColor
	backdrop := &sdl.Rect{X: x, Y: y, W: size, H: size}
	if err := h.renderer.SetDrawColor(accent.R, accent.G, accent.B, accent.A); err != nil {
		return err
	}
	if err := h.renderer.FillRect(backdrop); err != nil {
		return err
	}
	return h.renderer.Copy(texture, nil, backdrop)
}

func (h *Host) iconTexture(svg []byte, size int32) (*sdl.Texture, error) {
	img, err := internal.RasterizeIcon(svg, int(size), int(size))
	if err != nil {
		return nil, err
	}

	// RGBA byte order on a little-endian host.
	surface, err := sdl.CreateRGBSurface(0, size, size, 32, 0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: icon surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("sdlhost: lock icon surface: %w", err)
	}
	pixels := surface.Pixels()
	rowBytes := int(size) * 4
	for row := 0; row < int(size); row++ {
		copy(pixels[row*int(surface.Pitch):row*int(surface.Pitch)+rowBytes], img.Pix[row*img.Stride:row*img.Stride+rowBytes])
	}
	surface.Unlock()

	texture, err := h.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: icon texture: %w", err)
	}
	return texture, nil
}

// NextInput blocks until a key is pressed or the window is closed.
// Digits select menu entries, Escape and Backspace go back, Q quits.
func (h *Host) NextInput() (host.Input, bool) {
	for {
		switch e := sdl.WaitEvent().(type) {
		case nil:
			return host.Input{}, false
		case *sdl.QuitEvent:
			return host.Input{Kind: host.InputQuit}, true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			return keyToInput(e.Keysym.Sym), true
		}
	}
}

func keyToInput(key sdl.Keycode) host.Input {
	switch {
	case key >= sdl.K_1 && key <= sdl.K_9:
		return host.Input{Kind: host.InputSelect, Index: int(key - sdl.K_1)}
	case key == sdl.K_ESCAPE, key == sdl.K_BACKSPACE:
		return host.Input{Kind: host.InputBack}
	case key == sdl.K_q:
		return host.Input{Kind: host.InputQuit}
	default:
		return host.Input{Kind: host.InputNext}
	}
}

// Close releases every SDL resource.
func (h *Host) Close() {
	h.icons.destroy()
	if h.font != nil {
		h.font.Close()
	}
	h.renderer.Destroy()
	h.window.Destroy()
	ttf.Quit()
	sdl.Quit()
}
