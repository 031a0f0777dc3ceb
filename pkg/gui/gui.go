package gui

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/famigo-emu/famigo/pkg/input"
	"github.com/famigo-emu/famigo/pkg/logger"
	"github.com/famigo-emu/famigo/pkg/nes"
	"github.com/famigo-emu/famigo/pkg/ppu"
)

const (
	windowScale = 3
	windowTitle = "famigo"

	// NTSC frame rate: 1789773 / 29780.5 cycles per frame
	targetFPS = 60.0988
)

var targetFPSVar = targetFPS

var frameTime = time.Duration(float64(time.Second) / targetFPSVar)

// keyBindings maps SDL keycodes to pad-0 buttons
var keyBindings = map[sdl.Keycode]input.Button{
	sdl.K_z:     input.ButtonA,
	sdl.K_x:     input.ButtonB,
	sdl.K_a:     input.ButtonSelect,
	sdl.K_s:     input.ButtonStart,
	sdl.K_UP:    input.ButtonUp,
	sdl.K_DOWN:  input.ButtonDown,
	sdl.K_LEFT:  input.ButtonLeft,
	sdl.K_RIGHT: input.ButtonRight,
}

// GUI presents the console's framebuffer in an SDL window and feeds
// keyboard state into the controllers.
type GUI struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	console  *nes.Console
	running  bool

	fpsCounter int
	fpsTimer   time.Time
	currentFPS float64
}

// New creates the SDL window, renderer and streaming texture
func New(console *nes.Console) (*GUI, error) {
	// SDL wants the main thread
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to init SDL: %w", err)
	}

	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		ppu.ScreenWidth*windowScale,
		ppu.ScreenHeight*windowScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth,
		ppu.ScreenHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	return &GUI{
		window:   window,
		renderer: renderer,
		texture:  texture,
		console:  console,
		running:  true,
		fpsTimer: time.Now(),
	}, nil
}

// Destroy releases SDL resources
func (g *GUI) Destroy() {
	if g.texture != nil {
		g.texture.Destroy()
	}
	if g.renderer != nil {
		g.renderer.Destroy()
	}
	if g.window != nil {
		g.window.Destroy()
	}
	sdl.Quit()
}

// Run drives the console at 60 Hz until the window closes or the core
// reports a fatal error.
func (g *GUI) Run() error {
	frameCount := 0
	startTime := time.Now()

	for g.running {
		g.handleEvents()

		if err := g.console.StepFrame(); err != nil {
			return err
		}
		g.present()
		g.updateFPS()

		// Pace against total elapsed time so Sleep jitter doesn't drift
		frameCount++
		targetEnd := startTime.Add(time.Duration(frameCount) * frameTime)
		if now := time.Now(); now.Before(targetEnd) {
			time.Sleep(targetEnd.Sub(now))
		}
	}
	return nil
}

func (g *GUI) handleEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			g.running = false
		case *sdl.KeyboardEvent:
			g.handleKeyboard(e)
		}
	}
}

func (g *GUI) handleKeyboard(event *sdl.KeyboardEvent) {
	if event.Keysym.Sym == sdl.K_ESCAPE {
		g.running = false
		return
	}

	button, ok := keyBindings[event.Keysym.Sym]
	if !ok {
		return
	}
	if event.State == sdl.PRESSED {
		g.console.Press(0, button)
	} else {
		g.console.Release(0, button)
	}
}

func (g *GUI) present() {
	framebuffer := g.console.Framebuffer()
	g.texture.Update(nil, unsafe.Pointer(&framebuffer[0]), ppu.ScreenWidth*3)

	g.renderer.SetDrawColor(0, 0, 0, 255)
	g.renderer.Clear()
	g.renderer.Copy(g.texture, nil, nil)
	g.renderer.Present()
}

func (g *GUI) updateFPS() {
	g.fpsCounter++
	if elapsed := time.Since(g.fpsTimer); elapsed >= 500*time.Millisecond {
		g.currentFPS = float64(g.fpsCounter) / elapsed.Seconds()
		g.fpsCounter = 0
		g.fpsTimer = time.Now()
		g.window.SetTitle(fmt.Sprintf("%s - FPS: %.1f", windowTitle, g.currentFPS))

		deviation := (g.currentFPS - targetFPS) / targetFPS * 100
		if deviation > 5 || deviation < -5 {
			logger.LogInfo("FPS: %.2f (target %.2f)", g.currentFPS, targetFPS)
		}
	}
}
