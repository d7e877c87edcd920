// Package app hosts the sevenstone viewer: it assembles the enclosure once
// at startup, owns the camera and renderer, translates pointer input into
// camera motion, and draws a HUD overlay on top of each rendered frame.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"sevenstone/hal"
	"sevenstone/internal/buildinfo"
	"sevenstone/stonegl"
	"sevenstone/stonegl/masonry"
)

// Input translation: pixels of drag to radians, wheel steps to world units.
const (
	orbitSpeed stonegl.Scalar = 0.01
	zoomSpeed  stonegl.Scalar = 1.5
)

// App is the viewer session: one scene, one camera, one renderer.
type App struct {
	log      *zap.Logger
	cfg      Config
	scene    *stonegl.Scene
	cam      *stonegl.Camera
	home     stonegl.Camera // camera snapshot restored on reset
	renderer *stonegl.Renderer

	frames  int
	fps     float64
	fpsMark time.Time
}

// New loads the palette, assembles the enclosure and prepares the camera.
// Any geometry construction error surfaces here, before a window exists.
func New(cfg Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	bg, err := parseHexColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	pal, err := NewPalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	asm := masonry.NewAssembly(pal)
	asm.Walls = cfg.Walls
	asm.Rows = cfg.Rows
	asm.Columns = cfg.Columns
	asm.Apothem = cfg.Apothem
	asm.WallHeight = cfg.WallHeight
	asm.BlockDepth = cfg.BlockDepth

	start := time.Now()
	objs, err := asm.Build(stonegl.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("assemble enclosure: %w", err)
	}

	scene := stonegl.NewScene(bg)
	scene.AddObjects(objs...)

	faces := 0
	for _, o := range objs {
		faces += o.FaceCount()
	}
	log.Info("enclosure assembled",
		zap.Int("objects", len(objs)),
		zap.Int("faces", faces),
		zap.Duration("took", time.Since(start)))

	cam := stonegl.NewCamera()
	cam.Target = stonegl.V3(0, cfg.WallHeight/2, 0)
	cam.Radius = cfg.Apothem * 2.4
	cam.MinRadius = 1.0

	return &App{
		log:      log,
		cfg:      cfg,
		scene:    scene,
		cam:      cam,
		home:     *cam,
		renderer: stonegl.NewRenderer(log),
		fpsMark:  time.Now(),
	}, nil
}

// Scene exposes the assembled scene (used by the snapshot tool).
func (a *App) Scene() *stonegl.Scene { return a.scene }

// Camera exposes the viewer camera (used by the snapshot tool).
func (a *App) Camera() *stonegl.Camera { return a.cam }

// Renderer exposes the renderer.
func (a *App) Renderer() *stonegl.Renderer { return a.renderer }

// Step binds the app to a host and returns the per-frame step function.
func (a *App) Step(h hal.HAL) func() error {
	fb := h.Display().Framebuffer()
	input := h.Input()
	hud := newHUD(fb)
	return func() error {
		return a.frame(fb, input, hud)
	}
}

func (a *App) frame(fb hal.Framebuffer, input hal.Input, overlay *hud) error {
	if err := a.handleKeys(input.Keyboard()); err != nil {
		return err
	}
	a.handlePointer(input.Pointer().State())

	target := &stonegl.RGB565Target{
		Buf:    fb.Buffer(),
		Stride: fb.StrideBytes(),
		W:      fb.Width(),
		H:      fb.Height(),
	}
	a.renderer.Render(target, a.scene, a.cam)

	a.tickFPS()
	a.drawHUD(overlay)

	return fb.Present()
}

func (a *App) handleKeys(kbd hal.Keyboard) error {
	for {
		select {
		case ev := <-kbd.Events():
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape, ev.Rune == 'q':
				return hal.ErrShutdown
			case ev.Rune == 'r':
				*a.cam = a.home
			}
		default:
			return nil
		}
	}
}

func (a *App) handlePointer(p hal.PointerState) {
	if p.Primary {
		a.cam.Orbit(stonegl.Scalar(p.DY)*orbitSpeed, stonegl.Scalar(p.DX)*orbitSpeed)
	}
	if p.Secondary {
		a.cam.Pan(stonegl.Scalar(p.DX), stonegl.Scalar(p.DY))
	}
	if p.WheelY != 0 {
		a.cam.Zoom(stonegl.Scalar(-p.WheelY) * zoomSpeed)
	}
}

func (a *App) tickFPS() {
	a.frames++
	if since := time.Since(a.fpsMark); since >= time.Second {
		a.fps = float64(a.frames) / since.Seconds()
		a.frames = 0
		a.fpsMark = time.Now()
	}
}

func (a *App) drawHUD(overlay *hud) {
	stats := a.renderer.Stats()
	overlay.draw(
		"sevenstone "+buildinfo.Short(),
		fmt.Sprintf("objects %d  faces %d/%d  fps %.0f",
			a.scene.ObjectCount(), stats.Drawn, stats.Faces, a.fps),
		fmt.Sprintf("r %.1f  theta %.2f  phi %.2f",
			a.cam.Radius, a.cam.Theta, a.cam.Phi),
		"drag orbit  right-drag pan  wheel zoom  r reset  q quit",
	)
}
