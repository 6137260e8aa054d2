// planeview is an OpenGL preview tool for generated plane meshes.
package main

import (
	"fmt"
	gomath "math"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/planegen/internal/config"
	"github.com/Faultbox/planegen/internal/logger"
	"github.com/Faultbox/planegen/internal/viewer"
	"github.com/Faultbox/planegen/pkg/genmesh"
	"github.com/Faultbox/planegen/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Grid.SubdivideX < 1 || cfg.Grid.SubdivideY < 1 {
		logger.Error("subdivisions must be at least 1",
			zap.Int("x", cfg.Grid.SubdivideX),
			zap.Int("y", cfg.Grid.SubdivideY),
		)
		os.Exit(1)
	}

	plane := genmesh.Subdivide(cfg.Grid.SubdivideX, cfg.Grid.SubdivideY)
	logger.Info("generated plane",
		zap.Int("x", plane.SubdivideX()),
		zap.Int("y", plane.SubdivideY()),
		zap.Int("vertices", plane.VertexCount()),
		zap.Int("faces", plane.PolygonCount()),
	)

	title := fmt.Sprintf("planeview - %dx%d", plane.SubdivideX(), plane.SubdivideY())
	win, err := viewer.NewWindow(viewer.WindowConfig{
		Title:  title,
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		logger.Error("OpenGL init failed", zap.Error(err))
		os.Exit(1)
	}

	renderer, err := viewer.NewRenderer(plane)
	if err != nil {
		logger.Error("failed to create renderer", zap.Error(err))
		os.Exit(1)
	}
	defer renderer.Destroy()

	run(win, renderer, cfg.Viewer.Wireframe)

	logger.Info("viewer closed normally")
}

func run(win *viewer.Window, renderer *viewer.Renderer, wireframe bool) {
	cam := viewer.NewOrbitCamera()

	gl.Enable(gl.DEPTH_TEST)
	// No face culling: the plane should stay visible from behind.

	var dragging bool
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					switch e.Keysym.Scancode {
					case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
						running = false
					case sdl.SCANCODE_W:
						wireframe = !wireframe
					}
				}

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}

			case *sdl.MouseMotionEvent:
				if dragging {
					cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}

			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))
			}
		}

		width, height := win.Size()
		gl.Viewport(0, 0, int32(width), int32(height))
		gl.ClearColor(0.08, 0.09, 0.11, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		proj := math.Perspective(
			float32(gomath.Pi/4),
			float32(width)/float32(height),
			0.1, 100.0,
		)
		mvp := proj.Mul(cam.ViewMatrix())
		renderer.Draw(mvp, wireframe)

		win.SwapBuffers()
	}
}
