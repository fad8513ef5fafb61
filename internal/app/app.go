// Package app implements the main application loop: window, camera,
// scene, and input wiring for the sculpting viewport.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/chisel3d/chisel/internal/config"
	"github.com/chisel3d/chisel/internal/engine/camera"
	"github.com/chisel3d/chisel/internal/engine/debug"
	"github.com/chisel3d/chisel/internal/engine/input"
	"github.com/chisel3d/chisel/internal/engine/mesh"
	"github.com/chisel3d/chisel/internal/engine/render"
	"github.com/chisel3d/chisel/internal/engine/scene"
	"github.com/chisel3d/chisel/internal/engine/window"
	"github.com/chisel3d/chisel/internal/logger"
)

// App is the main application instance.
type App struct {
	config  *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.OrbitCamera

	scene      *scene.Scene
	model      *mesh.Mesh
	meshBuffer *render.GLBuffer
	lines      *render.LineBuffer

	width  int
	height int

	drawOctree bool
	dragging   bool
	dragMoved  bool
}

// New creates the application. It owns the GL context for its lifetime.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config:     cfg,
		width:      cfg.Graphics.Width,
		height:     cfg.Graphics.Height,
		drawOctree: cfg.Graphics.DrawOctree,
	}

	// Create window (this also creates the OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      "Chisel",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL bindings must be initialized after the context exists
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)

	a.meshBuffer, err = render.NewGLBuffer()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create mesh buffer: %w", err)
	}
	if cfg.Graphics.Wireframe {
		a.meshBuffer.ToggleRenderMode()
	}

	a.lines, err = render.NewLineBuffer()
	if err != nil {
		a.meshBuffer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create line buffer: %w", err)
	}

	// Scene with the initial sculpting sphere
	a.scene = scene.New()
	a.model = a.scene.NewWingedMesh(a.meshBuffer)
	a.model.InitOctreeRoot(mgl32.Vec3{}, cfg.Sculpt.OctreeRootWidth)
	if err := mesh.Icosphere(a.model, mgl32.Vec3{}, cfg.Sculpt.SphereRadius, cfg.Sculpt.Subdivisions); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build initial sphere: %w", err)
	}
	a.model.WriteAndUpload()
	a.lines.SetLines(debug.OctreeWireframeVertices(a.model.Octree()))

	a.camera = camera.NewOrbitCamera()
	a.camera.Distance = cfg.Camera.Distance
	a.camera.FOV = mgl32.DegToRad(cfg.Camera.FOV)
	a.camera.DragSensitivity = cfg.Camera.DragSensitivity
	a.camera.ZoomSensitivity = cfg.Camera.ZoomSensitivity

	a.input = input.New()

	logger.Info("application initialized",
		zap.Int("vertices", a.model.NumVertices()),
		zap.Int("faces", a.model.NumFaces()),
	)
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		a.width = event.Width
		a.height = event.Height
		gl.Viewport(0, 0, int32(event.Width), int32(event.Height))

	case input.EventKeyDown:
		a.handleKey(event.Key)

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			a.dragging = true
			a.dragMoved = false
		}

	case input.EventMouseMove:
		if a.dragging && (event.RelX != 0 || event.RelY != 0) {
			a.dragMoved = true
			a.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
		}

	case input.EventMouseUp:
		if event.Button == sdl.BUTTON_LEFT {
			// A click without drag is a pick
			if !a.dragMoved {
				a.pick(event.MouseX, event.MouseY)
			}
			a.dragging = false
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float32(event.WheelY))
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_W:
		a.model.ToggleRenderMode()
	case sdl.SCANCODE_O:
		a.drawOctree = !a.drawOctree
		if a.drawOctree {
			a.lines.SetLines(debug.OctreeWireframeVertices(a.model.Octree()))
		}
	case sdl.SCANCODE_TAB:
		if a.scene.SelectionMode() == scene.SelectFreeform {
			a.scene.ChangeSelectionMode(scene.SelectSphereNode)
		} else {
			a.scene.ChangeSelectionMode(scene.SelectFreeform)
		}
		logger.Debug("selection mode changed", zap.Int("mode", int(a.scene.SelectionMode())))
	case sdl.SCANCODE_U:
		a.scene.UnselectAll()
	}
}

func (a *App) pick(x, y int) {
	ray := a.camera.ScreenRay(float32(x), float32(y), a.width, a.height)
	if a.scene.SelectIntersection(ray) {
		logger.Debug("selection toggled", zap.Int("selected", a.scene.NumSelections()))
	}
}

func (a *App) render() {
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := a.camera.ViewMatrix()
	projection := a.camera.ProjectionMatrix(a.width, a.height)
	a.meshBuffer.SetTransforms(mgl32.Ident4(), view, projection)

	a.scene.Render(scene.KindFreeform)

	if a.drawOctree {
		a.lines.SetTransform(projection.Mul4(view))
		a.lines.Render()
	}
}

// Close cleans up application resources.
func (a *App) Close() {
	logger.Info("closing application")

	if a.lines != nil {
		a.lines.Close()
	}
	if a.meshBuffer != nil {
		a.meshBuffer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
