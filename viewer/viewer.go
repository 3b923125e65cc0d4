// Package viewer wires the tracking, parallax, and rendering pieces into a
// single interactive application object. All mutable state lives on the
// Viewer; there are no package-level globals.
package viewer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"diorama-viewer/core"
	"diorama-viewer/internal/log"
	dvMath "diorama-viewer/math"
	"diorama-viewer/parallax"
	"diorama-viewer/renderer"
	"diorama-viewer/scene"
	"diorama-viewer/tracking"
)

// Options configures a Viewer.
type Options struct {
	Parallax      parallax.Config
	Sensitivity   tracking.Sensitivity
	BoxHeight     float32
	BoxDepth      float32
	RoomDivisions int
}

// DefaultOptions returns the standard diorama setup: a 10-unit box with
// square grid cells and the default tracking ranges.
func DefaultOptions() Options {
	return Options{
		Parallax:      parallax.DefaultConfig(),
		Sensitivity:   tracking.DefaultSensitivity(),
		BoxHeight:     10,
		BoxDepth:      10,
		RoomDivisions: 10,
	}
}

// Viewer owns the window, render engine, scene, and the parallax pipeline
// state. Construct with New, feed it a tracking Slot, and call Run.
type Viewer struct {
	window *core.Window
	engine *renderer.RenderEngine
	scn    *scene.Scene
	camera *scene.Camera

	box         *parallax.Box
	controller  *parallax.Controller
	conditioner *tracking.Conditioner
	slot        *tracking.Slot

	modelPivot  *scene.Node
	roomGrid    *scene.Node
	roomOutline *scene.Node
	divisions   int

	showRoom bool
	frozen   bool

	// Key edge-detection latches
	gWasDown bool
	rWasDown bool
	zWasDown bool

	// FPS title bookkeeping
	frameCount int
	lastTitle  time.Time
}

// New builds a Viewer on an already-created window and render engine. The
// tracking slot may be shared with a Runner goroutine; the viewer only ever
// reads it.
func New(window *core.Window, engine *renderer.RenderEngine, slot *tracking.Slot, opts Options) (*Viewer, error) {
	conditioner, err := tracking.NewConditioner(opts.Sensitivity)
	if err != nil {
		return nil, fmt.Errorf("conditioner: %w", err)
	}

	controller, err := parallax.NewController(opts.Parallax)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	box, err := parallax.NewBox(opts.BoxHeight, opts.BoxDepth)
	if err != nil {
		return nil, fmt.Errorf("box: %w", err)
	}

	s := scene.NewScene()
	s.SetCamera(scene.NewCamera(opts.Parallax.Near, opts.Parallax.Far))
	s.AddLight(&scene.Light{
		Type:      scene.LightTypeDirectional,
		Direction: dvMath.Vec3{X: 0.3, Y: -0.6, Z: -0.8}.Normalize(),
		Color:     core.ColorWhite,
		Intensity: 0.9,
	})

	v := &Viewer{
		window:      window,
		engine:      engine,
		scn:         s,
		camera:      s.Camera,
		box:         box,
		controller:  controller,
		conditioner: conditioner,
		slot:        slot,
		modelPivot:  scene.NewNode("ModelPivot"),
		divisions:   opts.RoomDivisions,
		showRoom:    true,
		lastTitle:   time.Now(),
	}
	s.AddNode(v.modelPivot)

	engine.SetScene(s)

	// Seed box dimensions from the real framebuffer and build the room.
	w, h := window.GetFramebufferSize()
	box.Resize(w, h)
	v.rebuildRoom()

	window.SetResizeCallback(v.handleResize)

	return v, nil
}

// LoadModel loads a GLB/GLTF or OBJ file, uploads its textures, attaches it
// under the model pivot, and fits it into the room.
func (v *Viewer) LoadModel(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		result, err := scene.LoadGLTF(path)
		if err != nil {
			return err
		}
		for _, tex := range result.Textures {
			if err := v.engine.UploadTexture(tex); err != nil {
				log.Warn("texture upload failed", "texture", tex.Name, "err", err)
			}
		}
		for _, root := range result.Roots {
			v.modelPivot.AddChild(root)
		}
	case ".obj":
		meshes, err := scene.LoadOBJ(path)
		if err != nil {
			return err
		}
		for _, m := range meshes {
			if m.Material != nil && m.Material.AlbedoTexture != nil {
				if err := v.engine.UploadTexture(m.Material.AlbedoTexture); err != nil {
					log.Warn("texture upload failed", "texture", m.Material.AlbedoTexture.Name, "err", err)
				}
			}
			n := scene.NewNode(m.Name)
			n.Mesh = m
			v.modelPivot.AddChild(n)
		}
	default:
		return fmt.Errorf("unsupported model format %q", filepath.Ext(path))
	}

	scene.FitToBox(v.modelPivot, v.box.Dims())
	log.Info("model loaded", "path", path)
	return nil
}

// handleResize runs synchronously inside PollEvents, before the next frame's
// camera math. The GL viewport must follow every framebuffer change, even an
// aspect-preserving one that leaves the box dimensions untouched; the room
// rebuild and model refit only happen when the dimensions actually changed.
func (v *Viewer) handleResize(width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized window; keep previous state.
		return
	}
	v.engine.Resize(uint32(width), uint32(height))
	if !v.box.Resize(width, height) {
		return
	}
	v.rebuildRoom()
	scene.FitToBox(v.modelPivot, v.box.Dims())
}

// rebuildRoom replaces the room grid and outline meshes with ones matching
// the current box dimensions.
func (v *Viewer) rebuildRoom() {
	dims := v.box.Dims()

	if v.roomGrid != nil {
		v.engine.ReleaseMesh(v.roomGrid.Mesh)
		v.scn.RemoveNode(v.roomGrid)
	}
	if v.roomOutline != nil {
		v.engine.ReleaseMesh(v.roomOutline.Mesh)
		v.scn.RemoveNode(v.roomOutline)
	}

	v.roomGrid = scene.NewNode("RoomGrid")
	v.roomGrid.Mesh = scene.CreateRoomGrid(dims, v.divisions)
	v.roomGrid.Visible = v.showRoom
	v.scn.AddNode(v.roomGrid)

	v.roomOutline = scene.NewNode("RoomOutline")
	v.roomOutline.Mesh = scene.CreateRoomOutline(dims)
	v.roomOutline.Visible = v.showRoom
	v.scn.AddNode(v.roomOutline)
}

// Step renders one frame: handle input, read the latest tracking sample,
// condition it, compute the parallax pose, and draw.
func (v *Viewer) Step() error {
	v.handleInput()

	var raw *tracking.Offset
	if !v.frozen {
		if o, ok := v.slot.Load(); ok {
			raw = &o
		}
	}
	conditioned := v.conditioner.Condition(raw)

	pose := v.controller.ComputeFrame(conditioned, v.box.Dims())
	v.camera.ApplyPose(pose)

	if err := v.engine.Render(); err != nil {
		return err
	}
	v.engine.Present()

	v.updateTitle(pose)
	return nil
}

// handleInput processes keyboard toggles: G shows/hides the room, R resets
// the view to center, Z toggles wireframe.
func (v *Viewer) handleInput() {
	gDown := v.window.IsKeyPressed(core.KeyG)
	if gDown && !v.gWasDown {
		v.showRoom = !v.showRoom
		v.roomGrid.Visible = v.showRoom
		v.roomOutline.Visible = v.showRoom
	}
	v.gWasDown = gDown

	rDown := v.window.IsKeyPressed(core.KeyR)
	if rDown && !v.rWasDown {
		v.frozen = !v.frozen
		if v.frozen {
			v.conditioner.Reset()
		}
	}
	v.rWasDown = rDown

	zDown := v.window.IsKeyPressed(core.KeyZ)
	if zDown && !v.zWasDown {
		v.engine.SetWireframe(!v.engine.IsWireframe())
	}
	v.zWasDown = zDown
}

// updateTitle refreshes the window title with an FPS readout once a second.
func (v *Viewer) updateTitle(pose parallax.Pose) {
	v.frameCount++
	if elapsed := time.Since(v.lastTitle); elapsed.Seconds() >= 1.0 {
		v.window.SetTitle(fmt.Sprintf("Diorama Viewer | FPS: %d | eye (%.1f, %.1f, %.1f)",
			v.frameCount, pose.Eye.X, pose.Eye.Y, pose.Eye.Z))
		v.frameCount = 0
		v.lastTitle = time.Now()
	}
}

// Run drives the render loop until the window closes or Escape is pressed.
func (v *Viewer) Run() error {
	for !v.window.ShouldClose() {
		v.window.PollEvents()
		if v.window.IsKeyPressed(core.KeyEscape) {
			return nil
		}
		if err := v.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Scene exposes the scene graph for additional setup before Run.
func (v *Viewer) Scene() *scene.Scene {
	return v.scn
}
