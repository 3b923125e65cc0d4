package renderer

import (
	"fmt"

	"diorama-viewer/core"
	"diorama-viewer/internal/log"
	"diorama-viewer/internal/opengl"
	"diorama-viewer/scene"
)

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl             *opengl.Renderer
	window         *core.Window
	Scene          *scene.Scene
	FrustumCulling bool

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
	lastCulled    int
}

func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	glRenderer.SetViewport(window.Width, window.Height)

	log.Info("render engine initialized", "backend", "OpenGL")
	return &RenderEngine{
		gl:             glRenderer,
		window:         window,
		FrustumCulling: true,
	}, nil
}

func (re *RenderEngine) SetScene(s *scene.Scene) {
	re.Scene = s
}

// Render draws the scene with the camera's current pose. The caller is
// responsible for applying the per-frame parallax pose to the camera before
// calling Render.
func (re *RenderEngine) Render() error {
	if re.Scene == nil || re.Scene.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	re.gl.BeginFrame(
		re.Scene.SkyColor,
		re.Scene.Lights,
		re.Scene.Ambient,
		re.Scene.Camera.Position,
	)

	view := re.Scene.Camera.GetViewMatrix()
	proj := re.Scene.Camera.GetProjectionMatrix()

	// Build view-projection matrix for frustum culling
	vp := view.Mul(proj)
	frustum := scene.FrustumFromVP(vp)

	objects, vertices, triangles, culled := 0, 0, 0, 0

	for _, node := range re.Scene.GetVisibleNodes() {
		if node.Mesh == nil {
			continue
		}

		model := node.GetWorldMatrix()

		// Frustum culling: skip draw if AABB is completely outside the frustum
		if re.FrustumCulling {
			aabb := scene.ComputeAABB(node.Mesh, model)
			if !aabb.IntersectsFrustum(&frustum) {
				culled++
				continue
			}
		}

		mvp := model.Mul(view).Mul(proj)
		re.gl.DrawMesh(node.Mesh, mvp, model)

		objects++
		vertices += len(node.Mesh.Vertices)
		triangles += len(node.Mesh.Indices) / 3
	}

	re.lastObjects = objects
	re.lastVertices = vertices
	re.lastTriangles = triangles
	re.lastCulled = culled

	return nil
}

// Present swaps buffers. Call after Render().
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

func (re *RenderEngine) Resize(width, height uint32) {
	re.gl.SetViewport(int(width), int(height))
}

func (re *RenderEngine) SetWireframe(enabled bool) {
	re.gl.SetWireframe(enabled)
}

func (re *RenderEngine) IsWireframe() bool {
	return re.gl.IsWireframe()
}

// UploadTexture uploads a texture to the GPU (main goroutine only).
func (re *RenderEngine) UploadTexture(tex *scene.Texture) error {
	return opengl.UploadTexture(tex)
}

func (re *RenderEngine) DeleteTexture(tex *scene.Texture) {
	opengl.DeleteTexture(tex)
}

// ReleaseMesh frees the GPU buffers of a mesh that is being replaced, such
// as the room grid after a resize.
func (re *RenderEngine) ReleaseMesh(mesh *scene.Mesh) {
	re.gl.ReleaseMesh(mesh)
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns the draw statistics of the last Render call.
func (re *RenderEngine) DrawStats() (objects, vertices, triangles, culled int) {
	return re.lastObjects, re.lastVertices, re.lastTriangles, re.lastCulled
}
