// Package renderer draws a loaded scene with OpenGL.
package renderer

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/debug"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/engine/renderer/shaders"
	"github.com/Faultbox/sceneview/internal/engine/shader"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
	"github.com/Faultbox/sceneview/pkg/formats"
	"github.com/Faultbox/sceneview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background [3]float32
}

// boundsColor is the bounds overlay line colour.
var boundsColor = [3]float32{1, 1, 0}

// gpuMesh is one uploaded draw item.
type gpuMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
	material    *formats.Material
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram *shader.Program
	bboxProgram *shader.Program

	meshes []gpuMesh

	bboxVAO   uint32
	bboxVBO   uint32
	hasBounds bool
}

// New creates a new renderer.
// Must be called after the OpenGL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)

	var err error
	r.meshProgram, err = shader.New(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.bboxProgram, err = shader.New(shaders.BboxVertexShader, shaders.BboxFragmentShader)
	if err != nil {
		r.meshProgram.Delete()
		return nil, fmt.Errorf("bbox shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.bboxVAO)
	gl.GenBuffers(1, &r.bboxVBO)
	gl.BindVertexArray(r.bboxVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bboxVBO)
	gl.BufferData(gl.ARRAY_BUFFER, debug.BBoxWireframeVertexCount*3*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.clearMeshes()
	if r.bboxVAO != 0 {
		gl.DeleteVertexArrays(1, &r.bboxVAO)
	}
	if r.bboxVBO != 0 {
		gl.DeleteBuffers(1, &r.bboxVBO)
	}
	if r.meshProgram != nil {
		r.meshProgram.Delete()
	}
	if r.bboxProgram != nil {
		r.bboxProgram.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload replaces the GPU copy of the scene with items.
// Opaque items are ordered before transparent ones.
func (r *Renderer) Upload(items []scene.DrawItem) {
	r.clearMeshes()

	ordered := make([]scene.DrawItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].Material.Transparent() && ordered[j].Material.Transparent()
	})

	for _, it := range ordered {
		verts := Triangulate(it.Mesh)
		if len(verts) == 0 {
			continue
		}
		m := gpuMesh{
			vertexCount: int32(len(verts) / floatsPerVertex),
			material:    it.Material,
		}
		gl.GenVertexArrays(1, &m.vao)
		gl.BindVertexArray(m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

		stride := int32(floatsPerVertex * 4)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
		gl.EnableVertexAttribArray(1)

		r.meshes = append(r.meshes, m)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("scene uploaded", zap.Int("draw_items", len(r.meshes)))
}

// SetBounds updates the bounds overlay. ok false hides it.
func (r *Renderer) SetBounds(b math.Bounds, ok bool) {
	r.hasBounds = ok
	if !ok {
		return
	}
	verts := debug.BoundsWireframe(b, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bboxVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders one frame from the camera's point of view.
func (r *Renderer) Draw(frame *camera.Frame, rig lighting.Rig, showBounds bool) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := frame.ProjectionMatrix().Mul4(frame.ViewMatrix())

	p := r.meshProgram
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetVec3("uViewPos", frame.Eye.Array())
	p.SetVec3("uAmbientLight", rig.Ambient)
	for i, l := range [2]lighting.PointLight{rig.Key, rig.Fill} {
		prefix := fmt.Sprintf("uLights[%d].", i)
		p.SetVec3(prefix+"position", l.Position.Array())
		p.SetVec3(prefix+"diffuse", l.Diffuse)
		p.SetVec3(prefix+"specular", l.Specular)
	}

	blending := false
	for _, m := range r.meshes {
		mat := m.material
		if mat.Transparent() && !blending {
			gl.Enable(gl.BLEND)
			gl.DepthMask(false)
			blending = true
		}
		p.SetVec3("uKa", mat.Ambient.Array())
		p.SetVec3("uKd", mat.Diffuse.Array())
		p.SetVec3("uKs", mat.Specular.Array())
		p.SetFloat("uNs", float32(mat.Shininess))
		p.SetFloat("uOpacity", float32(mat.Opacity))

		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	if blending {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}

	if showBounds && r.hasBounds {
		r.bboxProgram.Use()
		r.bboxProgram.SetMat4("uViewProj", viewProj)
		r.bboxProgram.SetVec3("uColor", boundsColor)
		gl.BindVertexArray(r.bboxVAO)
		gl.DrawArrays(gl.LINES, 0, debug.BBoxWireframeVertexCount)
	}

	gl.BindVertexArray(0)
}

func (r *Renderer) clearMeshes() {
	for i := range r.meshes {
		gl.DeleteVertexArrays(1, &r.meshes[i].vao)
		gl.DeleteBuffers(1, &r.meshes[i].vbo)
	}
	r.meshes = r.meshes[:0]
}
