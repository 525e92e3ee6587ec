package ebitengine

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

var (
	//go:embed shaders/base.kage
	baseKage []byte

	//go:embed shaders/magma.kage
	magmaKage []byte
)

var kageSources = map[string][]byte{
	gfx.ShaderBase:  baseKage,
	gfx.ShaderMagma: magmaKage,
}

// Kage uniforms are exported globals; map the shared names onto them.
var kageUniforms = map[string]string{
	gfx.UniformColor:      "Color",
	gfx.UniformTime:       "Time",
	gfx.UniformResolution: "Resolution",
}

// Renderer draws with Kage shaders onto the image Ebitengine hands to Draw.
// The model matrix is applied on the CPU; Ebitengine has no depth buffer.
type Renderer struct {
	target   *ebiten.Image
	vertices []core.Vertex
	uploaded bool

	textures []*ebiten.Image
	bound    *ebiten.Image
	current  *Program
}

// NewRenderer creates a renderer without a target.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetTarget sets the image the next draw calls go to.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// CompileProgram compiles the named Kage shader.
func (r *Renderer) CompileProgram(name string) (gfx.Program, error) {
	src, ok := kageSources[name]
	if !ok {
		return nil, fmt.Errorf("ebitengine: unknown shader program %q", name)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("ebitengine: compile %s: %w", name, err)
	}
	return &Program{
		r:        r,
		shader:   shader,
		model:    mgl32.Ident4(),
		uniforms: make(map[string]any),
	}, nil
}

// Upload keeps the vertices for CPU-side transforms. Called once.
func (r *Renderer) Upload(buf *gfx.Buffer) error {
	if r.uploaded {
		return errors.New("ebitengine: vertex buffer already uploaded")
	}
	r.vertices = buf.Vertices()
	r.uploaded = true
	return nil
}

// UploadTexture wraps img in an ebiten image.
func (r *Renderer) UploadTexture(img image.Image) (uint32, error) {
	r.textures = append(r.textures, ebiten.NewImageFromImage(img))
	return uint32(len(r.textures)), nil
}

// BindTexture selects the image passed to the shader; 0 unbinds.
func (r *Renderer) BindTexture(id uint32) {
	if id == 0 || int(id) > len(r.textures) {
		r.bound = nil
		return
	}
	r.bound = r.textures[id-1]
}

// Clear fills the target with c.
func (r *Renderer) Clear(c core.Color) {
	if r.target == nil {
		return
	}
	r.target.Fill(toNRGBA(c))
}

// EnableBlend is a no-op; Ebitengine blends source-over by default.
func (r *Renderer) EnableBlend() {}

// EnableDepth is a no-op; Ebitengine has no depth buffer.
func (r *Renderer) EnableDepth() {}

// DrawArrays draws count vertices from first as an indexed triangle list.
func (r *Renderer) DrawArrays(mode core.Topology, first, count int) {
	p := r.current
	if p == nil || r.target == nil || first < 0 || first+count > len(r.vertices) {
		return
	}
	idx := core.TriangleIndices(mode, count)
	if len(idx) == 0 {
		return
	}

	size := r.target.Bounds().Size()
	verts := screenVertices(r.vertices[first:first+count], p.model, float32(size.X), float32(size.Y))

	op := &ebiten.DrawTrianglesShaderOptions{Uniforms: p.uniforms}
	if r.bound != nil {
		op.Images[0] = r.bound
	}
	r.target.DrawTrianglesShader(verts, idx, p.shader, op)
}

// screenVertices transforms local vertices to pixel coordinates of a
// w×h image with y pointing down.
func screenVertices(vs []core.Vertex, model mgl32.Mat4, w, h float32) []ebiten.Vertex {
	out := make([]ebiten.Vertex, len(vs))
	for i, v := range vs {
		ndc := core.Apply(model, v)
		x, y := (ndc.X()+1)/2*w, (1-ndc.Y())/2*h
		out[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: x, SrcY: y,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	return out
}

func toNRGBA(c core.Color) color.NRGBA {
	to8 := func(v float32) uint8 {
		return uint8(core.ClampF(float64(v), 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Program is a compiled Kage shader plus the uniform values it draws with.
type Program struct {
	r        *Renderer
	shader   *ebiten.Shader
	model    mgl32.Mat4
	uniforms map[string]any
}

// Use makes the program current.
func (p *Program) Use() {
	p.r.current = p
}

// SetMat4 keeps the model matrix for the CPU transform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if name == gfx.UniformModel {
		p.model = m
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if k, ok := kageUniforms[name]; ok {
		p.uniforms[k] = v
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if k, ok := kageUniforms[name]; ok {
		p.uniforms[k] = []float32{v[0], v[1]}
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if k, ok := kageUniforms[name]; ok {
		p.uniforms[k] = []float32{v[0], v[1], v[2], v[3]}
	}
}
