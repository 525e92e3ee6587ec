package tui

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

// Renderer rasterises draw calls onto a cell screen. Each cell whose
// centre lies inside a triangle is painted with the program's colour.
type Renderer struct {
	screen   *core.Screen
	vertices []core.Vertex
	uploaded bool
	textures int

	current *program
}

// NewRenderer creates a renderer drawing onto screen.
func NewRenderer(screen *core.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the target screen.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

func (r *Renderer) CompileProgram(name string) (gfx.Program, error) {
	switch name {
	case gfx.ShaderBase, gfx.ShaderMagma:
		return &program{name: name, r: r, model: mgl32.Ident4()}, nil
	default:
		return nil, fmt.Errorf("tui: unknown shader program %q", name)
	}
}

func (r *Renderer) Upload(buf *gfx.Buffer) error {
	if r.uploaded {
		return errors.New("tui: vertex buffer already uploaded")
	}
	r.vertices = buf.Vertices()
	r.uploaded = true
	return nil
}

// UploadTexture accepts the image but cells are painted flat.
func (r *Renderer) UploadTexture(image.Image) (uint32, error) {
	r.textures++
	return uint32(r.textures), nil
}

func (r *Renderer) BindTexture(uint32) {}

func (r *Renderer) Clear(c core.Color) {
	r.screen.Fill(c)
}

func (r *Renderer) EnableBlend() {}

func (r *Renderer) EnableDepth() {}

func (r *Renderer) DrawArrays(mode core.Topology, first, count int) {
	p := r.current
	if p == nil || first < 0 || first+count > len(r.vertices) {
		return
	}

	// NDC to cell coordinates, y down
	w, h := float32(r.screen.Width()), float32(r.screen.Height())
	pts := make([]mgl32.Vec2, count)
	for i, v := range r.vertices[first : first+count] {
		ndc := core.Apply(p.model, v)
		pts[i] = mgl32.Vec2{(ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h}
	}

	idx := core.TriangleIndices(mode, count)
	for i := 0; i+2 < len(idx); i += 3 {
		r.fillTriangle(pts[idx[i]], pts[idx[i+1]], pts[idx[i+2]], p)
	}
}

func (r *Renderer) fillTriangle(a, b, c mgl32.Vec2, p *program) {
	area := edge(a, b, c)
	if area == 0 {
		return
	}

	minX := max(0, int(math.Floor(float64(min(a.X(), b.X(), c.X())))))
	maxX := min(r.screen.Width()-1, int(math.Ceil(float64(max(a.X(), b.X(), c.X())))))
	minY := max(0, int(math.Floor(float64(min(a.Y(), b.Y(), c.Y())))))
	maxY := min(r.screen.Height()-1, int(math.Ceil(float64(max(a.Y(), b.Y(), c.Y())))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pt := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
			w0, w1, w2 := edge(b, c, pt), edge(c, a, pt), edge(a, b, pt)
			// Accept both windings
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				r.screen.Paint(x, y, p.shade(x, y))
			}
		}
	}
}

func edge(a, b, p mgl32.Vec2) float32 {
	return (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
}

// program mirrors the uniforms the shaders read.
type program struct {
	name string
	r    *Renderer

	model      mgl32.Mat4
	color      mgl32.Vec4
	time       float32
	resolution mgl32.Vec2
}

func (p *program) Use() {
	p.r.current = p
}

func (p *program) SetMat4(name string, m mgl32.Mat4) {
	if name == gfx.UniformModel {
		p.model = m
	}
}

func (p *program) SetFloat(name string, v float32) {
	if name == gfx.UniformTime {
		p.time = v
	}
}

func (p *program) SetVec2(name string, v mgl32.Vec2) {
	if name == gfx.UniformResolution {
		p.resolution = v
	}
}

func (p *program) SetVec4(name string, v mgl32.Vec4) {
	if name == gfx.UniformColor {
		p.color = v
	}
}

// shade returns the colour of one cell. The magma program flickers between
// red and yellow over time and space.
func (p *program) shade(x, y int) core.Color {
	c := core.ColorFromVec4(p.color)
	if p.name != gfx.ShaderMagma {
		return c
	}
	f := 0.5 + 0.5*float32(math.Sin(float64(p.time)*400+float64(x)*0.7+float64(y)*1.3))
	return core.RGBA(1, 0.2+0.5*f, 0.05*f, c.A)
}
