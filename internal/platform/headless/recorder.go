package headless

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

// ErrAlreadyUploaded is returned when the vertex buffer is uploaded twice.
var ErrAlreadyUploaded = errors.New("headless: vertex buffer already uploaded")

// DrawCall is one recorded DrawArrays call with the uniforms in effect.
type DrawCall struct {
	Program string
	Mode    core.Topology
	First   int
	Count   int
	Model   mgl32.Mat4
	Color   mgl32.Vec4
	Texture uint32
}

// Recorder is a gfx.Renderer that records instead of drawing.
type Recorder struct {
	known    map[string]bool
	programs map[string]*Program
	current  *Program

	uploads  int
	data     []byte
	vertices int

	textures []image.Image
	bound    uint32

	Clears   []core.Color
	Calls    []DrawCall
	Blend    bool
	Depth    bool
	Compiled []string
}

// NewRecorder creates a recorder that knows the given shader programs.
// With no names it knows the programs every backend ships.
func NewRecorder(programs ...string) *Recorder {
	if len(programs) == 0 {
		programs = []string{gfx.ShaderBase, gfx.ShaderMagma}
	}
	known := make(map[string]bool, len(programs))
	for _, p := range programs {
		known[p] = true
	}
	return &Recorder{
		known:    known,
		programs: make(map[string]*Program),
	}
}

// Uploads returns how many times the vertex buffer was uploaded.
func (r *Recorder) Uploads() int {
	return r.uploads
}

// Data returns a copy of the uploaded buffer bytes.
func (r *Recorder) Data() []byte {
	return append([]byte(nil), r.data...)
}

// Program returns the compiled program with the given name, or nil.
func (r *Recorder) Program(name string) *Program {
	return r.programs[name]
}

// Textures returns the uploaded images in upload order.
func (r *Recorder) Textures() []image.Image {
	return r.textures
}

// Reset forgets recorded clears and draw calls.
func (r *Recorder) Reset() {
	r.Clears = nil
	r.Calls = nil
}

func (r *Recorder) CompileProgram(name string) (gfx.Program, error) {
	if !r.known[name] {
		return nil, fmt.Errorf("headless: unknown shader program %q", name)
	}
	p := &Program{
		name:     name,
		recorder: r,
		mat4:     make(map[string]mgl32.Mat4),
		floats:   make(map[string]float32),
		vec2:     make(map[string]mgl32.Vec2),
		vec4:     make(map[string]mgl32.Vec4),
	}
	r.programs[name] = p
	r.Compiled = append(r.Compiled, name)
	return p, nil
}

func (r *Recorder) Upload(buf *gfx.Buffer) error {
	if r.uploads > 0 {
		return ErrAlreadyUploaded
	}
	r.uploads++
	r.data = buf.Bytes()
	r.vertices = buf.Len()
	return nil
}

func (r *Recorder) UploadTexture(img image.Image) (uint32, error) {
	r.textures = append(r.textures, img)
	return uint32(len(r.textures)), nil
}

func (r *Recorder) BindTexture(id uint32) {
	r.bound = id
}

func (r *Recorder) Clear(c core.Color) {
	r.Clears = append(r.Clears, c)
}

func (r *Recorder) EnableBlend() {
	r.Blend = true
}

func (r *Recorder) EnableDepth() {
	r.Depth = true
}

func (r *Recorder) DrawArrays(mode core.Topology, first, count int) {
	call := DrawCall{Mode: mode, First: first, Count: count, Texture: r.bound}
	if r.current != nil {
		call.Program = r.current.name
		call.Model = r.current.mat4[gfx.UniformModel]
		call.Color = r.current.vec4[gfx.UniformColor]
	}
	r.Calls = append(r.Calls, call)
}

// Program is a recorded shader program holding the last value of each uniform.
type Program struct {
	name     string
	recorder *Recorder

	mat4   map[string]mgl32.Mat4
	floats map[string]float32
	vec2   map[string]mgl32.Vec2
	vec4   map[string]mgl32.Vec4
}

// Name returns the program name.
func (p *Program) Name() string {
	return p.name
}

// Float returns the last value set for a float uniform.
func (p *Program) Float(name string) float32 {
	return p.floats[name]
}

// Vec2 returns the last value set for a vec2 uniform.
func (p *Program) Vec2(name string) mgl32.Vec2 {
	return p.vec2[name]
}

func (p *Program) Use() {
	p.recorder.current = p
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	p.mat4[name] = m
}

func (p *Program) SetFloat(name string, v float32) {
	p.floats[name] = v
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	p.vec2[name] = v
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	p.vec4[name] = v
}
