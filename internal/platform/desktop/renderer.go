package desktop

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

// Renderer draws with OpenGL. The window's context must be current.
type Renderer struct {
	vao, vbo uint32
	uploaded bool
}

// NewRenderer creates a renderer for the current context.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// CompileProgram compiles and links the named GLSL program.
func (r *Renderer) CompileProgram(name string) (gfx.Program, error) {
	frag, ok := fragmentShaders[name]
	if !ok {
		return nil, fmt.Errorf("desktop: unknown shader program %q", name)
	}

	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("desktop: %s vertex shader: %w", name, err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(frag, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("desktop: %s fragment shader: %w", name, err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(id, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("desktop: link %s: %s", name, msg)
	}

	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, errors.New(msg)
	}
	return shader, nil
}

func infoLog(id uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(id, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return "unknown error"
	}
	log := strings.Repeat("\x00", int(n+1))
	read(id, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

// Upload fills the VBO and sets up the vertex layout. Called once.
func (r *Renderer) Upload(buf *gfx.Buffer) error {
	if r.uploaded {
		return errors.New("desktop: vertex buffer already uploaded")
	}
	data := buf.Bytes()
	if len(data) == 0 {
		return errors.New("desktop: empty vertex buffer")
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, core.VertexSize, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	r.uploaded = true
	return nil
}

// UploadTexture uploads img as an RGBA texture with mipmaps.
func (r *Renderer) UploadTexture(img image.Image) (uint32, error) {
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return 0, fmt.Errorf("desktop: upload texture: gl error 0x%x", code)
	}
	return id, nil
}

// BindTexture binds texture id to unit 0.
func (r *Renderer) BindTexture(id uint32) {
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// Clear clears the colour and depth buffers to c.
func (r *Renderer) Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EnableBlend turns on source-alpha blending.
func (r *Renderer) EnableBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// EnableDepth turns on depth testing.
func (r *Renderer) EnableDepth() {
	gl.Enable(gl.DEPTH_TEST)
}

// DrawArrays draws count vertices from first with the current program.
func (r *Renderer) DrawArrays(mode core.Topology, first, count int) {
	gl.DrawArrays(glMode(mode), int32(first), int32(count))
}

func glMode(t core.Topology) uint32 {
	switch t {
	case core.TopologyTriangleFan:
		return gl.TRIANGLE_FAN
	case core.TopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

// Program is a linked GLSL program. Uniform locations are looked up once.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.ProgramUniformMatrix4fv(p.id, p.location(name), 1, false, &m[0])
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.ProgramUniform1f(p.id, p.location(name), v)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.ProgramUniform2f(p.id, p.location(name), v[0], v[1])
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.ProgramUniform4f(p.id, p.location(name), v[0], v[1], v[2], v[3])
}
