// Package gfx defines the boundary between game logic and the platform:
// the window that delivers input and presents frames, the renderer that
// owns GPU resources, and the shader programs objects draw with.
// Backends under internal/platform implement these interfaces.
package gfx

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/robotrun/internal/core"
)

// Shader program names understood by every backend.
const (
	ShaderBase  = "base"  // flat colour from u_color
	ShaderMagma = "magma" // animated flames driven by u_time
)

// Uniform names shared by all shader programs.
const (
	UniformModel      = "u_model_matrix"
	UniformColor      = "u_color"
	UniformTime       = "u_time"
	UniformResolution = "u_resolution"
)

// Window is a native window plus its input source.
type Window interface {
	// Show makes the window visible.
	Show()
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// PollEvents delivers pending input through the registered callbacks.
	PollEvents()
	// SwapBuffers presents the frame drawn since the last swap.
	SwapBuffers()
	// Terminate releases the window and its context.
	Terminate()
	SetKeyCallback(fn func(core.KeyEvent))
	SetMouseCallback(fn func(core.ButtonEvent))
}

// Renderer issues draw calls against one uploaded vertex buffer.
type Renderer interface {
	// CompileProgram builds the named shader program.
	CompileProgram(name string) (Program, error)
	// Upload sends the vertex buffer to the GPU. Called once.
	Upload(buf *Buffer) error
	// UploadTexture uploads a decoded image and returns its texture id.
	UploadTexture(img image.Image) (uint32, error)
	// BindTexture makes a previously uploaded texture current.
	BindTexture(id uint32)
	// Clear fills the framebuffer with c.
	Clear(c core.Color)
	// EnableBlend turns on source-alpha blending.
	EnableBlend()
	// EnableDepth turns on depth testing.
	EnableDepth()
	// DrawArrays draws count vertices starting at vertex first of the buffer
	// with the program last passed to Use.
	DrawArrays(mode core.Topology, first, count int)
}

// Program is a compiled shader program with typed uniform setters.
// Setters apply to the program whether or not it is currently in use.
type Program interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec4(name string, v mgl32.Vec4)
}
