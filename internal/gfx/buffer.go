package gfx

import "github.com/vovakirdan/robotrun/internal/core"

// Buffer is the single vertex buffer shared by every drawable variant.
// It is written once at startup and read-only afterwards.
type Buffer struct {
	vertices []core.Vertex
}

// NewBuffer wraps vertices in a buffer. The slice is not copied.
func NewBuffer(vertices []core.Vertex) *Buffer {
	return &Buffer{vertices: vertices}
}

// Len returns the number of vertices.
func (b *Buffer) Len() int {
	return len(b.vertices)
}

// Size returns the size of the buffer in bytes.
func (b *Buffer) Size() int {
	return len(b.vertices) * core.VertexSize
}

// Vertices returns the vertex slice. Callers must not modify it.
func (b *Buffer) Vertices() []core.Vertex {
	return b.vertices
}

// Slice returns count vertices starting at first, clipped to the buffer.
func (b *Buffer) Slice(first, count int) []core.Vertex {
	if first < 0 || first >= len(b.vertices) || count <= 0 {
		return nil
	}
	end := min(first+count, len(b.vertices))
	return b.vertices[first:end]
}

// Bytes returns the buffer as a blob of little-endian float32 triples,
// the layout uploaded to the GPU.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, 0, b.Size())
	for _, v := range b.vertices {
		out = v.AppendBytes(out)
	}
	return out
}
