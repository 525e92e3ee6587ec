package engine

import (
	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
	"github.com/vovakirdan/robotrun/internal/object"
)

// Assemble concatenates the vertices of every descriptor in order into one
// buffer and records each descriptor's Offset. Each descriptor must appear
// once.
func Assemble(descs []*object.Descriptor) *gfx.Buffer {
	total := 0
	for _, d := range descs {
		total += len(d.Vertices)
	}

	vertices := make([]core.Vertex, 0, total)
	for _, d := range descs {
		d.Offset = len(vertices)
		d.Count = len(d.Vertices)
		vertices = append(vertices, d.Vertices...)
	}
	return gfx.NewBuffer(vertices)
}
