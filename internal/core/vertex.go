package core

import (
	"encoding/binary"
	"math"
)

// VertexSize is the size in bytes of one vertex in the shared buffer:
// three little-endian float32 components.
const VertexSize = 3 * 4

// Vertex is a single 3-component point of static geometry.
type Vertex struct {
	X, Y, Z float32
}

// V2 creates a vertex on the z = 0 plane.
func V2(x, y float32) Vertex {
	return Vertex{X: x, Y: y}
}

// AppendBytes appends the little-endian float32 encoding of v to dst.
func (v Vertex) AppendBytes(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.X))
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Y))
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Z))
	return dst
}

// Topology is the primitive assembly mode of a draw call.
type Topology uint8

const (
	TopologyTriangles Topology = iota
	TopologyTriangleFan
	TopologyTriangleStrip
)

// String returns the name used in asset files.
func (t Topology) String() string {
	switch t {
	case TopologyTriangles:
		return "triangles"
	case TopologyTriangleFan:
		return "fan"
	case TopologyTriangleStrip:
		return "strip"
	default:
		return "unknown"
	}
}

// ParseTopology converts an asset-file name into a Topology.
func ParseTopology(s string) (Topology, bool) {
	switch s {
	case "triangles":
		return TopologyTriangles, true
	case "fan":
		return TopologyTriangleFan, true
	case "strip":
		return TopologyTriangleStrip, true
	}
	return 0, false
}

// TriangleIndices expands count vertices of the given topology into a plain
// triangle list of local indices. Backends without native fans or strips
// use it to issue indexed draws.
func TriangleIndices(mode Topology, count int) []uint16 {
	if count < 3 {
		return nil
	}

	switch mode {
	case TopologyTriangleFan:
		idx := make([]uint16, 0, (count-2)*3)
		for i := 1; i < count-1; i++ {
			idx = append(idx, 0, uint16(i), uint16(i+1))
		}
		return idx
	case TopologyTriangleStrip:
		idx := make([]uint16, 0, (count-2)*3)
		for i := 0; i < count-2; i++ {
			// Keep a consistent winding on odd triangles
			if i%2 == 0 {
				idx = append(idx, uint16(i), uint16(i+1), uint16(i+2))
			} else {
				idx = append(idx, uint16(i+1), uint16(i), uint16(i+2))
			}
		}
		return idx
	default:
		n := count - count%3
		idx := make([]uint16, n)
		for i := range idx {
			idx[i] = uint16(i)
		}
		return idx
	}
}
