package object

import (
	_ "embed"
	"fmt"
	"math"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/robotrun/internal/core"
)

//go:embed assets/shapes.yaml
var shapesYAML []byte

// Shape is the compiled static geometry of one variant.
type Shape struct {
	Shader      string
	HitboxScale float64
	Textures    []string
	Parts       []Part
	Vertices    []core.Vertex
}

type shapeSpec struct {
	Shader      string     `yaml:"shader"`
	HitboxScale float64    `yaml:"hitbox_scale"`
	Textures    []string   `yaml:"textures"`
	Parts       []partSpec `yaml:"parts"`
}

type partSpec struct {
	Name   string       `yaml:"name"`
	Mode   string       `yaml:"mode"`
	Color  [4]float32   `yaml:"color"`
	Points [][2]float32 `yaml:"points"`
	Quad   *[4]float32  `yaml:"quad"`
	Arc    *arcSpec     `yaml:"arc"`
	Ring   *ringSpec    `yaml:"ring"`
}

type arcSpec struct {
	Center   [2]float64 `yaml:"center"`
	Radius   [2]float64 `yaml:"radius"`
	Start    float64    `yaml:"start"` // degrees
	Sweep    float64    `yaml:"sweep"` // degrees
	Segments int        `yaml:"segments"`
	Mirror   bool       `yaml:"mirror"`
}

type ringSpec struct {
	Radius    float64 `yaml:"radius"`
	Segments  int     `yaml:"segments"`
	Wobble    float64 `yaml:"wobble"`
	Frequency float64 `yaml:"frequency"`
}

// builtinShapes parses the embedded asset once per process.
var builtinShapes = sync.OnceValues(func() (map[string]*Shape, error) {
	return ParseShapes(shapesYAML)
})

// Shapes returns the built-in geometry keyed by variant name.
// The returned shapes are shared and must not be modified.
func Shapes() (map[string]*Shape, error) {
	return builtinShapes()
}

// ParseShapes compiles a shapes document into vertex tables.
func ParseShapes(data []byte) (map[string]*Shape, error) {
	var specs map[string]shapeSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("object: parse shapes: %w", err)
	}

	shapes := make(map[string]*Shape, len(specs))
	for name, spec := range specs {
		s, err := compileShape(spec)
		if err != nil {
			return nil, fmt.Errorf("object: shape %q: %w", name, err)
		}
		shapes[name] = s
	}
	return shapes, nil
}

func compileShape(spec shapeSpec) (*Shape, error) {
	if spec.Shader == "" {
		return nil, fmt.Errorf("missing shader")
	}
	if spec.HitboxScale < 0 {
		return nil, fmt.Errorf("negative hitbox_scale %v", spec.HitboxScale)
	}
	if len(spec.Parts) == 0 {
		return nil, fmt.Errorf("no parts")
	}

	s := &Shape{
		Shader:      spec.Shader,
		HitboxScale: spec.HitboxScale,
		Textures:    spec.Textures,
	}
	for i, ps := range spec.Parts {
		mode, verts, err := generatePart(ps)
		if err != nil {
			return nil, fmt.Errorf("part %d (%s): %w", i, ps.Name, err)
		}
		s.Parts = append(s.Parts, Part{
			Name:  ps.Name,
			Mode:  mode,
			Start: len(s.Vertices),
			Count: len(verts),
			Color: core.RGBA(ps.Color[0], ps.Color[1], ps.Color[2], ps.Color[3]),
		})
		s.Vertices = append(s.Vertices, verts...)
	}
	return s, nil
}

func generatePart(ps partSpec) (core.Topology, []core.Vertex, error) {
	generators := 0
	for _, set := range []bool{ps.Points != nil, ps.Quad != nil, ps.Arc != nil, ps.Ring != nil} {
		if set {
			generators++
		}
	}
	if generators != 1 {
		return 0, nil, fmt.Errorf("need exactly one of points, quad, arc, ring; got %d", generators)
	}

	// Quads are always strips
	if ps.Quad != nil {
		q := ps.Quad
		return core.TopologyTriangleStrip, []core.Vertex{
			core.V2(q[0], q[1]),
			core.V2(q[2], q[1]),
			core.V2(q[0], q[3]),
			core.V2(q[2], q[3]),
		}, nil
	}

	mode, ok := core.ParseTopology(ps.Mode)
	if !ok {
		return 0, nil, fmt.Errorf("unknown mode %q", ps.Mode)
	}

	var verts []core.Vertex
	switch {
	case ps.Points != nil:
		verts = make([]core.Vertex, 0, len(ps.Points))
		for _, p := range ps.Points {
			verts = append(verts, core.V2(p[0], p[1]))
		}
	case ps.Arc != nil:
		if ps.Arc.Segments <= 0 {
			return 0, nil, fmt.Errorf("arc needs positive segments")
		}
		verts = arcVertices(*ps.Arc)
	case ps.Ring != nil:
		if ps.Ring.Segments <= 0 {
			return 0, nil, fmt.Errorf("ring needs positive segments")
		}
		verts = ringVertices(*ps.Ring)
	}
	return mode, verts, nil
}

func arcVertices(a arcSpec) []core.Vertex {
	verts := make([]core.Vertex, 0, a.Segments)
	step := a.Sweep / float64(a.Segments)
	for k := 1; k <= a.Segments; k++ {
		rad := (a.Start + float64(k)*step) * math.Pi / 180
		dx := math.Cos(rad) * a.Radius[0]
		if a.Mirror {
			dx = -dx
		}
		dy := math.Sin(rad) * a.Radius[1]
		verts = append(verts, core.V2(float32(a.Center[0]+dx), float32(a.Center[1]+dy)))
	}
	return verts
}

// ringVertices walks the circle once; the radius drifts from point to point,
// so the outline wobbles like a spreading puddle.
func ringVertices(r ringSpec) []core.Vertex {
	verts := make([]core.Vertex, 0, r.Segments)
	radius := r.Radius
	step := 2 * math.Pi / float64(r.Segments)
	for k := 1; k <= r.Segments; k++ {
		angle := float64(k) * step
		x, y := math.Cos(angle)*radius, math.Sin(angle)*radius
		radius += math.Sin(math.Atan2(x, y)*r.Frequency) * r.Wobble
		x, y = math.Cos(angle)*radius, math.Sin(angle)*radius
		verts = append(verts, core.V2(float32(x), float32(y)))
	}
	return verts
}
