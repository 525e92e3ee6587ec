package object

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/robotrun/internal/config"
	"github.com/vovakirdan/robotrun/internal/core"
)

// Placement is where a scene item puts a new object.
type Placement struct {
	Position mgl64.Vec2
	Size     mgl64.Vec2
	Rotation float64 // degrees
}

// Env is the per-controller environment objects are created in.
type Env struct {
	Resolution mgl64.Vec2
	Tuning     config.Tuning
}

// Factory creates one instance of a variant.
type Factory func(d *Descriptor, p Placement, env Env) Object

// Variant describes a registered object type.
type Variant struct {
	Name          string
	Category      Category
	SubscribeKeys []core.Key
	New           Factory
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from the variant's init() function.
// Panics if a variant with the same name is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.New == nil {
		panic(fmt.Sprintf("object: variant %q has no factory", v.Name))
	}
	if _, exists := variants[v.Name]; exists {
		panic(fmt.Sprintf("object: variant %q already registered", v.Name))
	}

	variants[v.Name] = v
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, bool) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[name]
	return v, ok
}

// Exists checks if a variant with the given name is registered.
func Exists(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// Variants returns all registered variants, sorted by name.
func Variants() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Describe builds a fresh descriptor for the named variant from its
// registration and built-in geometry. Offset, Program and TextureIDs are
// left for the controller to fill in.
func Describe(name string) (*Descriptor, error) {
	v, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("object: unknown variant %q", name)
	}

	shapes, err := Shapes()
	if err != nil {
		return nil, err
	}
	s, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("object: variant %q has no shape", name)
	}

	return &Descriptor{
		Name:          name,
		Category:      v.Category,
		Shader:        s.Shader,
		Count:         len(s.Vertices),
		Parts:         s.Parts,
		Vertices:      s.Vertices,
		HitboxScale:   s.HitboxScale,
		Textures:      s.Textures,
		SubscribeKeys: v.SubscribeKeys,
	}, nil
}

// Create describes a variant and instantiates it once. Tests and tools
// that need a single object use it; the controller shares descriptors.
func Create(name string, p Placement, env Env) (Object, error) {
	d, err := Describe(name)
	if err != nil {
		return nil, err
	}
	v, _ := Lookup(name)
	return v.New(d, p, env), nil
}
