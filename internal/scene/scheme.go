// Package scene describes the hand-authored layout of a level: which
// object variants appear, in which order, and where each instance sits.
// Schemes are loaded from YAML or TOML files and are read-only once the
// game starts.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Scheme is an ordered list of object groups. Earlier groups are drawn on
// top of later ones.
type Scheme struct {
	ID         string  `yaml:"id" toml:"id"`
	Name       string  `yaml:"name" toml:"name"`
	Resolution [2]int  `yaml:"resolution,omitempty" toml:"resolution,omitempty"`
	Groups     []Group `yaml:"groups" toml:"groups"`

	// Source is the file the scheme was read from.
	Source string `yaml:"-" toml:"-"`
}

// Group holds every placed item of one variant.
type Group struct {
	Type  string `yaml:"type" toml:"type"`
	Items []Item `yaml:"items" toml:"items"`
}

// Item is one placed object. Positions are pixels from the window centre.
type Item struct {
	Position [2]float64  `yaml:"position" toml:"position"`
	Size     *[2]float64 `yaml:"size" toml:"size"`
	Rotate   float64     `yaml:"rotate,omitempty" toml:"rotate,omitempty"` // degrees
	Hitbox   bool        `yaml:"hitbox,omitempty" toml:"hitbox,omitempty"`
}

// Pos returns the item position as a vector.
func (it Item) Pos() mgl64.Vec2 {
	return mgl64.Vec2{it.Position[0], it.Position[1]}
}

// Dimensions returns the item size, or zero when it is missing.
func (it Item) Dimensions() mgl64.Vec2 {
	if it.Size == nil {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{it.Size[0], it.Size[1]}
}

// HasResolution reports whether the scheme pins a window size.
func (s Scheme) HasResolution() bool {
	return s.Resolution[0] > 0 && s.Resolution[1] > 0
}

// Types returns the variant names in scheme order, each once.
func (s Scheme) Types() []string {
	seen := make(map[string]bool, len(s.Groups))
	var types []string
	for _, g := range s.Groups {
		if seen[g.Type] {
			continue
		}
		seen[g.Type] = true
		types = append(types, g.Type)
	}
	return types
}

// ItemCount returns the number of items across all groups.
func (s Scheme) ItemCount() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Items)
	}
	return n
}
