package engine

import (
	"github.com/vovakirdan/robotrun/internal/object"
	"github.com/vovakirdan/robotrun/internal/scene"
)

// Group is the live instances of one scheme group.
type Group struct {
	Descriptor *object.Descriptor
	Items      []object.Object

	// solid marks items that were placed in the solid roster.
	solid []bool
}

// Solid reports whether item i takes part in collisions.
func (g Group) Solid(i int) bool {
	return i >= 0 && i < len(g.solid) && g.solid[i]
}

// buildRoster instantiates every scheme item. Items flagged hitbox get
// their box configured and join the solid roster when the box exists.
func buildRoster(s scene.Scheme, descs map[string]*object.Descriptor, env object.Env) ([]Group, []object.Object) {
	groups := make([]Group, 0, len(s.Groups))
	var solids []object.Object

	for _, sg := range s.Groups {
		d := descs[sg.Type]
		v, _ := object.Lookup(sg.Type)

		g := Group{
			Descriptor: d,
			Items:      make([]object.Object, 0, len(sg.Items)),
			solid:      make([]bool, 0, len(sg.Items)),
		}
		for _, it := range sg.Items {
			o := v.New(d, object.Placement{
				Position: it.Pos(),
				Size:     it.Dimensions(),
				Rotation: it.Rotate,
			}, env)

			solid := false
			if it.Hitbox {
				o.ConfigureHitbox()
				if _, ok := o.Hitbox(); ok {
					solids = append(solids, o)
					solid = true
				}
			}
			g.Items = append(g.Items, o)
			g.solid = append(g.solid, solid)
		}
		groups = append(groups, g)
	}
	return groups, solids
}
