package object

func init() {
	for _, name := range []string{"box", "container", "wall"} {
		Register(Variant{
			Name:     name,
			Category: CategoryStructural,
			New:      newStatic,
		})
	}
	Register(Variant{
		Name:     "rotator",
		Category: CategoryRotator,
		New:      newStatic,
	})
	Register(Variant{
		Name:     "finish",
		Category: CategoryGoal,
		New:      newStatic,
	})
}

// static is an object without logic of its own: boxes, containers and
// walls the robot bounces off, rotators whose rotation is the heading they
// hand out, and the finish pad.
type static struct {
	base
}

func newStatic(d *Descriptor, p Placement, env Env) Object {
	return &static{base: newBase(d, p, env)}
}
