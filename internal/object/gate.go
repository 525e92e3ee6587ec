package object

import (
	"strings"

	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
)

func init() {
	Register(Variant{
		Name:          "gate",
		Category:      CategoryStructural,
		SubscribeKeys: []core.Key{core.KeySpace},
		New: func(d *Descriptor, p Placement, env Env) Object {
			return &Gate{base: newBase(d, p, env)}
		},
	})
}

// Gate is a structural object the player opens and closes with Space.
// An open gate has no collision surface and is drawn without its bars.
type Gate struct {
	base
	open bool
}

// Open reports whether the gate is open.
func (g *Gate) Open() bool {
	return g.open
}

// Hitbox reports no collision surface while the gate is open.
func (g *Gate) Hitbox() (core.Hitbox, bool) {
	if g.open {
		return core.Hitbox{}, false
	}
	return g.base.Hitbox()
}

// Logic toggles the gate on every Space press.
func (g *Gate) Logic(ctx LogicContext) {
	if ctx.Input.Pressed(core.KeySpace) {
		g.open = !g.open
	}
}

// Draw skips the bars while the gate is open.
func (g *Gate) Draw(r gfx.Renderer) {
	g.drawParts(r, func(p Part) bool {
		return g.open && strings.HasPrefix(p.Name, "bar")
	})
}
