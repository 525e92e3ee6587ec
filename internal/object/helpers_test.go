package object

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/robotrun/internal/config"
	"github.com/vovakirdan/robotrun/internal/core"
)

func testEnv() Env {
	return Env{
		Resolution: mgl64.Vec2{600, 600},
		Tuning:     config.DefaultTuning(),
	}
}

// place creates an object with its hitbox configured, as the controller
// does for items flagged solid.
func place(t *testing.T, env Env, name string, pos, size mgl64.Vec2, rot float64) Object {
	t.Helper()
	o, err := Create(name, Placement{Position: pos, Size: size, Rotation: rot}, env)
	require.NoError(t, err)
	o.ConfigureHitbox()
	return o
}

func placeRobot(t *testing.T, env Env, pos, size mgl64.Vec2) *Robot {
	t.Helper()
	r, ok := place(t, env, "robot", pos, size, 0).(*Robot)
	require.True(t, ok)
	return r
}

func press(key core.Key) core.InputFrame {
	q := core.NewInputQueue(key)
	q.PushKey(core.KeyEvent{Key: key, Action: core.ActionPress})
	return q.Drain()
}
