// Package engine runs the game: it assembles the shared vertex buffer,
// compiles shader programs, builds the object roster from a scene scheme
// and drives the per-frame logic and draw passes.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robotrun/internal/config"
	"github.com/vovakirdan/robotrun/internal/core"
	"github.com/vovakirdan/robotrun/internal/gfx"
	"github.com/vovakirdan/robotrun/internal/object"
	"github.com/vovakirdan/robotrun/internal/scene"
)

// ErrTerminated is returned by Tick and Frame once the controller is closed.
var ErrTerminated = errors.New("engine: controller terminated")

// State is the lifecycle state of a controller.
type State uint8

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Option configures a controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithTuning sets the gameplay tuning. The default is config.DefaultTuning.
func WithTuning(t config.Tuning) Option {
	return func(c *Controller) {
		c.tuning = t
	}
}

// Controller owns the window, the renderer and every object of a scene.
// It is not safe for concurrent use; all calls must come from the thread
// that owns the graphics context.
type Controller struct {
	cfg    core.RuntimeConfig
	scheme scene.Scheme
	win    gfx.Window
	r      gfx.Renderer
	logger *log.Logger
	tuning config.Tuning
	env    object.Env

	descs    []*object.Descriptor
	byName   map[string]*object.Descriptor
	programs map[string]gfx.Program
	buffer   *gfx.Buffer

	input *core.InputQueue
	frame core.InputFrame

	groups []Group
	solids []object.Object
	status map[*object.Robot]object.Status

	state    State
	frames   int64
	restarts int64
	logic    phaseStatsInternal
	draw     phaseStatsInternal
}

// New validates the scheme, uploads the shared vertex buffer, compiles the
// programs the scheme needs and builds the first roster. Configuration
// errors are returned before anything is drawn.
func New(cfg core.RuntimeConfig, s scene.Scheme, win gfx.Window, r gfx.Renderer, opts ...Option) (*Controller, error) {
	if err := s.Validate(object.Exists); err != nil {
		return nil, fmt.Errorf("engine: invalid scheme %q: %w", s.ID, err)
	}

	c := &Controller{
		cfg:      cfg,
		scheme:   s,
		win:      win,
		r:        r,
		logger:   log.New(io.Discard),
		tuning:   config.DefaultTuning(),
		byName:   make(map[string]*object.Descriptor),
		programs: make(map[string]gfx.Program),
		input:    core.NewInputQueue(core.KeyR),
		status:   make(map[*object.Robot]object.Status),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.env = object.Env{Resolution: cfg.Resolution(), Tuning: c.tuning}

	// One descriptor per variant, in scheme order
	for _, name := range s.Types() {
		d, err := object.Describe(name)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		c.descs = append(c.descs, d)
		c.byName[name] = d
	}

	if err := c.compilePrograms(); err != nil {
		return nil, err
	}

	c.buffer = Assemble(c.descs)
	if err := r.Upload(c.buffer); err != nil {
		return nil, fmt.Errorf("engine: upload vertex buffer: %w", err)
	}

	for _, d := range c.descs {
		if len(d.Textures) == 0 {
			continue
		}
		ids, err := gfx.LoadTextures(r, d.Textures)
		if err != nil {
			return nil, fmt.Errorf("engine: textures of %q: %w", d.Name, err)
		}
		d.TextureIDs = ids
	}

	for _, d := range c.descs {
		c.input.Observe(d.SubscribeKeys...)
	}
	win.SetKeyCallback(c.input.PushKey)
	win.SetMouseCallback(c.input.PushButton)

	r.EnableBlend()
	if cfg.Enable3D {
		r.EnableDepth()
	}

	c.build()

	c.logger.Info("scene configured",
		"scene", s.ID,
		"variants", len(c.descs),
		"objects", s.ItemCount(),
		"solids", len(c.solids),
		"vertices", c.buffer.Len(),
		"bytes", c.buffer.Size(),
		"programs", len(c.programs),
	)
	return c, nil
}

// compilePrograms compiles each shader program once, however many variants use it.
func (c *Controller) compilePrograms() error {
	for _, d := range c.descs {
		prog, ok := c.programs[d.Shader]
		if !ok {
			var err error
			prog, err = c.r.CompileProgram(d.Shader)
			if err != nil {
				return fmt.Errorf("engine: compile program %q for %q: %w", d.Shader, d.Name, err)
			}
			c.programs[d.Shader] = prog
		}
		d.Program = prog
	}
	return nil
}

func (c *Controller) build() {
	c.groups, c.solids = buildRoster(c.scheme, c.byName, c.env)
	clear(c.status)
	for _, rb := range c.Robots() {
		c.status[rb] = rb.Status()
	}
}

// Run shows the window and runs frames until the window asks to close or
// ctx is cancelled, then closes the controller.
func (c *Controller) Run(ctx context.Context) error {
	if c.state == StateTerminated {
		return ErrTerminated
	}

	c.win.Show()
	defer c.Close()

	for !c.win.ShouldClose() {
		if ctx.Err() != nil {
			c.logger.Debug("context cancelled", "error", ctx.Err())
			return nil
		}
		if err := c.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// Frame polls input, advances the logic and draws one frame.
func (c *Controller) Frame() error {
	c.win.PollEvents()
	if err := c.Tick(); err != nil {
		return err
	}
	c.Render()
	c.win.SwapBuffers()
	return nil
}

// Tick drains the input collected since the last tick, restarts the scene
// on an R press and runs every object's logic. Groups run in reverse
// scheme order. Objects that currently have a hitbox see the solids.
func (c *Controller) Tick() error {
	if c.state == StateTerminated {
		return ErrTerminated
	}

	c.frame = c.input.Drain()
	if c.frame.Pressed(core.KeyR) {
		c.Restart()
	}

	start := time.Now()
	for i := len(c.groups) - 1; i >= 0; i-- {
		g := c.groups[i]
		for _, o := range g.Items {
			ctx := object.LogicContext{Input: c.frame}
			if _, ok := o.Hitbox(); ok {
				ctx.Solids = c.solids
			}
			o.Logic(ctx)
		}
	}
	c.logic.record(time.Since(start))
	c.frames++

	c.observeRobots()
	return nil
}

// Render clears the frame and draws every object. Groups draw in reverse
// scheme order, so earlier groups end up on top.
func (c *Controller) Render() {
	if c.state == StateTerminated {
		return
	}

	start := time.Now()
	c.r.Clear(c.tuning.Scene.BackgroundColor())
	for i := len(c.groups) - 1; i >= 0; i-- {
		g := c.groups[i]
		g.Descriptor.Program.Use()
		for _, o := range g.Items {
			o.Draw(c.r)
		}
	}
	c.draw.record(time.Since(start))
}

// Restart discards every object and rebuilds the roster from the scheme.
// The vertex buffer and descriptors are kept.
func (c *Controller) Restart() {
	c.build()
	c.restarts++
	c.logger.Info("scene restarted", "scene", c.scheme.ID, "restarts", c.restarts)
}

// Close terminates the window. Further ticks return ErrTerminated.
func (c *Controller) Close() {
	if c.state == StateTerminated {
		return
	}
	c.win.Terminate()
	c.state = StateTerminated

	st := c.Stats()
	c.logger.Info("shutdown",
		"frames", st.Frames,
		"restarts", st.Restarts,
		"logic_avg", st.Logic.AvgDuration,
		"logic_max", st.Logic.MaxDuration,
		"draw_avg", st.Draw.AvgDuration,
		"draw_max", st.Draw.MaxDuration,
	)
}

// observeRobots logs robot status changes.
func (c *Controller) observeRobots() {
	for rb, prev := range c.status {
		cur := rb.Status()
		if cur == prev {
			continue
		}
		c.status[rb] = cur

		pos := rb.Transform().Position
		switch cur {
		case object.StatusDead:
			c.logger.Warn("robot died", "frame", c.frames, "x", pos[0], "y", pos[1])
		case object.StatusStopped:
			c.logger.Info("robot reached the finish", "frame", c.frames, "x", pos[0], "y", pos[1])
		default:
			c.logger.Debug("robot status", "status", cur, "frame", c.frames)
		}
	}
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Scheme returns the scheme the controller was built from.
func (c *Controller) Scheme() scene.Scheme {
	return c.scheme
}

// Config returns the runtime configuration.
func (c *Controller) Config() core.RuntimeConfig {
	return c.cfg
}

// Groups returns the live groups in scheme order.
func (c *Controller) Groups() []Group {
	return c.groups
}

// Solids returns the solid roster in scheme order.
func (c *Controller) Solids() []object.Object {
	return c.solids
}

// Descriptors returns one descriptor per variant in scheme order.
func (c *Controller) Descriptors() []*object.Descriptor {
	return c.descs
}

// Buffer returns the shared vertex buffer.
func (c *Controller) Buffer() *gfx.Buffer {
	return c.buffer
}

// Input returns the input of the last tick.
func (c *Controller) Input() core.InputFrame {
	return c.frame
}

// Robots returns every robot of the current roster in scheme order.
func (c *Controller) Robots() []*object.Robot {
	var robots []*object.Robot
	for _, g := range c.groups {
		for _, o := range g.Items {
			if rb, ok := o.(*object.Robot); ok {
				robots = append(robots, rb)
			}
		}
	}
	return robots
}

// Stats returns frame statistics.
func (c *Controller) Stats() Stats {
	return Stats{
		Frames:   c.frames,
		Restarts: c.restarts,
		Logic:    c.logic.snapshot(),
		Draw:     c.draw.snapshot(),
	}
}
