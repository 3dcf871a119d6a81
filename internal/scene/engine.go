package scene

import (
	"cogentcore.org/core/math32"

	"github.com/ayusman/orrery/internal/gesture"
)

// Config holds the engine's tunables. Smoothing factors are per frame
// tick, not per unit of real time: convergence speed is coupled to the
// render rate, a documented property of the design.
type Config struct {
	// SpeedFactor scales every body's orbital speed uniformly.
	SpeedFactor float32
	// SlowFactor is the per-tick blend ratio for orbit settling.
	SlowFactor float32
	// FastFactor is the per-tick blend ratio for the merge rush and the
	// sun's collapse.
	FastFactor float32
	// RingFactor is the per-tick blend ratio for ring opacities.
	RingFactor float32
	// CollapseScale is the near-zero scale non-merge bodies shrink to.
	CollapseScale float32
	// MergeScale is the merge body's dominant scale under a fist.
	MergeScale float32
	// SpinRate is the cosmetic self-rotation increment per frame.
	SpinRate float32
	// MergeSpinRate is the merge body's emphasized spin under a fist.
	MergeSpinRate float32
	// RingOpacity is the orbit-path rings' nominal opacity.
	RingOpacity float32
	// BodyRingOpacity is the nominal opacity of body ring meshes.
	BodyRingOpacity float32
	// MergeBody names the body that dominates the merge configuration.
	MergeBody string
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		SpeedFactor:     0.3,
		SlowFactor:      0.05,
		FastFactor:      0.12,
		RingFactor:      0.08,
		CollapseScale:   0.01,
		MergeScale:      4.0,
		SpinRate:        0.01,
		MergeSpinRate:   0.03,
		RingOpacity:     0.25,
		BodyRingOpacity: 0.9,
		MergeBody:       "earth",
	}
}

// sanitize forces every blend factor into (0, 1] so a bad persisted
// setting cannot stall or explode the blend.
func (c Config) sanitize() Config {
	c.SlowFactor = clampFactor(c.SlowFactor, 0.05)
	c.FastFactor = clampFactor(c.FastFactor, 0.12)
	c.RingFactor = clampFactor(c.RingFactor, 0.08)
	return c
}

func clampFactor(f, fallback float32) float32 {
	if math32.IsNaN(f) || f <= 0 {
		return fallback
	}
	if f > 1 {
		return 1
	}
	return f
}

// bodyState is the engine-owned mutable animation state of one body.
// Nothing outside the engine may write these values.
type bodyState struct {
	body      Body
	orbit     *Orbit
	pos       math32.Vector3
	scale     float32
	spin      float32
	pathAlpha float32 // orbit-path ring
	ringAlpha float32 // body ring mesh, if any
}

// Engine is the per-frame scene controller. Every rendered frame it
// computes the target configuration selected by the gesture state and
// blends each body's current transform toward it with fixed-factor
// exponential smoothing, so a rapid state flip mid-transition simply
// redirects the blend without a discontinuity.
type Engine struct {
	cfg      Config
	graph    Graph
	sun      Body
	sunScale float32
	bodies   []*bodyState
}

// NewEngine creates the engine. Bodies start on their orbits at angle
// zero, full scale, with orbit rings at nominal opacity.
func NewEngine(graph Graph, sun Body, planets []Body, cfg Config) *Engine {
	cfg = cfg.sanitize()

	e := &Engine{
		cfg:      cfg,
		graph:    graph,
		sun:      sun,
		sunScale: 1,
	}
	for _, b := range planets {
		orbit := NewOrbit(b, cfg.SpeedFactor)
		e.bodies = append(e.bodies, &bodyState{
			body:      b,
			orbit:     orbit,
			pos:       orbit.Position(),
			scale:     1,
			pathAlpha: cfg.RingOpacity,
			ringAlpha: cfg.BodyRingOpacity,
		})
	}
	return e
}

// Step runs one frame of the control loop. It is called on every
// render tick, unconditionally, with whatever gesture state the
// classifier most recently produced. It never panics: malformed
// values are dropped for the frame rather than propagated.
func (e *Engine) Step(state gesture.State) {
	merge := state == gesture.Fist

	// Central body: collapse to near nothing under a fist and hide the
	// glow billboard; recover to full scale otherwise.
	sunTarget := float32(1)
	if merge {
		sunTarget = e.cfg.CollapseScale
	}
	e.sunScale = safeLerp(e.sunScale, sunTarget, e.cfg.FastFactor)
	e.graph.SetTransform(e.sun.Name, math32.Vector3{}, e.sunScale, 0)
	e.graph.SetVisible(e.sun.Name+"/glow", !merge)

	for _, b := range e.bodies {
		var targetPos math32.Vector3
		var targetScale float32
		factor := e.cfg.SlowFactor
		spinRate := e.cfg.SpinRate

		switch {
		case !merge:
			b.orbit.Advance()
			targetPos = b.orbit.Position()
			targetScale = 1
		case b.body.Name == e.cfg.MergeBody:
			// Merge body rushes to the origin and dominates the scene.
			targetScale = e.cfg.MergeScale
			factor = e.cfg.FastFactor
			spinRate = e.cfg.MergeSpinRate
		default:
			targetScale = e.cfg.CollapseScale
			factor = e.cfg.FastFactor
		}

		b.pos = safeLerpVec(b.pos, targetPos, factor)
		b.scale = safeLerp(b.scale, targetScale, factor)
		b.spin += spinRate

		pathTarget := e.cfg.RingOpacity
		ringTarget := e.cfg.BodyRingOpacity
		if merge {
			pathTarget = 0
			ringTarget = 0
		}
		b.pathAlpha = safeLerp(b.pathAlpha, pathTarget, e.cfg.RingFactor)

		e.graph.SetTransform(b.body.Name, b.pos, b.scale, b.spin)
		e.graph.SetOpacity(b.body.Name+"/orbit", b.pathAlpha)
		if b.body.HasRing {
			b.ringAlpha = safeLerp(b.ringAlpha, ringTarget, e.cfg.RingFactor)
			e.graph.SetOpacity(b.body.Name+"/ring", b.ringAlpha)
		}
	}
}

// Bodies returns the static body descriptors, sun first.
func (e *Engine) Bodies() []Body {
	out := make([]Body, 0, len(e.bodies)+1)
	out = append(out, e.sun)
	for _, b := range e.bodies {
		out = append(out, b.body)
	}
	return out
}

// safeLerp blends cur toward target, keeping the last valid value when
// the target is malformed.
func safeLerp(cur, target, factor float32) float32 {
	if math32.IsNaN(target) || math32.IsInf(target, 0) {
		return cur
	}
	return math32.Lerp(cur, target, factor)
}

func safeLerpVec(cur, target math32.Vector3, factor float32) math32.Vector3 {
	return math32.Vec3(
		safeLerp(cur.X, target.X, factor),
		safeLerp(cur.Y, target.Y, factor),
		safeLerp(cur.Z, target.Z, factor),
	)
}
