// Package ai implements the pop-out shooter: an enemy that waits at a post,
// side-steps into a firing stance when a target comes within range, fires
// for a while, steps back into cover and waits before checking again.
//
// The controller is a plain state machine advanced once per fixed tick by
// Step. It has no knowledge of the ECS world; the caller resolves the body,
// weapon and target and passes them in.
package ai

import (
	"github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/gamemath"
)

// Body is the transform the controller reads and moves.
type Body interface {
	Position() gamemath.Vec3
	SetPosition(gamemath.Vec3)
	Right() gamemath.Vec3
}

// Target is something the controller can detect and shoot at.
type Target interface {
	Position() gamemath.Vec3
}

// Weapon is the firing capability mounted next to the controller.
type Weapon interface {
	Fire(target Target, point gamemath.Vec3)
}

// Controller runs the attack cycle for one enemy.
type Controller struct {
	tuning config.Tuning

	body   Body
	weapon Weapon
	active bool

	initial gamemath.Vec3
	attack  gamemath.Vec3

	state   State
	move    *motion
	elapsed float64

	// OnTransition, when set, is called after every state change.
	OnTransition func(from, to State)
}

func NewController(tuning config.Tuning) *Controller {
	return &Controller{
		tuning: tuning.Clamped(),
	}
}

func (c *Controller) Tuning() config.Tuning {
	return c.tuning
}

// SetTuning replaces the tunables. Values are clamped to config.Limits and
// take effect on the next Step.
func (c *Controller) SetTuning(t config.Tuning) {
	c.tuning = t.Clamped()
}

// Activate binds the controller to a body and weapon and snapshots the two
// posts from the body's current transform. weapon may be nil. Any cycle in
// progress is dropped.
func (c *Controller) Activate(body Body, weapon Weapon) {
	c.body = body
	c.weapon = weapon
	c.initial = body.Position()
	c.attack = c.initial.Add(body.Right().Scale(config.AI.AttackOffset))
	c.active = true
	c.reset()
}

// Deactivate abandons the cycle in progress. The body and weapon are released.
func (c *Controller) Deactivate() {
	c.active = false
	c.body = nil
	c.weapon = nil
	c.reset()
}

func (c *Controller) reset() {
	c.state = Idle
	c.move = nil
	c.elapsed = 0
}

func (c *Controller) Active() bool {
	return c.active
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) InitialPosition() gamemath.Vec3 {
	return c.initial
}

func (c *Controller) AttackPosition() gamemath.Vec3 {
	return c.attack
}

// InRange reports whether target is within the activation range of the body.
func (c *Controller) InRange(target Target) bool {
	if target == nil || c.body == nil {
		return false
	}
	return target.Position().Distance(c.body.Position()) <= c.tuning.ActivationRange
}

// Step advances the cycle by one fixed tick of length dt. target is the
// current player, or nil when there is none.
//
// Each phase checks its completion before doing the tick's work, so a phase
// of length D lasts ceil(D/dt) ticks and a finished phase hands over to the
// next one within the same Step.
func (c *Controller) Step(dt float64, target Target) {
	for c.active {
		switch c.state {
		case Idle:
			if !c.InRange(target) {
				return
			}
			c.beginMove(c.attack)
			c.transition(Approaching)

		case Approaching:
			if c.move.done {
				c.elapsed = 0
				c.transition(Firing)
				continue
			}
			c.body.SetPosition(c.move.advance(dt))
			return

		case Firing:
			if reached(c.elapsed, c.tuning.AttackDuration, dt) {
				c.beginMove(c.initial)
				c.transition(Retreating)
				continue
			}
			if target != nil && c.weapon != nil {
				aim := target.Position().Add(gamemath.Vec3{Y: config.AI.AimHeight})
				c.weapon.Fire(target, aim)
			}
			c.elapsed += dt
			return

		case Retreating:
			if c.move.done {
				c.elapsed = 0
				c.transition(Hiding)
				continue
			}
			c.body.SetPosition(c.move.advance(dt))
			return

		case Hiding:
			if reached(c.elapsed, c.tuning.HideDuration, dt) {
				c.transition(Idle)
				continue
			}
			c.elapsed += dt
			return

		default:
			c.reset()
			return
		}
	}
}

func (c *Controller) beginMove(goal gamemath.Vec3) {
	c.move = newMotion(c.body.Position(), goal, config.AI.MoveDuration)
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	if c.OnTransition != nil {
		c.OnTransition(from, to)
	}
}
