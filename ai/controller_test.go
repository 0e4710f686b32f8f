package ai

import (
	"math"
	"testing"

	"github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/gamemath"
)

type testBody struct {
	pos   gamemath.Vec3
	right gamemath.Vec3
}

func (b *testBody) Position() gamemath.Vec3     { return b.pos }
func (b *testBody) SetPosition(p gamemath.Vec3) { b.pos = p }
func (b *testBody) Right() gamemath.Vec3        { return b.right }

type testTarget struct {
	pos gamemath.Vec3
}

func (t *testTarget) Position() gamemath.Vec3 { return t.pos }

type shot struct {
	target Target
	point  gamemath.Vec3
}

type testWeapon struct {
	shots []shot
}

func (w *testWeapon) Fire(target Target, point gamemath.Vec3) {
	w.shots = append(w.shots, shot{target, point})
}

type transitionLog struct {
	steps []State
}

func newRig(tuning config.Tuning) (*Controller, *testBody, *testWeapon, *transitionLog) {
	body := &testBody{pos: gamemath.Vec3{X: 10, Y: 0, Z: 4}, right: gamemath.Vec3{X: 1}}
	weapon := &testWeapon{}
	log := &transitionLog{}

	c := NewController(tuning)
	c.OnTransition = func(_, to State) { log.steps = append(log.steps, to) }
	c.Activate(body, weapon)
	return c, body, weapon, log
}

// stepsUntil steps the controller until it reaches want and returns how many
// Step calls that took.
func stepsUntil(t *testing.T, c *Controller, dt float64, target Target, want State) int {
	t.Helper()
	for i := 1; i <= 100000; i++ {
		c.Step(dt, target)
		if c.State() == want {
			return i
		}
	}
	t.Fatalf("never reached %s", want)
	return 0
}

func TestActivateSnapshotsPosts(t *testing.T) {
	c, body, _, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 1, HideDuration: 1})

	if got := c.InitialPosition(); got != body.pos {
		t.Fatalf("initial = %v, want %v", got, body.pos)
	}
	want := gamemath.Vec3{X: 12, Y: 0, Z: 4}
	if got := c.AttackPosition(); got != want {
		t.Fatalf("attack = %v, want %v", got, want)
	}
	if c.State() != Idle || !c.Active() {
		t.Fatalf("state = %s active = %v", c.State(), c.Active())
	}
}

func TestIdleWithoutTarget(t *testing.T) {
	c, body, weapon, log := newRig(config.Tuning{ActivationRange: 10})
	start := body.pos

	for range 100 {
		c.Step(0.02, nil)
	}
	if c.State() != Idle || len(log.steps) != 0 {
		t.Fatalf("state = %s transitions = %v", c.State(), log.steps)
	}
	if body.pos != start || len(weapon.shots) != 0 {
		t.Fatal("idle controller moved or fired")
	}
}

func TestIdleWhileTargetOutOfRange(t *testing.T) {
	c, body, _, _ := newRig(config.Tuning{ActivationRange: 10})
	target := &testTarget{pos: body.pos.Add(gamemath.Vec3{Z: 10.5})}

	for range 50 {
		c.Step(0.02, target)
	}
	if c.State() != Idle {
		t.Fatalf("state = %s, want idle", c.State())
	}

	// Exactly on the boundary counts as in range.
	target.pos = body.pos.Add(gamemath.Vec3{Z: 10})
	c.Step(0.02, target)
	if c.State() != Approaching {
		t.Fatalf("state = %s, want approaching", c.State())
	}
}

func TestFullCycleTiming(t *testing.T) {
	const dt = 0.125 // exactly representable, so tick counts are exact
	c, body, weapon, log := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 2, HideDuration: 1})
	initial := c.InitialPosition()
	attack := c.AttackPosition()
	target := &testTarget{pos: initial.Add(gamemath.Vec3{Z: 5})}

	// Approach: 1s / 0.125 = 8 ticks, the first of which also leaves Idle.
	for i := 1; i <= 8; i++ {
		c.Step(dt, target)
		if c.State() != Approaching {
			t.Fatalf("tick %d: state = %s", i, c.State())
		}
		if i == 4 {
			mid := initial.Lerp(attack, 0.5)
			if !body.pos.ApproxEqual(mid, 1e-6) {
				t.Fatalf("halfway position = %v, want %v", body.pos, mid)
			}
		}
	}
	if !body.pos.ApproxEqual(attack, 1e-9) {
		t.Fatalf("after approach at %v, want %v", body.pos, attack)
	}

	// Fire: ceil(2 / 0.125) = 16 ticks, one shot each.
	for i := 1; i <= 16; i++ {
		c.Step(dt, target)
		if c.State() != Firing {
			t.Fatalf("fire tick %d: state = %s", i, c.State())
		}
	}
	if len(weapon.shots) != 16 {
		t.Fatalf("shots = %d, want 16", len(weapon.shots))
	}
	wantAim := target.pos.Add(gamemath.Vec3{Y: 1})
	for i, s := range weapon.shots {
		if s.point != wantAim || s.target != Target(target) {
			t.Fatalf("shot %d = %+v, want aim %v", i, s, wantAim)
		}
	}

	// Retreat: 8 ticks back to the initial post.
	for i := 1; i <= 8; i++ {
		c.Step(dt, target)
		if c.State() != Retreating {
			t.Fatalf("retreat tick %d: state = %s", i, c.State())
		}
	}
	if !body.pos.ApproxEqual(initial, 1e-9) {
		t.Fatalf("after retreat at %v, want %v", body.pos, initial)
	}

	// Hide: 8 ticks of waiting, no shots.
	for i := 1; i <= 8; i++ {
		c.Step(dt, target)
		if c.State() != Hiding {
			t.Fatalf("hide tick %d: state = %s", i, c.State())
		}
	}
	if len(weapon.shots) != 16 {
		t.Fatalf("fired while retreating or hiding: %d shots", len(weapon.shots))
	}

	// Next tick: the wait ends, the target is re-checked and a new cycle starts.
	c.Step(dt, target)
	if c.State() != Approaching {
		t.Fatalf("state = %s, want approaching", c.State())
	}

	want := []State{Approaching, Firing, Retreating, Hiding, Idle, Approaching}
	if len(log.steps) != len(want) {
		t.Fatalf("transitions = %v, want %v", log.steps, want)
	}
	for i := range want {
		if log.steps[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", log.steps, want)
		}
	}
}

func TestCycleReturnsToIdleWhenTargetLeaves(t *testing.T) {
	const dt = 0.125
	c, _, _, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 1, HideDuration: 1})
	target := &testTarget{pos: c.InitialPosition().Add(gamemath.Vec3{X: 3})}

	stepsUntil(t, c, dt, target, Hiding)
	target.pos = target.pos.Add(gamemath.Vec3{X: 50})

	n := stepsUntil(t, c, dt, target, Idle)
	// 8 hiding ticks counting the one that entered Hiding, then the tick that
	// ends the wait finds no target and stays idle.
	if n != 8 {
		t.Fatalf("took %d ticks to go idle, want 8", n)
	}
	for range 20 {
		c.Step(dt, target)
		if c.State() != Idle {
			t.Fatalf("state = %s with target out of range", c.State())
		}
	}
}

func TestExampleScenario(t *testing.T) {
	// range 10, attack 2, hide 1, tick 0.02, player 5m from the initial post.
	const dt = 0.02
	c, _, weapon, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 2, HideDuration: 1})
	target := &testTarget{pos: c.InitialPosition().Add(gamemath.Vec3{Z: 5})}

	counts := map[State]int{}
	c.Step(dt, target)
	if c.State() != Approaching {
		t.Fatalf("first tick state = %s, want approaching", c.State())
	}
	counts[Approaching]++

	for {
		c.Step(dt, target)
		if c.State() == Approaching && counts[Hiding] > 0 {
			break
		}
		counts[c.State()]++
		if counts[Idle] > 0 {
			t.Fatal("went idle with the target in range")
		}
	}

	near := func(got, want int) bool { return got >= want-1 && got <= want+1 }
	if !near(counts[Approaching], 50) || !near(counts[Firing], 100) ||
		!near(counts[Retreating], 50) || !near(counts[Hiding], 50) {
		t.Fatalf("tick counts = %v", counts)
	}
	if !near(len(weapon.shots), 100) || len(weapon.shots) != counts[Firing] {
		t.Fatalf("shots = %d, firing ticks = %d", len(weapon.shots), counts[Firing])
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	cycle := (2*config.AI.MoveDuration + 2 + 1) / dt
	if math.Abs(float64(total)-cycle) > 4 {
		t.Fatalf("cycle took %d ticks, want about %v", total, cycle)
	}
}

func TestFireCountMatchesCeil(t *testing.T) {
	tests := []struct {
		attack float64
		dt     float64
		want   int
	}{
		{attack: 0, dt: 0.125, want: 0},
		{attack: 0.1, dt: 0.125, want: 1},
		{attack: 1, dt: 0.25, want: 4},
		{attack: 1.1, dt: 0.25, want: 5},
		{attack: 3, dt: 0.5, want: 6},
		{attack: 7, dt: 0.02, want: 350},
		{attack: 7, dt: 0.1, want: 70},
		{attack: 7, dt: 1.0 / 60, want: 420},
		{attack: 2, dt: 1.0 / 60, want: 120},
		{attack: 1, dt: 0.1, want: 10},
		{attack: 1, dt: 1.0 / 30, want: 30},
		{attack: 2.5, dt: 0.02, want: 125},
		{attack: 0.3, dt: 0.1, want: 3},
	}
	for _, tt := range tests {
		c, _, weapon, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: tt.attack, HideDuration: 1})
		target := &testTarget{pos: c.InitialPosition()}

		stepsUntil(t, c, tt.dt, target, Retreating)
		if len(weapon.shots) != tt.want {
			t.Errorf("attack %v dt %v: shots = %d, want %d", tt.attack, tt.dt, len(weapon.shots), tt.want)
		}
		if want := int(math.Ceil(tt.attack/tt.dt - 1e-9)); want != tt.want {
			t.Fatalf("table entry disagrees with ceil: %d", want)
		}
	}
}

func TestPhaseTicksAtCommonTickRates(t *testing.T) {
	tests := []struct {
		dt   float64
		move int
		hide float64
		wait int
	}{
		{dt: 0.02, move: 50, hide: 1, wait: 50},
		{dt: 0.1, move: 10, hide: 0.3, wait: 3},
		{dt: 1.0 / 60, move: 60, hide: 2, wait: 120},
		{dt: 1.0 / 30, move: 30, hide: 7, wait: 210},
	}
	for _, tt := range tests {
		c, body, _, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 0, HideDuration: tt.hide})
		target := &testTarget{pos: c.InitialPosition()}

		// The first Step leaves Idle and does the first move tick. The step
		// after the last move tick finds the approach done, and with zero
		// attack it starts the retreat in the same call.
		if got := stepsUntil(t, c, tt.dt, target, Retreating); got != tt.move+1 {
			t.Errorf("dt %v: approach took %d steps, want %d", tt.dt, got-1, tt.move)
		}

		// That step was the first retreat tick; the step after the last one
		// enters Hiding and does the first hide tick.
		if got := stepsUntil(t, c, tt.dt, target, Hiding); got != tt.move {
			t.Errorf("dt %v: retreat took %d more steps, want %d", tt.dt, got, tt.move)
		}
		if body.pos != c.InitialPosition() {
			t.Errorf("dt %v: retreat ended at %v, want %v", tt.dt, body.pos, c.InitialPosition())
		}

		// The step after the last hide tick falls through Idle into Approaching.
		if got := stepsUntil(t, c, tt.dt, target, Approaching); got != tt.wait {
			t.Errorf("dt %v: hide took %d steps, want %d", tt.dt, got, tt.wait)
		}
	}
}

func TestZeroDurationsSkipPhases(t *testing.T) {
	const dt = 0.25
	c, _, weapon, log := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 0, HideDuration: 0})
	target := &testTarget{pos: c.InitialPosition()}

	// 4 approach ticks, then firing ends immediately and the retreat starts
	// on the same tick.
	for range 5 {
		c.Step(dt, target)
	}
	if c.State() != Retreating {
		t.Fatalf("state = %s, want retreating", c.State())
	}
	if len(weapon.shots) != 0 {
		t.Fatalf("shots = %d with zero attack duration", len(weapon.shots))
	}

	for range 4 {
		c.Step(dt, target)
	}
	// Zero hide: Hiding -> Idle -> Approaching all on the same tick.
	if c.State() != Approaching {
		t.Fatalf("state = %s, want approaching", c.State())
	}
	want := []State{Approaching, Firing, Retreating, Hiding, Idle, Approaching}
	if len(log.steps) != len(want) {
		t.Fatalf("transitions = %v", log.steps)
	}
}

func TestFiringWithoutTargetOrWeapon(t *testing.T) {
	const dt = 0.25
	body := &testBody{right: gamemath.Vec3{X: 1}}
	c := NewController(config.Tuning{ActivationRange: 5, AttackDuration: 1, HideDuration: 1})
	c.Activate(body, nil)
	target := &testTarget{}

	stepsUntil(t, c, dt, target, Firing)
	// No weapon: firing is a silent no-op.
	c.Step(dt, target)

	// Target disappears mid-fire: the timer keeps running without shots.
	n := stepsUntil(t, c, dt, nil, Retreating)
	if n != 3 {
		t.Fatalf("firing lasted %d more ticks, want 3", n)
	}
}

func TestNoShotsWhenTargetGoneMidFire(t *testing.T) {
	const dt = 0.25
	c, _, weapon, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 1, HideDuration: 1})
	target := &testTarget{pos: c.InitialPosition()}

	stepsUntil(t, c, dt, target, Firing) // first shot
	c.Step(dt, nil)
	c.Step(dt, target)
	c.Step(dt, nil)
	if len(weapon.shots) != 2 {
		t.Fatalf("shots = %d, want 2", len(weapon.shots))
	}
}

func TestDeactivateAbandonsCycle(t *testing.T) {
	const dt = 0.125
	c, body, weapon, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 2, HideDuration: 1})
	target := &testTarget{pos: c.InitialPosition()}

	for range 4 {
		c.Step(dt, target)
	}
	midway := body.pos
	c.Deactivate()
	if c.Active() || c.State() != Idle {
		t.Fatalf("after Deactivate: active = %v state = %s", c.Active(), c.State())
	}

	for range 100 {
		c.Step(dt, target)
	}
	if body.pos != midway || len(weapon.shots) != 0 {
		t.Fatal("inactive controller kept running")
	}

	// Re-activation snapshots the posts from where the body is now.
	c.Activate(body, weapon)
	if c.InitialPosition() != midway {
		t.Fatalf("initial = %v, want %v", c.InitialPosition(), midway)
	}
	if want := midway.Add(gamemath.Vec3{X: 2}); !c.AttackPosition().ApproxEqual(want, 1e-12) {
		t.Fatalf("attack = %v, want %v", c.AttackPosition(), want)
	}
}

func TestDeactivateFromTransitionCallback(t *testing.T) {
	c, _, _, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 1, HideDuration: 1})
	c.OnTransition = func(_, to State) {
		if to == Approaching {
			c.Deactivate()
		}
	}
	c.Step(0.1, &testTarget{pos: c.InitialPosition()})
	if c.Active() || c.State() != Idle {
		t.Fatalf("active = %v state = %s", c.Active(), c.State())
	}
}

func TestIdleInvariant(t *testing.T) {
	const dt = 0.05
	c, _, _, log := newRig(config.Tuning{ActivationRange: 8, AttackDuration: 0.5, HideDuration: 0.5})
	initial := c.InitialPosition()
	target := &testTarget{}

	var entered int
	c.OnTransition = func(_, to State) {
		log.steps = append(log.steps, to)
		if to != Approaching {
			return
		}
		entered++
		if d := target.pos.Distance(initial); d > 8 {
			t.Fatalf("started approaching with target %v away", d)
		}
	}

	// Target sweeps back and forth through the activation range.
	for i := range 2000 {
		x := 20 * math.Sin(float64(i)*0.01)
		target.pos = initial.Add(gamemath.Vec3{X: x, Z: 1})

		var tgt Target = target
		if i%97 == 0 {
			tgt = nil
		}
		c.Step(dt, tgt)

		if c.State() == Idle && tgt != nil && target.pos.Distance(initial) <= 8 {
			t.Fatalf("tick %d: idle with target %v away", i, target.pos.Distance(initial))
		}
	}
	if entered == 0 {
		t.Fatal("target never triggered an attack")
	}
}

func TestSetTuningClamps(t *testing.T) {
	c := NewController(config.Tuning{ActivationRange: 500, AttackDuration: -2, HideDuration: 200})
	want := config.Tuning{ActivationRange: 100, AttackDuration: 0, HideDuration: 100}
	if c.Tuning() != want {
		t.Fatalf("Tuning = %+v, want %+v", c.Tuning(), want)
	}

	c.SetTuning(config.Tuning{ActivationRange: 0, AttackDuration: 3, HideDuration: 4})
	want = config.Tuning{ActivationRange: 1, AttackDuration: 3, HideDuration: 4}
	if c.Tuning() != want {
		t.Fatalf("Tuning = %+v, want %+v", c.Tuning(), want)
	}
}

func TestMovementIsLinear(t *testing.T) {
	const dt = 0.25
	c, body, _, _ := newRig(config.Tuning{ActivationRange: 10, AttackDuration: 1, HideDuration: 1})
	target := &testTarget{pos: c.InitialPosition()}

	for i := 1; i <= 3; i++ {
		c.Step(dt, target)
		want := c.InitialPosition().Lerp(c.AttackPosition(), float64(i)*dt)
		if !body.pos.ApproxEqual(want, 1e-6) {
			t.Fatalf("after %d ticks at %v, want %v", i, body.pos, want)
		}
	}

	c.Step(dt, target)
	if body.pos != c.AttackPosition() {
		t.Fatalf("move ended at %v, want %v", body.pos, c.AttackPosition())
	}
}

func TestStateString(t *testing.T) {
	if Firing.String() != "firing" || State(42).String() != "unknown" {
		t.Fatal("State.String")
	}
}
