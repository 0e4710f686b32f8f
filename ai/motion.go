package ai

import (
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// motion moves a body from start to goal over a fixed duration. Elapsed time
// is tracked in float64 and the tween only maps it to progress; completion
// is decided by reached, and the completing tick lands exactly on the goal.
type motion struct {
	start, goal gamemath.Vec3
	duration    float64
	elapsed     float64
	progress    *gween.Tween
	done        bool
}

func newMotion(start, goal gamemath.Vec3, duration float64) *motion {
	return &motion{
		start:    start,
		goal:     goal,
		duration: duration,
		progress: gween.New(0, 1, float32(duration), ease.Linear),
	}
}

// advance moves elapsed forward by dt and returns the interpolated position.
func (m *motion) advance(dt float64) gamemath.Vec3 {
	m.elapsed += dt
	m.done = reached(m.elapsed, m.duration, dt)
	if m.done {
		return m.goal
	}

	t, _ := m.progress.Set(float32(m.elapsed))
	return m.start.Lerp(m.goal, float64(t))
}

// tickEpsilon is the fraction of a tick below which a phase counts as
// finished. A sum of n ticks of 1/60 or 0.1 can fall a few ulps short of or
// past the duration; without the slack a phase would run one extra tick.
const tickEpsilon = 1e-6

// reached reports whether elapsed covers duration, tolerating float
// accumulation error well below one tick of length dt. A phase of length d
// therefore lasts ceil(d/dt) ticks.
func reached(elapsed, duration, dt float64) bool {
	return elapsed >= duration-dt*tickEpsilon
}
