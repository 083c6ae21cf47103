package systems

import (
	"math"
	"testing"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frame = 1.0 / 60

type testSim struct {
	world   donburi.World
	ecs     *ecs.ECS
	input   *ScriptedSource
	session *donburi.Entry
}

func newTestSim(t *testing.T) *testSim {
	t.Helper()
	world := donburi.NewWorld()
	input := &ScriptedSource{}
	return &testSim{
		world:   world,
		ecs:     NewSimulation(world, input),
		input:   input,
		session: factory.CreateSession(world, 1),
	}
}

// setDelta primes the clock for calling a single stage directly.
func (s *testSim) setDelta(dt float64) {
	components.Clock.Get(s.session).Delta = dt
}

func (s *testSim) steps(n int) {
	for i := 0; i < n; i++ {
		Step(s.ecs, frame)
	}
}

func obstacles(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Obstacle.Each(w, func(e *donburi.Entry) { out = append(out, e) })
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestStepClampsNegativeDelta(t *testing.T) {
	s := newTestSim(t)
	player := factory.CreatePlayer(s.world, 0, 500)
	components.Velocity.Get(player).Y = -100

	Step(s.ecs, -1)

	if got := components.Clock.Get(s.session).Delta; got != 0 {
		t.Errorf("Delta = %v, want 0", got)
	}
	if y := components.Transform.Get(player).Position.Y; y != 500 {
		t.Errorf("player moved to y=%v on a non-positive delta", y)
	}
}

func TestStepWithoutEntitiesIsNoop(t *testing.T) {
	world := donburi.NewWorld()
	e := NewSimulation(world, nil)
	for i := 0; i < 10; i++ {
		Step(e, frame)
	}
	if n := len(obstacles(world)); n != 0 {
		t.Errorf("spawned %d obstacles without a session", n)
	}
}

func TestSessionCountsFrames(t *testing.T) {
	s := newTestSim(t)
	s.steps(30)
	if f := components.Clock.Get(s.session).Frame; f != 30 {
		t.Errorf("Frame = %d, want 30", f)
	}
	if el := components.GameTimer.Get(s.session).Elapsed; !approx(el, 0.5) {
		t.Errorf("GameTimer.Elapsed = %v, want 0.5", el)
	}
}
