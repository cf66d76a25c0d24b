package putt

import (
	"github.com/akmonengine/putt/actor"
	"github.com/akmonengine/putt/constraint"
)

const (
	DEFAULT_WORKERS = 1
	// DEFAULT_MAX_SUBSTEPS bounds the number of contacts resolved in one tick.
	// A ball wedged between two close walls would otherwise bounce forever.
	DEFAULT_MAX_SUBSTEPS = 32

	EPSILON = actor.EPSILON
)

// Advance moves the ball through the field for dt ticks (1.0 for one full tick),
// bouncing off every wall met on the way.
//
// Advance is a pure function: the given ball is not modified, the new state is
// returned along with every contact resolved during the tick, for debugging
// overlays. The field is only read.
func Advance(ball actor.Ball, field *Field, dt float64) (actor.Ball, []constraint.ContactConstraint) {
	result := advance(ball, field, dt, DEFAULT_MAX_SUBSTEPS)

	return result.ball, result.contacts
}

type advanceResult struct {
	ball     actor.Ball
	contacts []constraint.ContactConstraint
	substeps int
	// The substep limit was reached before the budget was consumed
	stalled bool
}

// advance consumes the time budget of one tick, one contact at a time:
//  1. find the earliest contacts within the remaining budget
//  2. none: fly for the rest of the budget and stop
//  3. otherwise move the ball to the contact, reflect its velocity,
//     and start again with what is left of the budget
func advance(ball actor.Ball, field *Field, dt float64, maxSubsteps int) advanceResult {
	result := advanceResult{ball: ball}
	b := &result.ball

	if !b.Moving() {
		return result
	}

	budget := dt
	for budget > EPSILON {
		if result.substeps == maxSubsteps {
			// The ball stays where it is for the rest of the tick
			result.stalled = true
			break
		}
		result.substeps++

		// Phase 1: Broad phase
		candidates := BroadPhase(field, *b, budget)

		// Phase 2: Narrow phase
		manifold := NarrowPhase(*b, candidates, budget)

		if manifold.Empty() {
			b.Position = b.Position.Add(b.Velocity.Mul(budget))
			break
		}

		// Phase 3: move to the analytic contact point rather than by velocity*t,
		// so the ball never drifts into the wall
		b.Position = manifold.Center

		// Phase 4: Velocity
		b.Velocity = constraint.Solve(b.Velocity, manifold.Contacts)

		elapsed := dt - budget
		for _, contact := range manifold.Contacts {
			contact.At = elapsed + contact.Time
			result.contacts = append(result.contacts, contact)
		}

		budget -= manifold.Time
	}

	return result
}

type World struct {
	// Independent balls sharing the field. They never collide with each other.
	Balls []*actor.Ball
	Field *Field
	// Contacts resolved per ball and per tick, at most
	MaxSubsteps int
	Workers     int

	Events Events
}

// AddBall adds a ball to the world
func (w *World) AddBall(ball *actor.Ball) {
	w.Balls = append(w.Balls, ball)
}

// RemoveBall removes a ball from the world
func (w *World) RemoveBall(ball *actor.Ball) {
	k := -1
	for i, b := range w.Balls {
		if b == ball {
			k = i
			break
		}
	}

	if k != -1 {
		w.Balls = append(w.Balls[:k], w.Balls[k+1:]...)
	}
}

// Step advances every ball by dt ticks. The balls are simulated concurrently
// by Workers goroutines; events are then emitted in ball order.
func (w *World) Step(dt float64) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	if w.MaxSubsteps <= 0 {
		w.MaxSubsteps = DEFAULT_MAX_SUBSTEPS
	}

	results := make([]advanceResult, len(w.Balls))
	task(w.Workers, w.Balls, func(i int, ball *actor.Ball) {
		results[i] = advance(*ball, w.Field, dt, w.MaxSubsteps)
	})

	for i, ball := range w.Balls {
		*ball = results[i].ball
		w.Events.recordContacts(ball, results[i])
	}

	w.Events.flush()
}
