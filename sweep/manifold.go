package sweep

import (
	"slices"

	"github.com/akmonengine/putt/actor"
	"github.com/akmonengine/putt/constraint"
	"github.com/go-gl/mathgl/mgl64"
)

// Manifold gathers the earliest contacts of a substep.
// Contacts whose travel distance is within EPSILON of the minimum are kept
// together: they are hit simultaneously (e.g. a ball entering a concave corner)
// and are resolved one after the other, in the order they were found.
type Manifold struct {
	Contacts []constraint.ContactConstraint
	// Distance traveled by the ball until the earliest contact
	Distance float64
	// Earliest time of impact
	Time float64
	// Ball center at the earliest contact
	Center mgl64.Vec2
}

func (m *Manifold) Empty() bool {
	return len(m.Contacts) == 0
}

func (m *Manifold) Reset() {
	m.Contacts = m.Contacts[:0]
	m.Distance = 0
	m.Time = 0
	m.Center = mgl64.Vec2{}
}

// Add records contact if it is at least as early as the current set.
// A strictly earlier contact (by more than EPSILON) replaces the whole set.
func (m *Manifold) Add(contact constraint.ContactConstraint, speed float64) {
	distance := contact.Time * speed

	if !m.Empty() {
		if distance > m.Distance+actor.EPSILON {
			return
		}
		if distance >= m.Distance-actor.EPSILON {
			if m.hasCorner(contact) {
				return
			}
			m.Contacts = append(m.Contacts, contact)
			if distance < m.Distance {
				m.setEarliest(contact, distance)
				m.dropLaterThanEarliest(speed)
			}
			return
		}
		m.Contacts = m.Contacts[:0]
	}

	m.Contacts = append(m.Contacts, contact)
	m.setEarliest(contact, distance)
}

func (m *Manifold) setEarliest(contact constraint.ContactConstraint, distance float64) {
	m.Distance = distance
	m.Time = contact.Time
	m.Center = contact.Center
}

// dropLaterThanEarliest removes the contacts that are no longer within
// EPSILON of the earliest one, once the earliest moved back
func (m *Manifold) dropLaterThanEarliest(speed float64) {
	m.Contacts = slices.DeleteFunc(m.Contacts, func(c constraint.ContactConstraint) bool {
		return c.Time*speed > m.Distance+actor.EPSILON
	})
}

// hasCorner reports whether the corner of contact is already in the set,
// reached through another segment sharing that endpoint.
func (m *Manifold) hasCorner(contact constraint.ContactConstraint) bool {
	if contact.Kind != constraint.ContactCorner {
		return false
	}
	for _, c := range m.Contacts {
		if c.Kind == constraint.ContactCorner && c.Point.Sub(contact.Point).Len() <= actor.EPSILON {
			return true
		}
	}
	return false
}
