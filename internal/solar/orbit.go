// Package solar models planetary systems with simple tree-shaped orbits.
// An orbit is only considered in relation to its parent body; siblings
// are ignored. Orbital periods are whole multiples of the orbiting
// body's rotational period so calendar arithmetic stays exact.
package solar

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/arlyon/holding/pkg/kronos"
)

// Orbit describes the path of a body around its parent.
type Orbit struct {
	// Parent is the id of the body being orbited.
	Parent uuid.UUID `yaml:"parent"`

	// Body is the id of the orbiting body.
	Body uuid.UUID `yaml:"body"`

	// Shift is the starting offset of the orbit in seconds.
	Shift int64 `yaml:"shift"`

	// Eccentricity is how elliptic the orbit is.
	Eccentricity float64 `yaml:"eccentricity"`

	// Period is the duration of a single orbit in seconds. It must be a
	// whole multiple of the orbiting body's rotational period.
	Period int64 `yaml:"period"`
}

// OrbitFromPeriod builds an orbit for target around parent. The period
// is given in rotations of the target body (its days); the shift too.
func OrbitFromPeriod(target *CelestialBody, parent uuid.UUID, period, shift int64) Orbit {
	seconds := period * target.RotationalPeriod
	return Orbit{
		Parent: parent,
		Body:   target.ID,
		Period: seconds,
		Shift:  shift * target.RotationalPeriod % seconds,
	}
}

// Radians returns the angle relative to the periapsis after the given
// number of seconds into the period.
func (o Orbit) Radians(seconds int64) float64 {
	frac := math.Mod(float64(seconds+o.Shift)/float64(o.Period), 1)
	return frac * 2 * math.Pi
}

// SemimajorAxis derives the semimajor axis from the period.
func (o Orbit) SemimajorAxis() float64 {
	return math.Pow(math.Pow(float64(o.Period), 2), -3)
}

// Distance returns the distance between the body and its parent after
// the given number of seconds into the period.
func (o Orbit) Distance(seconds int64) float64 {
	radians := o.Radians(seconds)
	return o.SemimajorAxis() * (1 - math.Pow(o.Eccentricity, 2)) /
		(1 + o.Eccentricity*math.Cos(radians))
}

// Phase computes the phase of the orbiting body as seen from its parent
// at a given instant. It is only defined for grandchild bodies: the
// body's parent must itself orbit a luminous body, and the body itself
// must not be luminous. The boolean is false when no phase is visible.
func (o Orbit) Phase(store PlanetStore, at kronos.Instant) (Phase, bool) {
	body, ok := store.Planet(o.Body)
	if !ok || body.IsLuminous() {
		return 0, false
	}

	parent, ok := store.Planet(o.Parent)
	if !ok || parent.Orbit == nil {
		return 0, false
	}

	sun, ok := store.Planet(parent.Orbit.Parent)
	if !ok || !sun.IsLuminous() {
		return 0, false
	}

	thetaBody := o.Radians(at.Modulo(o.Period))
	thetaParent := parent.Orbit.Radians(at.Modulo(parent.Orbit.Period))

	theta := thetaBody - thetaParent
	if theta < 0 {
		theta += 2 * math.Pi
	}

	// Scaling by 4/pi buckets the angle into [0, 8).
	return Phase(int(theta * 4 / math.Pi)), true
}

// ValidateCalendar checks that a full orbit matches the calendar's year.
func (o Orbit) ValidateCalendar(cal *kronos.Calendar) error {
	if year := cal.YearsToSeconds(1); o.Period != year {
		return fmt.Errorf("orbital period %d does not match the calendar year of %d seconds", o.Period, year)
	}
	return nil
}
