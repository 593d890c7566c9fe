package solar

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arlyon/holding/pkg/kronos"
)

// luminousThreshold is the surface temperature in kelvin above which a
// body gives off its own light.
const luminousThreshold = 3500

// CelestialBody is a sun, planet, or moon in a world's sky.
type CelestialBody struct {
	ID   uuid.UUID `yaml:"id"`
	Name string    `yaml:"name"`

	// Orbit is nil for bodies that do not orbit anything.
	Orbit *Orbit `yaml:"orbit,omitempty"`

	// Children holds the ids of the bodies orbiting this one.
	Children []uuid.UUID `yaml:"children,omitempty"`

	// RotationalPeriod is the length of the body's day in seconds.
	RotationalPeriod int64 `yaml:"rotational_period"`

	// Temperature is the surface temperature in kelvin.
	Temperature int `yaml:"temperature"`
}

// NewBody creates a celestial body with a fresh id and no orbit.
func NewBody(name string, temperature int, rotationalPeriod int64) *CelestialBody {
	return &CelestialBody{
		ID:               uuid.New(),
		Name:             name,
		Temperature:      temperature,
		RotationalPeriod: rotationalPeriod,
	}
}

// IsLuminous reports whether the body gives off its own light.
func (b *CelestialBody) IsLuminous() bool {
	return b.Temperature > luminousThreshold
}

// ValidateCalendar checks that the body's rotational period matches the
// calendar's day and, if the body orbits something, that its orbital
// period matches the calendar's year.
func (b *CelestialBody) ValidateCalendar(cal *kronos.Calendar) error {
	if day := cal.DaysToSeconds(1); b.RotationalPeriod != day {
		return fmt.Errorf("rotational period %d does not match the calendar day of %d seconds", b.RotationalPeriod, day)
	}
	if b.Orbit != nil {
		return b.Orbit.ValidateCalendar(cal)
	}
	return nil
}

// PlanetStore keeps track of celestial bodies.
type PlanetStore interface {
	// Planet looks up a body by id.
	Planet(id uuid.UUID) (*CelestialBody, bool)

	// CreatePlanet adds a new body and returns it.
	CreatePlanet(name string, temperature int, rotationalPeriod int64) *CelestialBody
}

// AddOrbit puts child into orbit around parent with the given period,
// measured in rotations of the child.
func AddOrbit(store PlanetStore, parentID, childID uuid.UUID, period int64) error {
	child, ok := store.Planet(childID)
	if !ok {
		return fmt.Errorf("no such body %s", childID)
	}
	if child.Orbit != nil {
		return fmt.Errorf("%s is already orbiting another body", child.Name)
	}
	parent, ok := store.Planet(parentID)
	if !ok {
		return fmt.Errorf("no such body %s", parentID)
	}

	orbit := OrbitFromPeriod(child, parentID, period, 0)
	child.Orbit = &orbit
	parent.Children = append(parent.Children, childID)
	return nil
}
