// Package world ties a calendar, a planetary system, and a timeline of
// events into a single aggregate that can be saved and loaded.
package world

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arlyon/holding/internal/solar"
	"github.com/arlyon/holding/pkg/kronos"
)

var (
	// ErrTimeTravel is returned when a step would move time backwards.
	ErrTimeTravel = errors.New("cannot step backwards in time")

	// ErrNotJumped is returned when returning without a jump in effect.
	ErrNotJumped = errors.New("already in the canonical timeline")
)

// World is the complete state of an invented world.
type World struct {
	Name     string           `yaml:"name"`
	Calendar *kronos.Calendar `yaml:"calendar"`
	Time     kronos.Instant   `yaml:"time"`

	// CanonicalTime is set while the world has jumped to a different
	// point in time, and holds the place to return to.
	CanonicalTime *kronos.Instant `yaml:"canonical_time,omitempty"`

	HomePlanet uuid.UUID              `yaml:"home_planet"`
	Bodies     []*solar.CelestialBody `yaml:"bodies"`
	Records    []Record               `yaml:"records,omitempty"`
}

// Record is a note pinned to a point in the world's timeline.
type Record struct {
	ID   uuid.UUID      `yaml:"id"`
	Time kronos.Instant `yaml:"time"`
	Note string         `yaml:"note"`
}

// New creates a world with the given calendar and home planet at the
// start of its timeline.
func New(name string, cal *kronos.Calendar, home *solar.CelestialBody) *World {
	return &World{
		Name:       name,
		Calendar:   cal,
		HomePlanet: home.ID,
		Bodies:     []*solar.CelestialBody{home},
	}
}

// Default creates an Earth-like world: a home planet with one moon,
// orbiting a sun, on the default calendar.
func Default(name string) *World {
	w := New(name, kronos.Default(), solar.NewBody("Earth", 290, 86400))

	moon := w.CreatePlanet("Moon", 240, 86400)
	sun := w.CreatePlanet("Sun", 5800, 86400)

	// Orbit wiring on freshly created bodies cannot fail.
	if err := solar.AddOrbit(w, sun.ID, w.HomePlanet, 365); err != nil {
		panic(fmt.Sprintf("default world is invalid: %v", err))
	}
	if err := solar.AddOrbit(w, w.HomePlanet, moon.ID, 28); err != nil {
		panic(fmt.Sprintf("default world is invalid: %v", err))
	}

	return w
}

// Now returns the world's current time bound to its calendar.
func (w *World) Now() kronos.DateTime {
	return w.Calendar.DateTime(w.Time)
}

// Jumped reports whether the world has left its canonical timeline.
func (w *World) Jumped() bool {
	return w.CanonicalTime != nil
}

// AddRecord notes a piece of information at the current time. Time
// advances by one second so consecutive records keep their order.
func (w *World) AddRecord(note string) *Record {
	w.Records = append(w.Records, Record{
		ID:   uuid.New(),
		Time: w.Time,
		Note: note,
	})
	w.Time = w.Now().AddSeconds(1).Instant()
	return &w.Records[len(w.Records)-1]
}

// StepTime moves the world's time forward according to a time
// expression. Steps into the past are refused.
func (w *World) StepTime(expr string) error {
	now := w.Now()
	next, err := w.Calendar.Parse(expr, &now)
	if err != nil {
		return err
	}

	if next.Instant().Before(w.Time) {
		return ErrTimeTravel
	}

	w.Time = next.Instant()
	return nil
}

// JumpTime moves the world to a different point in time, in either
// direction, remembering the canonical time to return to. Jumping
// while already jumped keeps the original canonical time.
func (w *World) JumpTime(expr string) error {
	now := w.Now()
	next, err := w.Calendar.Parse(expr, &now)
	if err != nil {
		return err
	}

	if w.CanonicalTime == nil {
		t := w.Time
		w.CanonicalTime = &t
	}
	w.Time = next.Instant()
	return nil
}

// ReturnTime brings the world back to its canonical timeline.
func (w *World) ReturnTime() error {
	if w.CanonicalTime == nil {
		return ErrNotJumped
	}
	w.Time = *w.CanonicalTime
	w.CanonicalTime = nil
	return nil
}

// Validate checks that the world is internally consistent: the home
// planet exists and its periods agree with the calendar.
func (w *World) Validate() error {
	home, ok := w.Planet(w.HomePlanet)
	if !ok {
		return fmt.Errorf("home planet %s does not exist", w.HomePlanet)
	}
	if err := home.ValidateCalendar(w.Calendar); err != nil {
		return fmt.Errorf("home planet %q: %w", home.Name, err)
	}
	return nil
}

// Planet implements solar.PlanetStore.
func (w *World) Planet(id uuid.UUID) (*solar.CelestialBody, bool) {
	for _, b := range w.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// CreatePlanet implements solar.PlanetStore.
func (w *World) CreatePlanet(name string, temperature int, rotationalPeriod int64) *solar.CelestialBody {
	b := solar.NewBody(name, temperature, rotationalPeriod)
	w.Bodies = append(w.Bodies, b)
	return b
}
