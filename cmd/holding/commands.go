package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arlyon/holding/internal/persistence"
	"github.com/arlyon/holding/internal/world"
	"github.com/arlyon/holding/pkg/dice"
)

func store() *persistence.Store {
	return persistence.NewStore(worldPath, logger)
}

func newCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Forge a new world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, err := store().Create(name, force); err != nil {
				return err
			}
			fmt.Printf("Created world %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing world")

	return cmd
}

func nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Observe your surroundings",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := store().Load()
			if err != nil {
				return err
			}

			now := w.Now()
			year := now.Year()
			if era, display, ok := now.Era(); ok {
				fmt.Printf("It is %02d:%02d, %s on %s the %s day of %s in the year %d of the %s\n\n",
					now.Hour(), now.Minute(), now.TimeOfDay(), now.WeekDayName(),
					ordinal(now.Day()), now.MonthName(), display, era.Name)
			} else {
				fmt.Printf("It is %02d:%02d, %s on %s the %s day of %s in the year %d\n\n",
					now.Hour(), now.Minute(), now.TimeOfDay(), now.WeekDayName(),
					ordinal(now.Day()), now.MonthName(), year)
			}

			if w.Jumped() {
				fmt.Println("A sting in your temporal lobe indicates that this is not your native timeline...")
				fmt.Println()
			}

			describeSky(w)
			return nil
		},
	}
}

// describeSky prints what is visible from the home planet.
func describeSky(w *world.World) {
	home, ok := w.Planet(w.HomePlanet)
	if !ok {
		return
	}

	isDay := w.Now().TimeOfDay().IsDay()
	sky := "the night sky"
	if isDay {
		sky = "the sky"
	}
	fmt.Printf("You look up at %s from %s and you see\n", sky, home.Name)

	seen := false
	if isDay && home.Orbit != nil {
		if parent, ok := w.Planet(home.Orbit.Parent); ok {
			status := "hanging ominously"
			if parent.IsLuminous() {
				status = "shining brightly"
			}
			fmt.Printf("- The planet is orbiting around %s, %s in the sky.\n", parent.Name, status)
			seen = true
		}
	}

	for _, id := range home.Children {
		child, ok := w.Planet(id)
		if !ok {
			continue
		}
		seen = true
		if child.Orbit != nil {
			if phase, ok := child.Orbit.Phase(w, w.Time); ok {
				fmt.Printf("- %s The moon %s is %s.\n", phase.Unicode(), child.Name, phase)
				continue
			}
		}
		fmt.Printf("- The moon %s is floating in the sky.\n", child.Name)
	}

	if !seen {
		fmt.Println("Space is a cold and empty place.")
	}
}

func timeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Manipulate the very flow of time itself",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "step <expr>",
		Short: "Step forward in the flow of time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := store().Load()
			if err != nil {
				return err
			}

			if err := w.StepTime(args[0]); err != nil {
				return err
			}
			logger.Info("time stepped",
				zap.String("expr", args[0]),
				zap.Int64("time", w.Time.Seconds()))
			fmt.Printf("The time is now %s\n", w.Now())

			return store().Save(w)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "jump <expr>",
		Short: "Temporarily open a rift to a new point in time, preserving your place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := store().Load()
			if err != nil {
				return err
			}

			if err := w.JumpTime(args[0]); err != nil {
				return err
			}
			fmt.Println("You open a rift and step through.")
			fmt.Printf("The time is now %s\n", w.Now())

			return store().Save(w)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "return",
		Short: "Return to the canonical timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := store().Load()
			if err != nil {
				return err
			}

			if err := w.ReturnTime(); err != nil {
				return err
			}
			fmt.Println("You open a rift and step through.")
			fmt.Printf("You have returned to %s.\n", w.Now())

			return store().Save(w)
		},
	})

	return cmd
}

func recordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Keep a history of the world",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <note>",
		Short: "Record a piece of information about the world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := store().Load()
			if err != nil {
				return err
			}

			at := w.Now()
			record := w.AddRecord(args[0])
			fmt.Printf("Noted at %s:\n%s\n", at, record.Note)

			return store().Save(w)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Inspect the history of the world",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := store().Load()
			if err != nil {
				return err
			}

			for _, r := range w.Records {
				fmt.Printf("%s  %s\n", w.Calendar.DateTime(r.Time), r.Note)
			}
			return nil
		},
	})

	return cmd
}

func planetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "planets",
		Short: "Reveal information about celestial bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := store().Load()
			if err != nil {
				return err
			}

			fmt.Println("Known bodies:")
			for _, b := range w.Bodies {
				kind := "planet"
				switch {
				case b.IsLuminous():
					kind = "star"
				case b.Orbit != nil && b.Orbit.Parent == w.HomePlanet:
					kind = "moon"
				}
				fmt.Printf("- %s (%s)\n", b.Name, kind)
			}
			return nil
		},
	}
}

func rollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <dice>...",
		Short: "Tempt fate and throw some dice",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))

			for _, expr := range args {
				roll, err := dice.Parse(expr)
				if err != nil {
					return err
				}
				result := roll.Roll(rng)
				fmt.Printf("%s: %d %v\n", roll, result.Total, result.Rolls)
			}
			return nil
		},
	}
}

// ordinal renders 1 as "1st", 2 as "2nd", and so on.
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
