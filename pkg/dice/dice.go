// Package dice parses and rolls dice expressions like "2d6+1".
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
)

var rollRe = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// Roll is a parsed dice expression: a number of dice with the same
// number of sides, plus a flat modifier.
type Roll struct {
	Count    int
	Sides    int
	Modifier int
}

// Parse parses a dice expression. The count defaults to 1, so "d20"
// and "1d20" are equivalent.
func Parse(expr string) (Roll, error) {
	m := rollRe.FindStringSubmatch(expr)
	if m == nil {
		return Roll{}, fmt.Errorf("invalid dice expression %q", expr)
	}

	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	sides, _ := strconv.Atoi(m[2])
	modifier := 0
	if m[3] != "" {
		modifier, _ = strconv.Atoi(m[3])
	}

	if count < 1 {
		return Roll{}, fmt.Errorf("must roll at least one die, got %d", count)
	}
	if sides < 2 {
		return Roll{}, fmt.Errorf("dice need at least two sides, got %d", sides)
	}

	return Roll{Count: count, Sides: sides, Modifier: modifier}, nil
}

// Result holds the outcome of a roll.
type Result struct {
	Rolls []int
	Total int
}

// Roll throws the dice using the given source of randomness.
func (r Roll) Roll(rng *rand.Rand) Result {
	rolls := make([]int, r.Count)
	total := r.Modifier
	for i := range rolls {
		rolls[i] = rng.Intn(r.Sides) + 1
		total += rolls[i]
	}
	return Result{Rolls: rolls, Total: total}
}

// String formats the expression back into its canonical form.
func (r Roll) String() string {
	s := fmt.Sprintf("%dd%d", r.Count, r.Sides)
	if r.Modifier != 0 {
		s += fmt.Sprintf("%+d", r.Modifier)
	}
	return s
}
