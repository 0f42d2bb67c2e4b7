package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ksander/retain/internal/rating"
)

// Validate performs all structural checks on a unit set. It returns a
// combined error describing every problem found, or nil.
func Validate(units []Unit) error {
	var errs []string

	idSet := make(map[string]bool, len(units))
	for _, u := range units {
		if u.ID == "" {
			errs = append(errs, "unit with empty ID")
			continue
		}
		if idSet[u.ID] {
			errs = append(errs, fmt.Sprintf("duplicate unit ID: %q", u.ID))
		}
		idSet[u.ID] = true

		if u.Difficulty < rating.MinRating || u.Difficulty > rating.MaxRating {
			errs = append(errs, fmt.Sprintf("unit %q difficulty %.0f outside [%d, %d]",
				u.ID, u.Difficulty, rating.MinRating, rating.MaxRating))
		}
	}

	for _, u := range units {
		for _, prereq := range u.Prerequisites {
			if !idSet[prereq] {
				errs = append(errs, fmt.Sprintf("unit %q references nonexistent prerequisite %q", u.ID, prereq))
			}
			if prereq == u.ID {
				errs = append(errs, fmt.Sprintf("unit %q lists itself as a prerequisite", u.ID))
			}
		}
	}

	// Cycle check via Kahn's algorithm: any unit left unprocessed sits on
	// a cycle.
	inDegree := make(map[string]int, len(units))
	dependents := make(map[string][]string)
	for _, u := range units {
		inDegree[u.ID] = len(u.Prerequisites)
		for _, prereq := range u.Prerequisites {
			dependents[prereq] = append(dependents[prereq], u.ID)
		}
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	processed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		processed++
		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if processed < len(units) {
		var cyclic []string
		for id, deg := range inDegree {
			if deg > 0 {
				cyclic = append(cyclic, id)
			}
		}
		sort.Strings(cyclic)
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(cyclic, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
