package catalog

import (
	"fmt"
	"sort"
)

// Catalog holds the unit DAG with precomputed indices.
type Catalog struct {
	units      []Unit
	byID       map[string]*Unit
	dependents map[string][]string
	topoOrder  []string
	topoIndex  map[string]int
}

// New builds a catalog from a unit slice, validating it and computing a
// deterministic topological order (Kahn's algorithm).
func New(units []Unit) (*Catalog, error) {
	if err := Validate(units); err != nil {
		return nil, err
	}

	c := &Catalog{
		units:      units,
		byID:       make(map[string]*Unit, len(units)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(units)),
	}

	for i := range c.units {
		c.byID[c.units[i].ID] = &c.units[i]
	}
	for i := range c.units {
		for _, prereq := range c.units[i].Prerequisites {
			c.dependents[prereq] = append(c.dependents[prereq], c.units[i].ID)
		}
	}

	inDegree := make(map[string]int, len(units))
	for _, u := range units {
		inDegree[u.ID] = len(u.Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c.topoIndex[id] = len(c.topoOrder)
		c.topoOrder = append(c.topoOrder, id)

		deps := append([]string(nil), c.dependents[id]...)
		sort.Strings(deps)
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	return c, nil
}

// Get returns the unit with the given ID.
func (c *Catalog) Get(id string) (*Unit, error) {
	u, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", id)
	}
	return u, nil
}

// Units returns all units in topological order.
func (c *Catalog) Units() []Unit {
	out := make([]Unit, 0, len(c.topoOrder))
	for _, id := range c.topoOrder {
		out = append(out, *c.byID[id])
	}
	return out
}

// Len returns the number of units.
func (c *Catalog) Len() int {
	return len(c.units)
}

// Dependents returns the IDs of units that list id as a prerequisite.
func (c *Catalog) Dependents(id string) []string {
	out := append([]string(nil), c.dependents[id]...)
	sort.Strings(out)
	return out
}

// Unlocked returns the frontier: units whose prerequisites are all
// completed and which are not themselves completed, in topological order.
func (c *Catalog) Unlocked(completed map[string]bool) []Unit {
	var out []Unit
	for _, id := range c.topoOrder {
		if completed[id] {
			continue
		}
		u := c.byID[id]
		open := true
		for _, prereq := range u.Prerequisites {
			if !completed[prereq] {
				open = false
				break
			}
		}
		if open {
			out = append(out, *u)
		}
	}
	return out
}
