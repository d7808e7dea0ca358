// Package dupes groups extracted entities by name and reports the
// groups that collide.
package dupes

import (
	"sort"

	"coderead/internal/extract"
)

// Occurrence describes one member of a duplicate group.
type Occurrence struct {
	Entity    *extract.Entity `json:"-"`
	Qualified string          `json:"qualifiedName"`
	ClassName string          `json:"className,omitempty"`
	Line      int             `json:"line"`
}

// Group holds every entity sharing one grouping key, in source order.
type Group struct {
	// Name is the grouping key: bare name for functions and methods,
	// class name for classes.
	Name string `json:"name"`
	// Kind distinguishes callable groups from class groups.
	Kind string `json:"kind"`
	// Members are ordered by source line.
	Members []Occurrence `json:"members"`
}

// Count returns the number of occurrences in the group.
func (g *Group) Count() int {
	return len(g.Members)
}

// Find returns every group with two or more members. Functions and
// methods group by bare name regardless of owning class, so same-name
// methods across classes surface alongside standalone redefinitions.
// Classes group separately by class name. Groups are ordered by the
// line of their first occurrence.
func Find(entities []*extract.Entity) []Group {
	callables := map[string]*Group{}
	classes := map[string]*Group{}
	var order []*Group

	for _, e := range entities {
		var bucket map[string]*Group
		var kind string
		switch e.Kind {
		case extract.KindClass:
			bucket, kind = classes, "class"
		default:
			bucket, kind = callables, "callable"
		}

		g, ok := bucket[e.Name]
		if !ok {
			g = &Group{Name: e.Name, Kind: kind}
			bucket[e.Name] = g
			order = append(order, g)
		}
		g.Members = append(g.Members, Occurrence{
			Entity:    e,
			Qualified: e.QualifiedName(),
			ClassName: e.ClassName,
			Line:      e.StartLine,
		})
	}

	var result []Group
	for _, g := range order {
		if g.Count() >= 2 {
			result = append(result, *g)
		}
	}

	// Source order of the first occurrence; the extractor emits classes
	// before their methods, so a stable re-sort by line keeps ties sane.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Members[0].Line < result[j].Members[0].Line
	})

	return result
}

// Intersecting returns the groups whose any member's span overlaps
// [start, end]. Used for inline warnings on resolved spans.
func Intersecting(groups []Group, start, end int) []Group {
	var hits []Group
	for _, g := range groups {
		for _, m := range g.Members {
			if m.Entity != nil && m.Entity.Intersects(start, end) {
				hits = append(hits, g)
				break
			}
		}
	}
	return hits
}
