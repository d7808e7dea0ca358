package dupes

import (
	"reflect"
	"testing"

	"coderead/internal/extract"
)

func entity(name string, kind extract.Kind, class string, start, end int) *extract.Entity {
	return &extract.Entity{
		Name:      name,
		Kind:      kind,
		ClassName: class,
		StartLine: start,
		EndLine:   end,
	}
}

func TestFind_CrossClassBareNameCollision(t *testing.T) {
	entities := []*extract.Entity{
		entity("A", extract.KindClass, "", 1, 10),
		entity("process", extract.KindMethod, "A", 2, 5),
		entity("B", extract.KindClass, "", 12, 20),
		entity("process", extract.KindMethod, "B", 13, 16),
	}

	groups := Find(entities)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %+v", len(groups), groups)
	}

	g := groups[0]
	if g.Name != "process" || g.Kind != "callable" {
		t.Errorf("expected callable group 'process', got %+v", g)
	}
	if g.Count() != 2 {
		t.Fatalf("expected 2 members, got %d", g.Count())
	}
	if g.Members[0].Qualified != "A.process" || g.Members[1].Qualified != "B.process" {
		t.Errorf("expected members in source order with owning classes, got %+v", g.Members)
	}
}

func TestFind_MethodAndStandaloneCollide(t *testing.T) {
	entities := []*extract.Entity{
		entity("A", extract.KindClass, "", 1, 2),
		entity("run", extract.KindMethod, "A", 2, 2),
		entity("run", extract.KindFunction, "", 4, 4),
	}

	groups := Find(entities)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Name != "run" {
		t.Errorf("expected group 'run', got %q", g.Name)
	}
	if g.Members[0].Line != 2 || g.Members[1].Line != 4 {
		t.Errorf("expected occurrences at lines 2 and 4, got %+v", g.Members)
	}
}

func TestFind_ClassesGroupSeparately(t *testing.T) {
	// A class and a function with the same name are not a collision.
	entities := []*extract.Entity{
		entity("config", extract.KindClass, "", 1, 5),
		entity("config", extract.KindFunction, "", 7, 9),
	}
	if groups := Find(entities); len(groups) != 0 {
		t.Errorf("expected no groups across kinds, got %+v", groups)
	}

	// Two classes with one name are.
	entities = []*extract.Entity{
		entity("Config", extract.KindClass, "", 1, 5),
		entity("Config", extract.KindClass, "", 7, 9),
	}
	groups := Find(entities)
	if len(groups) != 1 || groups[0].Kind != "class" {
		t.Errorf("expected one class group, got %+v", groups)
	}
}

func TestFind_EmptyAndNoDuplicates(t *testing.T) {
	if groups := Find(nil); len(groups) != 0 {
		t.Errorf("expected empty output for empty input, got %+v", groups)
	}

	entities := []*extract.Entity{
		entity("alpha", extract.KindFunction, "", 1, 2),
		entity("beta", extract.KindFunction, "", 4, 5),
	}
	if groups := Find(entities); len(groups) != 0 {
		t.Errorf("expected no duplicates, got %+v", groups)
	}
}

func TestFind_Idempotent(t *testing.T) {
	entities := []*extract.Entity{
		entity("run", extract.KindFunction, "", 1, 2),
		entity("run", extract.KindFunction, "", 4, 5),
		entity("helper", extract.KindFunction, "", 7, 8),
		entity("helper", extract.KindFunction, "", 10, 11),
	}

	first := Find(entities)
	second := Find(entities)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results on repeated runs:\n%+v\n%+v", first, second)
	}
	if first[0].Name != "run" || first[1].Name != "helper" {
		t.Errorf("expected groups ordered by first occurrence, got %+v", first)
	}
}

func TestIntersecting(t *testing.T) {
	a := entity("run", extract.KindMethod, "A", 2, 5)
	b := entity("run", extract.KindMethod, "B", 10, 14)
	groups := Find([]*extract.Entity{a, b})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	if hits := Intersecting(groups, 4, 6); len(hits) != 1 {
		t.Errorf("expected intersection with span 4-6, got %+v", hits)
	}
	if hits := Intersecting(groups, 6, 9); len(hits) != 0 {
		t.Errorf("expected no intersection with span 6-9, got %+v", hits)
	}
}
