package graph

import (
	"testing"
)

func TestBuild_InfersChildren(t *testing.T) {
	g := Build([]*Person{
		{ID: "father"},
		{ID: "mother"},
		{ID: "kid", Father: "father", Mother: "mother"},
	}, nil)

	father, _ := g.Person("father")
	if len(father.Children) != 1 || father.Children[0] != "kid" {
		t.Errorf("expected inferred child on father, got %v", father.Children)
	}
	mother, _ := g.Person("mother")
	if len(mother.Children) != 1 || mother.Children[0] != "kid" {
		t.Errorf("expected inferred child on mother, got %v", mother.Children)
	}
}

func TestBuild_InferredChildNotDuplicated(t *testing.T) {
	g := Build([]*Person{
		{ID: "father", Children: []string{"kid"}},
		{ID: "kid", Father: "father"},
	}, nil)

	father, _ := g.Person("father")
	if len(father.Children) != 1 {
		t.Errorf("expected declared child not duplicated, got %v", father.Children)
	}
}

func TestBuild_AdoptiveSymmetry(t *testing.T) {
	g := Build([]*Person{
		{ID: "parent-a", AdoptedChildren: []string{"kid-b"}},
		{ID: "kid-a", AdoptiveParents: []string{"parent-b"}},
		{ID: "parent-b"},
		{ID: "kid-b"},
	}, nil)

	parentB, _ := g.Person("parent-b")
	if len(parentB.AdoptedChildren) != 1 || parentB.AdoptedChildren[0] != "kid-a" {
		t.Errorf("expected adopted child inferred, got %v", parentB.AdoptedChildren)
	}
	kidB, _ := g.Person("kid-b")
	if len(kidB.AdoptiveParents) != 1 || kidB.AdoptiveParents[0] != "parent-a" {
		t.Errorf("expected adoptive parent inferred, got %v", kidB.AdoptiveParents)
	}
}

func TestBuild_DropsDanglingReferences(t *testing.T) {
	g := Build([]*Person{
		{
			ID:       "kid",
			Father:   "ghost-father",
			Mother:   "mother",
			Parents:  []string{"ghost-parent"},
			Children: []string{"ghost-child"},
			Spouses:  []Spouse{{ID: "ghost-spouse"}, {ID: "spouse"}},
		},
		{ID: "mother"},
		{ID: "spouse"},
	}, nil)

	kid, _ := g.Person("kid")
	if kid.Father != "" {
		t.Errorf("expected dangling father cleared, got %q", kid.Father)
	}
	if kid.Mother != "mother" {
		t.Errorf("expected resolvable mother kept, got %q", kid.Mother)
	}
	if len(kid.Parents) != 0 {
		t.Errorf("expected dangling parents dropped, got %v", kid.Parents)
	}
	if len(kid.Children) != 0 {
		t.Errorf("expected dangling children dropped, got %v", kid.Children)
	}
	if len(kid.Spouses) != 1 || kid.Spouses[0].ID != "spouse" {
		t.Errorf("expected only resolvable spouse kept, got %v", kid.Spouses)
	}
}

func TestBuild_PrunesRelTypesOfDroppedTargets(t *testing.T) {
	p := &Person{ID: "kid", Guardians: []string{"ghost"}}
	p.SetRelType("ghost", "godparent")
	g := Build([]*Person{p}, nil)

	kid, _ := g.Person("kid")
	if _, ok := kid.RelTypeFor("ghost"); ok {
		t.Error("expected rel type of dropped target pruned")
	}
}

func TestBuild_DuplicateIDKeepsFirst(t *testing.T) {
	g := Build([]*Person{
		{ID: "dup", Name: "First"},
		{ID: "dup", Name: "Second"},
	}, nil)

	if g.Len() != 1 {
		t.Fatalf("expected one person, got %d", g.Len())
	}
	p, _ := g.Person("dup")
	if p.Name != "First" {
		t.Errorf("expected first record kept, got %q", p.Name)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	g := Build(nil, nil)
	if g.Len() != 0 {
		t.Errorf("expected empty graph, got %d people", g.Len())
	}
	if g.SnapshotID == "" {
		t.Error("expected a snapshot id even for an empty graph")
	}
}

func TestBuild_DeterministicIDs(t *testing.T) {
	people := func() []*Person {
		return []*Person{{ID: "charlie"}, {ID: "alice"}, {ID: "bob"}}
	}
	a := Build(people(), nil)
	b := Build(people(), nil)

	idsA, idsB := a.IDs(), b.IDs()
	if len(idsA) != len(idsB) {
		t.Fatalf("length mismatch: %v vs %v", idsA, idsB)
	}
	for i := range idsA {
		if idsA[i] != idsB[i] {
			t.Fatalf("order differs: %v vs %v", idsA, idsB)
		}
	}
	if idsA[0] != "alice" || idsA[1] != "bob" || idsA[2] != "charlie" {
		t.Errorf("expected sorted ids, got %v", idsA)
	}
}

func TestParentIDs_Order(t *testing.T) {
	p := &Person{Father: "f", Mother: "m", Parents: []string{"x", "f"}}
	ids := p.ParentIDs()
	if len(ids) != 3 || ids[0] != "f" || ids[1] != "m" || ids[2] != "x" {
		t.Errorf("unexpected parent ids %v", ids)
	}
}
