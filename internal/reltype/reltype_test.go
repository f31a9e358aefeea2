package reltype

import (
	"testing"
)

func TestNewRegistry_BuiltinsPresent(t *testing.T) {
	r := NewRegistry(nil)
	for _, id := range []string{"parent", "father", "mother", "child", "spouse", "step_parent", "adoptive_parent", "foster_parent", "guardian"} {
		if _, ok := r.Get(id); !ok {
			t.Errorf("expected builtin %q", id)
		}
	}
}

func TestNewRegistry_OverrideReplacesBuiltin(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "step_parent", Label: "Bonus parent", IncludeOnTree: false, Mapping: CategoryStepParent},
	})

	d, ok := r.Get("step_parent")
	if !ok {
		t.Fatal("expected step_parent")
	}
	if d.Label != "Bonus parent" {
		t.Errorf("expected override label, got %q", d.Label)
	}
	if _, ok := r.MappingFor("step_parent"); ok {
		t.Error("inclusion off should suppress the mapping")
	}
}

func TestNewRegistry_UserAddition(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "godparent", Label: "Godparent", IncludeOnTree: true, Mapping: CategoryGuardian},
	})

	mapping, ok := r.MappingFor("godparent")
	if !ok {
		t.Fatal("expected godparent mapping")
	}
	if mapping != CategoryGuardian {
		t.Errorf("expected guardian mapping, got %q", mapping)
	}
}

func TestMappingFor_InvalidMappingIgnored(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "mentor", Label: "Mentor", IncludeOnTree: true, Mapping: "sibling_of_sorts"},
	})
	if _, ok := r.MappingFor("mentor"); ok {
		t.Error("invalid mapping should contribute nothing")
	}
}

func TestMappingFor_FosterExcludedByDefault(t *testing.T) {
	r := NewRegistry(nil)
	if _, ok := r.MappingFor("foster_parent"); ok {
		t.Error("foster_parent should be opt-in")
	}
	if _, ok := r.MappingFor("guardian"); ok {
		t.Error("guardian should be opt-in")
	}
	if _, ok := r.MappingFor("adoptive_parent"); !ok {
		t.Error("adoptive_parent should be included by default")
	}
}

func TestList_SortedByID(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "zz_custom", Label: "Custom"},
		{ID: "aa_custom", Label: "Custom"},
	})
	defs := r.List()
	for i := 1; i < len(defs); i++ {
		if defs[i-1].ID >= defs[i].ID {
			t.Fatalf("list not sorted: %q before %q", defs[i-1].ID, defs[i].ID)
		}
	}
}

func TestLabelFor(t *testing.T) {
	r := NewRegistry(nil)
	if got := r.LabelFor("step_parent"); got != "Step-parent" {
		t.Errorf("expected Step-parent, got %q", got)
	}
	if got := r.LabelFor("no_such_type"); got != "no_such_type" {
		t.Errorf("expected id fallback, got %q", got)
	}
}
