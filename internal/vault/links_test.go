package vault

import (
	"testing"
)

func TestLinkIndex_ExactName(t *testing.T) {
	ix := NewLinkIndex()
	ix.AddName("Jane Doe", "jane-1950")

	id, ok := ix.Resolve("Jane Doe")
	if !ok || id != "jane-1950" {
		t.Errorf("expected jane-1950, got %q (%v)", id, ok)
	}
}

func TestLinkIndex_AliasFallback(t *testing.T) {
	ix := NewLinkIndex()
	ix.AddName("Jane Doe", "jane-1950")
	ix.AddAlias("Janie", "jane-1950")

	id, ok := ix.Resolve("Janie")
	if !ok || id != "jane-1950" {
		t.Errorf("expected alias resolution, got %q (%v)", id, ok)
	}
}

func TestLinkIndex_CaseInsensitiveFallback(t *testing.T) {
	ix := NewLinkIndex()
	ix.AddName("Jane Doe", "jane-1950")

	id, ok := ix.Resolve("jane doe")
	if !ok || id != "jane-1950" {
		t.Errorf("expected case-insensitive match, got %q (%v)", id, ok)
	}
}

func TestLinkIndex_NameBeatsAlias(t *testing.T) {
	ix := NewLinkIndex()
	ix.AddName("Jane", "jane-primary")
	ix.AddAlias("Jane", "jane-aliased")

	id, ok := ix.Resolve("Jane")
	if !ok || id != "jane-primary" {
		t.Errorf("expected primary name to win, got %q (%v)", id, ok)
	}
}

func TestLinkIndex_AmbiguousNameDoesNotResolve(t *testing.T) {
	ix := NewLinkIndex()
	ix.AddName("John Smith", "john-1")
	ix.AddName("John Smith", "john-2")

	if id, ok := ix.Resolve("John Smith"); ok {
		t.Errorf("ambiguous name should not resolve, got %q", id)
	}
}

func TestLinkIndex_SameIDTwiceIsNotAConflict(t *testing.T) {
	ix := NewLinkIndex()
	ix.AddName("Jane", "jane-1")
	ix.AddName("Jane", "jane-1")

	if _, ok := ix.Resolve("Jane"); !ok {
		t.Error("re-registering the same id should keep resolving")
	}
}

func TestLinkIndex_Unresolved(t *testing.T) {
	ix := NewLinkIndex()
	if _, ok := ix.Resolve("Nobody"); ok {
		t.Error("expected no resolution")
	}
	if _, ok := ix.Resolve(""); ok {
		t.Error("empty reference should not resolve")
	}
}
