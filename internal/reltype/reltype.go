// Package reltype provides the relationship type registry: the catalog of
// built-in and user-defined relationship kinds, each carrying styling
// metadata and an optional mapping onto a structural edge category.
package reltype

import "sort"

// Category is a structural edge category a relationship type can map onto.
type Category string

const (
	CategoryParent         Category = "parent"
	CategoryStepParent     Category = "stepparent"
	CategoryAdoptiveParent Category = "adoptive_parent"
	CategoryFosterParent   Category = "foster_parent"
	CategoryGuardian       Category = "guardian"
	CategorySpouse         Category = "spouse"
	CategoryChild          Category = "child"
	CategoryFather         Category = "father"
	CategoryMother         Category = "mother"
)

// Valid reports whether the category is one of the known structural
// categories. An invalid category on a type definition is treated as no
// mapping at all.
func (c Category) Valid() bool {
	switch c {
	case CategoryParent, CategoryStepParent, CategoryAdoptiveParent,
		CategoryFosterParent, CategoryGuardian, CategorySpouse,
		CategoryChild, CategoryFather, CategoryMother:
		return true
	}
	return false
}

// Definition describes one relationship type.
type Definition struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Color string `yaml:"color,omitempty"`

	// IncludeOnTree gates whether edges of this type appear in traversal
	// output at all. Defaults to false for user-defined types.
	IncludeOnTree bool `yaml:"include_on_family_tree"`

	// Mapping is the structural category this type contributes to, empty
	// for none.
	Mapping Category `yaml:"family_graph_mapping,omitempty"`
}

// Builtins returns the built-in relationship types with their default
// inclusion flags. Step and adoptive parents are included by default;
// foster parents and guardians are opt-in.
func Builtins() []Definition {
	return []Definition{
		{ID: "parent", Label: "Parent", IncludeOnTree: true, Mapping: CategoryParent},
		{ID: "father", Label: "Father", IncludeOnTree: true, Mapping: CategoryFather},
		{ID: "mother", Label: "Mother", IncludeOnTree: true, Mapping: CategoryMother},
		{ID: "child", Label: "Child", IncludeOnTree: true, Mapping: CategoryChild},
		{ID: "spouse", Label: "Spouse", IncludeOnTree: true, Mapping: CategorySpouse},
		{ID: "step_parent", Label: "Step-parent", IncludeOnTree: true, Mapping: CategoryStepParent},
		{ID: "adoptive_parent", Label: "Adoptive parent", IncludeOnTree: true, Mapping: CategoryAdoptiveParent},
		{ID: "foster_parent", Label: "Foster parent", Mapping: CategoryFosterParent},
		{ID: "guardian", Label: "Guardian", Mapping: CategoryGuardian},
	}
}

// Registry is a catalog of relationship types, built-ins merged with user
// overrides and additions.
type Registry struct {
	types map[string]Definition
}

// NewRegistry builds a registry from the built-in types merged with the
// given overrides. A user definition with the same id as a built-in
// replaces it.
func NewRegistry(overrides []Definition) *Registry {
	types := make(map[string]Definition)
	for _, d := range Builtins() {
		types[d.ID] = d
	}
	for _, d := range overrides {
		if d.ID == "" {
			continue
		}
		types[d.ID] = d
	}
	return &Registry{types: types}
}

// Get returns the type definition for an id.
func (r *Registry) Get(id string) (Definition, bool) {
	d, ok := r.types[id]
	return d, ok
}

// List returns all type definitions sorted by id.
func (r *Registry) List() []Definition {
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	defs := make([]Definition, 0, len(ids))
	for _, id := range ids {
		defs = append(defs, r.types[id])
	}
	return defs
}

// MappingFor returns the structural category a type contributes to, if the
// type is included on the tree and carries a valid mapping. A type with
// an invalid or missing mapping, or with inclusion off, contributes
// nothing.
func (r *Registry) MappingFor(id string) (Category, bool) {
	d, ok := r.types[id]
	if !ok || !d.IncludeOnTree || !d.Mapping.Valid() {
		return "", false
	}
	return d.Mapping, true
}

// LabelFor returns the display label for a type id, falling back to the id
// itself when the type is unknown or unlabeled.
func (r *Registry) LabelFor(id string) string {
	if d, ok := r.types[id]; ok && d.Label != "" {
		return d.Label
	}
	return id
}
