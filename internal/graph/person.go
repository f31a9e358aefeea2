// Package graph provides the in-memory kinship graph: person nodes, typed
// edges, and the reconciliation pass that builds a consistent snapshot
// from extracted nodes.
package graph

// Sex is the canonical sex/gender marker, post alias resolution.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexOther   Sex = "other"
	SexUnknown Sex = "unknown"
)

// SpouseStatus is the status of a spouse relationship.
type SpouseStatus string

const (
	StatusCurrent   SpouseStatus = "current"
	StatusDivorced  SpouseStatus = "divorced"
	StatusWidowed   SpouseStatus = "widowed"
	StatusSeparated SpouseStatus = "separated"
	StatusAnnulled  SpouseStatus = "annulled"
)

// Spouse is one spouse relationship with its optional marriage metadata.
type Spouse struct {
	ID       string
	Married  string
	Divorced string
	Status   SpouseStatus
	Place    string
	// Order is the ordinal position used as a display tie-break.
	Order int
}

// Person is one node of the kinship graph. All relationship fields store
// identity keys, never raw text; after reconciliation every stored key
// resolves to a node in the same snapshot.
type Person struct {
	ID string

	Name        string
	Born        string
	Died        string
	BirthPlace  string
	DeathPlace  string
	BurialPlace string
	Occupation  string
	Sex         Sex
	// Living overrides living-status inference when set.
	Living *bool

	Father          string
	Mother          string
	Parents         []string
	StepFathers     []string
	StepMothers     []string
	StepParents     []string
	AdoptiveFather  string
	AdoptiveMother  string
	AdoptiveParents []string
	FosterParents   []string
	Guardians       []string
	AdoptedChildren []string
	Spouses         []Spouse
	Children        []string

	// RelTypes maps a target identity key to the custom relationship type
	// id that supplied the edge, so downstream styling is not flattened to
	// a generic parent/spouse edge. An entry exists only for targets that
	// also appear in a structural list.
	RelTypes map[string]string

	// Grouping attributes.
	ComponentLabel string
	Collection     string
	Universe       string

	// Derived attributes populated by later passes or external
	// collaborators.
	CitedBy       int
	CoverageScore *float64
	ConflictScore *float64
}

// ParentIDs returns the biological and gender-neutral parent ids in
// deterministic order: father, mother, then the parents list, without
// duplicates.
func (p *Person) ParentIDs() []string {
	var out []string
	if p.Father != "" {
		out = append(out, p.Father)
	}
	if p.Mother != "" && p.Mother != p.Father {
		out = appendUnique(out, p.Mother)
	}
	for _, id := range p.Parents {
		out = appendUnique(out, id)
	}
	return out
}

// AdoptiveParentIDs returns adoptive parent ids in deterministic order.
func (p *Person) AdoptiveParentIDs() []string {
	var out []string
	if p.AdoptiveFather != "" {
		out = append(out, p.AdoptiveFather)
	}
	if p.AdoptiveMother != "" {
		out = appendUnique(out, p.AdoptiveMother)
	}
	for _, id := range p.AdoptiveParents {
		out = appendUnique(out, id)
	}
	return out
}

// SpouseIDs returns the partner ids of all spouse relationships.
func (p *Person) SpouseIDs() []string {
	out := make([]string, 0, len(p.Spouses))
	for _, s := range p.Spouses {
		out = appendUnique(out, s.ID)
	}
	return out
}

// RelatedIDs returns every id this person references through any
// relationship field. Used for component detection and orphan counting.
func (p *Person) RelatedIDs() []string {
	var out []string
	for _, id := range p.ParentIDs() {
		out = appendUnique(out, id)
	}
	for _, id := range p.StepFathers {
		out = appendUnique(out, id)
	}
	for _, id := range p.StepMothers {
		out = appendUnique(out, id)
	}
	for _, id := range p.StepParents {
		out = appendUnique(out, id)
	}
	for _, id := range p.AdoptiveParentIDs() {
		out = appendUnique(out, id)
	}
	for _, id := range p.FosterParents {
		out = appendUnique(out, id)
	}
	for _, id := range p.Guardians {
		out = appendUnique(out, id)
	}
	for _, id := range p.AdoptedChildren {
		out = appendUnique(out, id)
	}
	for _, id := range p.SpouseIDs() {
		out = appendUnique(out, id)
	}
	for _, id := range p.Children {
		out = appendUnique(out, id)
	}
	return out
}

// RelTypeFor returns the custom relationship type id that supplied the
// edge to target, if any.
func (p *Person) RelTypeFor(target string) (string, bool) {
	if p.RelTypes == nil {
		return "", false
	}
	t, ok := p.RelTypes[target]
	return t, ok
}

// SetRelType records the originating relationship type for a target edge.
func (p *Person) SetRelType(target, typeID string) {
	if p.RelTypes == nil {
		p.RelTypes = make(map[string]string)
	}
	p.RelTypes[target] = typeID
}

func appendUnique(list []string, id string) []string {
	for _, have := range list {
		if have == id {
			return list
		}
	}
	return append(list, id)
}

// AppendUnique appends id to list unless it is already present.
func AppendUnique(list []string, id string) []string {
	return appendUnique(list, id)
}
