package record

import "strings"

// Kind represents the kind of a record.
type Kind string

const (
	KindPerson       Kind = "person"
	KindSource       Kind = "source"
	KindEvent        Kind = "event"
	KindPlace        Kind = "place"
	KindOrganization Kind = "organization"
	KindNote         Kind = "note"
	KindUnknown      Kind = "unknown"
)

// Classifier determines what kind of record a raw record is.
type Classifier interface {
	Kind(r *Record) Kind
}

// personShapedFields are fields whose presence marks a record as a person
// when no explicit type is declared.
var personShapedFields = []string{
	"sex", "born", "died",
	"father", "mother", "parents",
	"father_id", "mother_id", "parent_ids",
	"spouses", "spouse_ids",
	"children", "child_ids",
	"relationships",
}

// knownKinds maps explicit type declarations to record kinds.
var knownKinds = map[string]Kind{
	"person":       KindPerson,
	"individual":   KindPerson,
	"source":       KindSource,
	"event":        KindEvent,
	"place":        KindPlace,
	"organization": KindOrganization,
	"org":          KindOrganization,
	"note":         KindNote,
}

// DefaultClassifier classifies records from their field map alone. An
// explicit type declaration wins; otherwise any person-shaped field makes
// the record a person.
type DefaultClassifier struct{}

// Kind implements Classifier.
func (DefaultClassifier) Kind(r *Record) Kind {
	for _, key := range []string{"cr_type", "type"} {
		v, ok := r.Field(key)
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if kind, ok := knownKinds[strings.ToLower(strings.TrimSpace(s))]; ok {
			return kind
		}
		return KindUnknown
	}

	for _, f := range personShapedFields {
		if _, ok := r.Field(f); ok {
			return KindPerson
		}
	}

	return KindUnknown
}
