package extract

import (
	"regexp"
	"strings"

	"kin/internal/graph"
	"kin/internal/record"
)

// importArtifactPattern matches GEDCOM-style cross-reference identifiers
// (e.g. @I123@) left behind when an import could not translate a foreign
// reference. These are filtered out of every relationship field.
var importArtifactPattern = regexp.MustCompile(`^@[^@\s]+@$`)

// IsImportArtifact reports whether an identifier is an unresolved import
// artifact rather than a real identity key.
func IsImportArtifact(id string) bool {
	return importArtifactPattern.MatchString(id)
}

// directField returns the direct-identifier field name for a canonical
// relationship field.
var directField = map[string]string{
	"father":           "father_id",
	"mother":           "mother_id",
	"parents":          "parent_ids",
	"step_fathers":     "step_father_ids",
	"step_mothers":     "step_mother_ids",
	"adoptive_father":  "adoptive_father_id",
	"adoptive_mother":  "adoptive_mother_id",
	"adoptive_parents": "adoptive_parent_ids",
	"adopted_children": "adopted_child_ids",
	"children":         "child_ids",
	"spouses":          "spouse_ids",
}

// refScalar resolves an at-most-one relationship field. The direct
// identifier encoding wins; a textual reference is the fallback.
func (e *Extractor) refScalar(r *record.Record, canonical string) string {
	if ids := e.directIDs(r, canonical); len(ids) > 0 {
		return ids[0]
	}
	if ids := e.textualIDs(r, canonical); len(ids) > 0 {
		return ids[0]
	}
	return ""
}

// refList resolves a list relationship field, merging the direct and
// textual encodings with duplicates removed. Direct ids come first.
func (e *Extractor) refList(r *record.Record, canonical string) []string {
	out := e.directIDs(r, canonical)
	for _, id := range e.textualIDs(r, canonical) {
		out = graph.AppendUnique(out, id)
	}
	return out
}

// directIDs reads the direct-identifier encoding of a relationship field.
// Values are taken as identity keys; import artifacts are dropped.
func (e *Extractor) directIDs(r *record.Record, canonical string) []string {
	name, ok := directField[canonical]
	if !ok {
		return nil
	}
	v, ok := e.aliases.Field(r.Fields, name)
	if !ok {
		return nil
	}
	var out []string
	for _, s := range asStrings(v) {
		if IsImportArtifact(s) {
			e.log.Debug("dropping import artifact", "record", r.Path, "ref", s)
			continue
		}
		out = graph.AppendUnique(out, s)
	}
	return out
}

// textualIDs reads the textual encoding of a relationship field and
// resolves each reference through the link index. Unresolvable references
// are dropped.
func (e *Extractor) textualIDs(r *record.Record, canonical string) []string {
	v, ok := e.aliases.Field(r.Fields, canonical)
	if !ok {
		return nil
	}
	var out []string
	for _, s := range asStrings(v) {
		if id, ok := e.resolveRef(r, s); ok {
			out = graph.AppendUnique(out, id)
		}
	}
	return out
}

// resolveRef resolves one textual reference (a wikilink or bare name) to
// an identity key via the link resolution index.
func (e *Extractor) resolveRef(r *record.Record, raw string) (string, bool) {
	target := ParseLink(raw)
	if target == "" {
		return "", false
	}
	if IsImportArtifact(target) {
		e.log.Debug("dropping import artifact", "record", r.Path, "ref", raw)
		return "", false
	}
	id, ok := e.links.Resolve(target)
	if !ok {
		e.log.Debug("unresolved reference", "record", r.Path, "ref", raw)
		return "", false
	}
	if IsImportArtifact(id) {
		e.log.Debug("dropping import artifact", "record", r.Path, "ref", id)
		return "", false
	}
	return id, true
}

// ParseLink extracts the link target from a wikilink-style reference.
// [[Target]] and [[Target|Shown]] yield Target; anything else is returned
// trimmed.
func ParseLink(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[[") && strings.HasSuffix(s, "]]") {
		s = s[2 : len(s)-2]
		if i := strings.Index(s, "|"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return s
}
