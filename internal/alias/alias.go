// Package alias resolves canonical field names and canonical enumerated
// values from user-configured aliases and synonyms.
//
// Resolution is pure and deterministic: the resolver holds only the
// configuration maps handed to it at construction and never mutates them.
package alias

import (
	"sort"
	"strings"
)

// Built-in enumerations, keyed by value domain.
var builtinEnums = map[string][]string{
	"sex":    {"male", "female", "other", "unknown"},
	"status": {"current", "divorced", "widowed", "separated", "annulled"},
}

// Built-in synonym tables, consulted after user synonyms.
var builtinSynonyms = map[string]map[string]string{
	"sex": {
		"m":         "male",
		"man":       "male",
		"boy":       "male",
		"f":         "female",
		"woman":     "female",
		"girl":      "female",
		"nb":        "other",
		"nonbinary": "other",
		"x":         "other",
		"u":         "unknown",
	},
	"status": {
		"married":   "current",
		"divorce":   "divorced",
		"widow":     "widowed",
		"widower":   "widowed",
		"separate":  "separated",
		"annulment": "annulled",
	},
}

// Resolver resolves field names and enumerated values against user
// configuration.
type Resolver struct {
	// fieldsByCanonical maps a canonical field name to the user field
	// names aliased to it, sorted so the first match is deterministic.
	fieldsByCanonical map[string][]string

	// valueSynonyms maps domain -> lowercased raw value -> canonical.
	valueSynonyms map[string]map[string]string
}

// NewResolver builds a resolver from a user field-alias map (user field
// name -> canonical field name) and a user value-synonym map
// (domain -> raw value -> canonical value). Either may be nil.
func NewResolver(fieldAliases map[string]string, valueSynonyms map[string]map[string]string) *Resolver {
	byCanonical := make(map[string][]string)
	for user, canonical := range fieldAliases {
		byCanonical[canonical] = append(byCanonical[canonical], user)
	}
	for _, users := range byCanonical {
		sort.Strings(users)
	}

	synonyms := make(map[string]map[string]string)
	for domain, table := range valueSynonyms {
		lowered := make(map[string]string, len(table))
		for raw, canonical := range table {
			lowered[strings.ToLower(strings.TrimSpace(raw))] = canonical
		}
		synonyms[domain] = lowered
	}

	return &Resolver{
		fieldsByCanonical: byCanonical,
		valueSynonyms:     synonyms,
	}
}

// Field resolves the value of a canonical field on a raw field map. The
// canonical field name wins if present; otherwise the configured aliases
// for that canonical name are scanned in sorted order and the first one
// present wins.
func (r *Resolver) Field(fields map[string]any, canonical string) (any, bool) {
	if fields == nil {
		return nil, false
	}
	if v, ok := fields[canonical]; ok {
		return v, true
	}
	for _, user := range r.fieldsByCanonical[canonical] {
		if v, ok := fields[user]; ok {
			return v, true
		}
	}
	return nil, false
}

// Value resolves a raw value against a small enumeration domain. An exact
// case-insensitive match against the canonical enumeration wins; then the
// user synonym table; then the built-in synonym table; otherwise the raw
// value passes through unchanged. Value never fails.
func (r *Resolver) Value(domain, raw string) string {
	trimmed := strings.TrimSpace(raw)
	lowered := strings.ToLower(trimmed)

	for _, canonical := range builtinEnums[domain] {
		if lowered == canonical {
			return canonical
		}
	}
	if table, ok := r.valueSynonyms[domain]; ok {
		if canonical, ok := table[lowered]; ok {
			return canonical
		}
	}
	if table, ok := builtinSynonyms[domain]; ok {
		if canonical, ok := table[lowered]; ok {
			return canonical
		}
	}
	return trimmed
}

// InEnum reports whether a value is part of a built-in enumeration domain.
func InEnum(domain, value string) bool {
	for _, canonical := range builtinEnums[domain] {
		if value == canonical {
			return true
		}
	}
	return false
}
