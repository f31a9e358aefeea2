package extract

import (
	"strconv"
	"strings"
	"time"
)

// asString coerces a raw field value to a string. Dates that the YAML
// decoder resolved into time values come back in ISO form; anything
// without a sensible string form yields "".
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return ""
	}
}

// asStrings coerces a raw field value to a list of non-empty strings,
// accepting a scalar, a list of scalars, or a typed string slice.
func asStrings(v any) []string {
	var out []string
	add := func(s string) {
		if s != "" {
			out = append(out, s)
		}
	}
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			add(asString(item))
		}
	case []string:
		for _, item := range val {
			add(strings.TrimSpace(item))
		}
	default:
		add(asString(v))
	}
	return out
}

// asList coerces a raw field value to a list, wrapping a scalar.
func asList(v any) []any {
	switch val := v.(type) {
	case []any:
		return val
	case nil:
		return nil
	default:
		return []any{v}
	}
}

// asInt coerces a raw field value to an int, yielding 0 on anything
// non-numeric.
func asInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i
		}
	}
	return 0
}

// asBool coerces a raw field value to an optional bool.
func asBool(v any) *bool {
	switch val := v.(type) {
	case bool:
		b := val
		return &b
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return &b
		}
	}
	return nil
}
