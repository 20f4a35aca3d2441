// Package normalize converts the heterogeneous field shapes returned by the
// remote store (bare scalar, single-element link array, multi-select array,
// nested object) into canonical scalar and array values.
package normalize

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fields is the raw field map of one remote record as decoded from JSON.
type Fields map[string]any

// Value returns the tagged view of a named field. Absent fields yield a
// null Value.
func (f Fields) Value(name string) Value {
	raw, ok := f[name]
	return Value{raw: raw, present: ok}
}

// Value is a raw remote field value: scalar, array, or null.
type Value struct {
	raw     any
	present bool
}

// IsNull reports whether the field is absent or nil.
func (v Value) IsNull() bool {
	return !v.present || v.raw == nil
}

// Scalar collapses the value to a single element: first element of an
// array (nil if empty), the name or id member of a nested object, otherwise
// the value itself. Lossy for multi-valued fields by policy.
func (v Value) Scalar() any {
	if v.IsNull() {
		return nil
	}
	switch t := v.raw.(type) {
	case []any:
		if len(t) == 0 {
			return nil
		}
		return (Value{raw: t[0], present: true}).Scalar()
	case map[string]any:
		if name, ok := t["name"]; ok {
			return name
		}
		if id, ok := t["id"]; ok {
			return id
		}
		return nil
	default:
		return t
	}
}

// Array returns the value as a slice: arrays verbatim, scalars wrapped,
// nil for null.
func (v Value) Array() []any {
	if v.IsNull() {
		return nil
	}
	if arr, ok := v.raw.([]any); ok {
		return arr
	}
	return []any{v.raw}
}

// String coerces the scalar form to a string, empty when null.
func (v Value) String() string {
	s := v.Scalar()
	if s == nil {
		return ""
	}
	switch t := s.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// StringPtr is String returning nil for null or empty values, for nullable
// columns.
func (v Value) StringPtr() *string {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return nil
	}
	return &s
}

// Int coerces the scalar form to an integer. JSON numbers arrive as
// float64; numeric strings are accepted too.
func (v Value) Int() (int64, bool) {
	switch t := v.Scalar().(type) {
	case float64:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Float coerces the scalar form to a float64.
func (v Value) Float() (float64, bool) {
	switch t := v.Scalar().(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool reports a checkbox-style field; absent means false.
func (v Value) Bool() bool {
	b, _ := v.Scalar().(bool)
	return b
}

// Strings returns the array form with each element coerced to a string,
// dropping non-string elements. Used for multi-select fields.
func (v Value) Strings() []string {
	arr := v.Array()
	if len(arr) == 0 {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

var titleCaser = cases.Title(language.English)

// CleanText trims whitespace, strips non-printable characters, and
// title-cases. Meant for human-entered categorical and narrative fields,
// not identifiers or free-text commentary.
func CleanText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return titleCaser.String(strings.TrimSpace(b.String()))
}

// CleanPhone strips parentheses, spaces, and dashes from a phone number,
// returning nil when nothing remains.
func CleanPhone(s string) *string {
	repl := strings.NewReplacer("(", "", ")", "", "-", "", " ", "")
	cleaned := repl.Replace(s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"2006/01/02",
}

var timeFormats = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseDate tries a fixed ordered list of date formats, returning nil when
// none match. Defaults for absent dates are the caller's responsibility.
func ParseDate(s string) *time.Time {
	return parse(s, dateFormats)
}

// ParseTime is ParseDate for timestamp fields such as the remote record
// creation time.
func ParseTime(s string) *time.Time {
	return parse(s, timeFormats)
}

func parse(s string, formats []string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
