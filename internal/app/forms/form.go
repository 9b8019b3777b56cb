// Package forms implements the course-offering form engine: decoding the
// repeated-group fields of the registration form, validating submissions
// against the modality-dependent business rules and normalizing accepted
// input into the canonical models.CourseOffering record.
//
// Everything in this package is pure and stateless. Validators and
// normalizers operate only on their arguments and are safe for concurrent
// use from multiple request handlers.
package forms

import (
	"net/url"
	"strings"
)

// Form is a decoded submission: each field name maps to the list of values
// posted under it. Repeated fields keep the "[]" suffix convention used by
// the front end (e.g. "endereco_unidade[]").
type Form map[string][]string

// FromValues adapts a parsed request body (url.Values from PostForm or a
// multipart form) into a Form.
func FromValues(values url.Values) Form {
	return Form(values)
}

// Get returns the first value posted under key, trimmed. Missing fields
// yield the empty string.
func (f Form) Get(key string) string {
	vs, ok := f[key]
	if !ok || len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0])
}

// GetDefault returns the first value under key, or def when the field is
// missing or blank.
func (f Form) GetDefault(key, def string) string {
	if v := f.Get(key); v != "" {
		return v
	}
	return def
}

// Values returns every value posted under key, unmodified.
func (f Form) Values(key string) []string {
	return f[key]
}

// HasValue reports whether at least one non-blank value was posted under key.
func (f Form) HasValue(key string) bool {
	return anyNonBlank(f[key])
}

// Flag interprets a sim/nao field. Anything other than "sim" is false.
func (f Form) Flag(key string) bool {
	return f.Get(key) == "sim"
}

// FlagDefault interprets a sim/nao field, falling back to def when the
// field is missing or blank.
func (f Form) FlagDefault(key string, def bool) bool {
	switch f.Get(key) {
	case "sim":
		return true
	case "nao":
		return false
	}
	return def
}

// Set replaces the values of a field. Used by callers that need to inject
// derived fields before validation (e.g. stored file references).
func (f Form) Set(key string, values ...string) {
	f[key] = values
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func anyNonBlank(vs []string) bool {
	for _, v := range vs {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
