package consent

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// CookieName is the name of the cookie carrying consent preferences.
const CookieName = "cookie_consent_preferences"

// Reserved record fields. They are never treated as categories.
const (
	KeyTimestamp = "timestamp"
	KeyVersion   = "version"
)

// maxValueDepth bounds nesting of opaque values kept from untrusted input.
const maxValueDepth = 8

// Record is a consent-preferences record.
//
// Choices holds every boolean entry. Extra holds entries with any other
// value shape; they are carried through unchanged so foreign or future
// cookie fields survive a rewrite, but they never count as consent.
type Record struct {
	Choices   map[string]bool
	Extra     map[string]any
	Timestamp int64
	Version   string
}

// IsZero reports whether the record carries no data at all.
func (r Record) IsZero() bool {
	return len(r.Choices) == 0 && len(r.Extra) == 0 && r.Timestamp == 0 && r.Version == ""
}

// Allowed reports whether key holds exactly true.
func (r Record) Allowed(key string) bool {
	return r.Choices[key]
}

// Map returns the record as a flat map: choices, extra entries, and the
// reserved fields when they are set.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.Choices)+len(r.Extra)+2)
	for k, v := range r.Extra {
		m[k] = v
	}
	for k, v := range r.Choices {
		m[k] = v
	}
	if r.Timestamp != 0 {
		m[KeyTimestamp] = r.Timestamp
	}
	if r.Version != "" {
		m[KeyVersion] = r.Version
	}
	return m
}

func (r Record) clone() Record {
	out := Record{
		Choices:   make(map[string]bool, len(r.Choices)),
		Extra:     make(map[string]any, len(r.Extra)),
		Timestamp: r.Timestamp,
		Version:   r.Version,
	}
	for k, v := range r.Choices {
		out.Choices[k] = v
	}
	for k, v := range r.Extra {
		out.Extra[k] = v
	}
	return out
}

// RecordFromMap splits an arbitrary map into a Record. Values that cannot be
// encoded (functions, channels, non-finite numbers, structures nested deeper
// than a few levels) are dropped. Reserved fields with the wrong type are dropped.
func RecordFromMap(m map[string]any) Record {
	r := Record{
		Choices: make(map[string]bool),
		Extra:   make(map[string]any),
	}
	for k, v := range m {
		switch k {
		case KeyTimestamp:
			if ts, ok := toInt64(v); ok {
				r.Timestamp = ts
			}
			continue
		case KeyVersion:
			if s, ok := v.(string); ok {
				r.Version = s
			}
			continue
		}

		if b, ok := v.(bool); ok {
			r.Choices[k] = b
			continue
		}
		if clean, ok := sanitizeValue(v, 0); ok {
			r.Extra[k] = clean
		}
	}
	return r
}

// Decode parses a cookie value into a Record. Absent, empty, malformed or
// non-object input yields an empty Record; Decode never fails.
// Both percent-encoded and raw JSON values are accepted.
func Decode(raw string) Record {
	empty := Record{Choices: map[string]bool{}, Extra: map[string]any{}}
	if raw == "" {
		return empty
	}

	// Raw JSON is taken as-is so literal '%' sequences in values survive.
	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil || m == nil {
		return empty
	}
	// Trailing data means the value is not a single JSON object.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return empty
	}

	return RecordFromMap(m)
}

// Encode serializes r as a compact JSON object. The reserved fields are always
// present. The result is plain JSON; EncodeCookieValue makes it cookie-safe.
func Encode(r Record) (string, error) {
	m := make(map[string]any, len(r.Choices)+len(r.Extra)+2)
	for k, v := range r.Extra {
		if k == KeyTimestamp || k == KeyVersion {
			continue
		}
		m[k] = v
	}
	for k, v := range r.Choices {
		if k == KeyTimestamp || k == KeyVersion {
			continue
		}
		m[k] = v
	}
	m[KeyTimestamp] = r.Timestamp
	m[KeyVersion] = r.Version

	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeCookieValue percent-encodes a JSON payload so that it survives as a
// cookie value (quotes, commas and spaces are not valid cookie octets).
// Browser scripts read it back with decodeURIComponent.
func EncodeCookieValue(payload string) string {
	return url.PathEscape(payload)
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
		if f, err := x.Float64(); err == nil {
			return floatToInt64(f)
		}
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		return floatToInt64(x)
	}
	return 0, false
}

// floatToInt64 accepts whole numbers inside the int64 range only.
func floatToInt64(f float64) (int64, bool) {
	const limit = 1 << 63
	if f != math.Trunc(f) || f < -limit || f >= limit {
		return 0, false
	}
	return int64(f), true
}

// sanitizeValue keeps JSON-encodable scalars and bounded nested maps/slices.
func sanitizeValue(v any, depth int) (any, bool) {
	switch x := v.(type) {
	case nil, bool, string:
		return x, true
	case json.Number:
		if _, err := strconv.ParseFloat(x.String(), 64); err != nil {
			return nil, false
		}
		return x, true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, false
		}
		return x, true
	case float32:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return x, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return x, true
	case map[string]any:
		if depth >= maxValueDepth {
			return nil, false
		}
		out := make(map[string]any, len(x))
		for k, vv := range x {
			if clean, ok := sanitizeValue(vv, depth+1); ok {
				out[k] = clean
			}
		}
		return out, true
	case []any:
		if depth >= maxValueDepth {
			return nil, false
		}
		out := make([]any, 0, len(x))
		for _, vv := range x {
			if clean, ok := sanitizeValue(vv, depth+1); ok {
				out = append(out, clean)
			}
		}
		return out, true
	default:
		return nil, false
	}
}
