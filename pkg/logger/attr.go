package logger

import "log/slog"

// Error records err under the key "error". A nil error yields an empty Attr,
// which slog handlers skip.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action records the consent action under the key "action".
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Categories records a list of category keys under the given key.
// A nil list is logged as an empty list so the field is always present.
func Categories(key string, keys []string) slog.Attr {
	if keys == nil {
		keys = []string{}
	}
	return slog.Any(key, keys)
}

// OptionalString records value under key, or returns an empty Attr when value is empty.
func OptionalString(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}
