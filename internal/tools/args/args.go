// Package args extracts typed values from the loosely-typed argument maps
// tool calls arrive with.
package args

import "encoding/json"

// String returns a string argument, or fallback when absent or not a string.
func String(args map[string]interface{}, key, fallback string) string {
	if value, ok := args[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

// Int returns an integer argument. JSON numbers arrive as json.Number or
// float64 depending on the decoder.
func Int(args map[string]interface{}, key string, fallback int) int {
	switch value := args[key].(type) {
	case json.Number:
		if n, err := value.Int64(); err == nil {
			return int(n)
		}
	case float64:
		return int(value)
	case int:
		return value
	}
	return fallback
}

// Bool returns a boolean argument, or fallback when absent.
func Bool(args map[string]interface{}, key string, fallback bool) bool {
	if value, ok := args[key].(bool); ok {
		return value
	}
	return fallback
}
