// Package formatting turns raw Intervals.icu API payloads into readable
// multi-section text reports. Payloads are JSON-decoded maps and are never
// mutated; every field access has an explicit fallback so a partial payload
// still renders a complete report.
package formatting

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"
)

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// IsCamelCase reports whether a field name is camelCase: it starts with a
// lowercase letter and contains at least one uppercase letter. Custom fields
// attached by Intervals.icu follow this convention.
func IsCamelCase(fieldName string) bool {
	if fieldName == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(fieldName)
	if !unicode.IsLower(first) {
		return false
	}
	for _, r := range fieldName {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// DetectCustomFields returns every key of data that is not in knownFields
// and looks like a camelCase custom field, with its original value.
func DetectCustomFields(data map[string]any, knownFields map[string]struct{}) map[string]any {
	custom := make(map[string]any)
	for key, value := range data {
		if _, known := knownFields[key]; known {
			continue
		}
		if IsCamelCase(key) {
			custom[key] = value
		}
	}
	return custom
}

// FormatCustomFields renders custom fields as "- Label: value" lines sorted
// by the original key. An empty input yields no lines, which callers use to
// omit the Custom Fields section entirely.
func FormatCustomFields(customFields map[string]any) []string {
	if len(customFields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(customFields))
	for key := range customFields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		// "customFieldName" -> "Custom Field Name"
		label := camelBoundary.ReplaceAllString(key, "$1 $2")
		label = capitalize(label)
		if label == "" {
			label = "Unknown"
		}

		value := customFields[key]
		var rendered string
		if value == nil {
			rendered = "N/A"
		} else {
			rendered = stringify(value)
		}

		lines = append(lines, fmt.Sprintf("- %s: %s", label, rendered))
	}
	return lines
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// fieldSet builds a known-field set from a list of field names.
func fieldSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// get returns the payload value for key, or fallback when the key is absent
// or explicitly null.
func get(data map[string]any, key string, fallback any) any {
	if value, ok := data[key]; ok && value != nil {
		return value
	}
	return fallback
}

// getChain returns the first present non-null value among keys, else fallback.
func getChain(data map[string]any, fallback any, keys ...string) any {
	for _, key := range keys {
		if value, ok := data[key]; ok && value != nil {
			return value
		}
	}
	return fallback
}

// stringify renders a payload value the way the reports expect: booleans as
// True/False, numbers in plain decimal form, strings unchanged, and
// sequences or nested maps in their generic textual form.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "N/A"
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// field renders a payload field with a fallback chain applied.
func field(data map[string]any, fallback any, keys ...string) string {
	return stringify(getChain(data, fallback, keys...))
}

// toNumber extracts a numeric value from the heterogeneous payload types.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// formatStartTime renders a start-time value. Strings longer than a bare
// date are treated as timestamps and reformatted; on parse failure the raw
// string is preserved rather than surfaced as an error.
func formatStartTime(value any) string {
	s, ok := value.(string)
	if !ok {
		return stringify(value)
	}
	if len(s) <= 10 {
		return s
	}
	if t, err := parseTimestamp(s); err == nil {
		return t.Format("2006-01-02 15:04:05")
	}
	return s
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp parses an ISO-8601 timestamp; a trailing "Z" means UTC.
func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// appendSection appends a titled section followed by a blank line when the
// section has content.
func appendSection(lines []string, sectionLines []string, title string) []string {
	if len(sectionLines) == 0 {
		return lines
	}
	lines = append(lines, title)
	lines = append(lines, sectionLines...)
	lines = append(lines, "")
	return lines
}
