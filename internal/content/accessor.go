package content

import (
	"strconv"
	"strings"
)

// Map is the untyped nested content object keyed by schema field names.
// Values are only ever read and written through Get and Set; nothing outside
// this package may assume a concrete shape beyond what the active schema
// declares.
type Map = map[string]interface{}

// Get returns the value at a dot-separated path, or nil/false if any
// segment is absent. Numeric segments index into array items.
func Get(content Map, path string) (interface{}, bool) {
	if content == nil || path == "" {
		return nil, false
	}

	var current interface{} = content
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []interface{}:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// GetString returns the string at path, or "" when absent or not a string.
func GetString(content Map, path string) string {
	value, ok := Get(content, path)
	if !ok {
		return ""
	}
	str, _ := value.(string)
	return str
}

// Set returns a new content object with value stored at the dot-separated
// path. The input is never mutated: every map and slice along the path is
// shallow-copied, intermediate objects are created as needed, and sibling
// data is preserved. An intermediate segment holding a non-object value is
// overwritten with a fresh object; the schema is authoritative, so the loss
// is intentional.
func Set(content Map, path string, value interface{}) Map {
	if path == "" {
		return content
	}
	segments := strings.Split(path, ".")
	result := setIn(content, segments, value)
	out, _ := result.(map[string]interface{})
	return out
}

func setIn(node interface{}, segments []string, value interface{}) interface{} {
	if len(segments) == 0 {
		return value
	}

	segment := segments[0]

	if slice, ok := node.([]interface{}); ok {
		if idx, err := strconv.Atoi(segment); err == nil && idx >= 0 && idx < len(slice) {
			next := make([]interface{}, len(slice))
			copy(next, slice)
			next[idx] = setIn(slice[idx], segments[1:], value)
			return next
		}
	}

	current, _ := node.(map[string]interface{})
	next := make(map[string]interface{}, len(current)+1)
	for k, v := range current {
		next[k] = v
	}
	next[segment] = setIn(current[segment], segments[1:], value)
	return next
}

// Delete returns a new content object with the leaf at path removed.
// Missing paths are a no-op that still returns a copy of the input.
func Delete(content Map, path string) Map {
	if content == nil || path == "" {
		return content
	}

	segments := strings.Split(path, ".")
	if len(segments) == 1 {
		next := make(Map, len(content))
		for k, v := range content {
			if k != segments[0] {
				next[k] = v
			}
		}
		return next
	}

	parentPath := strings.Join(segments[:len(segments)-1], ".")
	parent, ok := Get(content, parentPath)
	if !ok {
		return content
	}
	parentMap, ok := parent.(map[string]interface{})
	if !ok {
		return content
	}

	leaf := segments[len(segments)-1]
	next := make(map[string]interface{}, len(parentMap))
	for k, v := range parentMap {
		if k != leaf {
			next[k] = v
		}
	}
	return Set(content, parentPath, next)
}
