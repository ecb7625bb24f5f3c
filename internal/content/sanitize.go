package content

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// IsEphemeralURL reports whether a URL is a short-lived local blob or an
// embedded data reference. Such values come out of in-browser previews and
// must never be persisted or rendered as durable image sources.
func IsEphemeralURL(raw string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(trimmed, "blob:") || strings.HasPrefix(trimmed, "data:")
}

// StripEphemeralURLs returns a copy of the content with every ephemeral URL
// string replaced by nil, at any nesting depth. The traversal is
// schema-independent so provisional references cannot hide inside unknown
// branches.
func StripEphemeralURLs(cnt Map) Map {
	stripped, _ := stripValue(cnt).(map[string]interface{})
	return stripped
}

func stripValue(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if IsEphemeralURL(v) {
			return nil
		}
		return v
	case map[string]interface{}:
		next := make(map[string]interface{}, len(v))
		for k, child := range v {
			next[k] = stripValue(child)
		}
		return next
	case []interface{}:
		next := make([]interface{}, len(v))
		for i, child := range v {
			next[i] = stripValue(child)
		}
		return next
	default:
		return v
	}
}

// RegenerateItemIDs returns a copy of the content where every array item's
// synthetic id is replaced with a fresh one, at any nesting depth. Used when
// a section is duplicated so the copy's items do not collide with the
// original's in the editor.
func RegenerateItemIDs(cnt Map) Map {
	fresh, _ := regenerateIDs(cnt, false).(map[string]interface{})
	return fresh
}

func regenerateIDs(value interface{}, inArray bool) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		next := make(map[string]interface{}, len(v))
		for k, child := range v {
			if inArray && k == ItemIDKey {
				next[k] = uuid.New().String()
				continue
			}
			next[k] = regenerateIDs(child, false)
		}
		return next
	case []interface{}:
		next := make([]interface{}, len(v))
		for i, child := range v {
			next[i] = regenerateIDs(child, true)
		}
		return next
	default:
		return v
	}
}

// Coerce normalises stored section content into a Map. Content persisted as
// a JSON string or raw bytes is parsed; a parse failure or any other shape
// is treated as "no content" rather than an error.
func Coerce(raw interface{}) Map {
	switch v := raw.(type) {
	case nil:
		return Map{}
	case map[string]interface{}:
		return v
	case string:
		return parseJSONObject([]byte(v))
	case []byte:
		return parseJSONObject(v)
	case json.RawMessage:
		return parseJSONObject(v)
	default:
		return Map{}
	}
}

func parseJSONObject(data []byte) Map {
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil || decoded == nil {
		return Map{}
	}
	return decoded
}
