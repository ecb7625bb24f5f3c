package render

import (
	"html/template"
	"strings"

	"egramseva-backend/internal/content"
	"egramseva-backend/internal/models"
)

func sectionContent(section models.Section) content.Map {
	return content.StripEphemeralURLs(section.ContentMap())
}

func getString(cnt content.Map, key string) string {
	if cnt == nil {
		return ""
	}
	if value, ok := cnt[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func getFloat(cnt content.Map, key string) (float64, bool) {
	if cnt == nil {
		return 0, false
	}
	switch v := cnt[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func parseBool(value interface{}, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(strings.ToLower(v))
		if trimmed == "" {
			return fallback
		}
		switch trimmed {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		default:
			return fallback
		}
	default:
		return fallback
	}
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// safeURL drops javascript: and other non-http(s) schemes, keeping
// relative links.
func safeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	return ""
}
