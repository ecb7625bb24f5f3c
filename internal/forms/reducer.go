package forms

import (
	"fmt"
	"strconv"
	"strings"

	"egramseva-backend/internal/content"
	"egramseva-backend/internal/models"
	"egramseva-backend/internal/schema"
)

// Reduce applies a batch of (path, value) edit messages to content and
// returns the resulting object. It is pure: the input content is never
// mutated, and the same inputs always produce the same output.
func Reduce(cnt content.Map, updates []models.FieldUpdate) content.Map {
	next := cnt
	for _, update := range updates {
		if update.Path == "" {
			continue
		}
		next = content.Set(next, update.Path, update.Value)
	}
	return next
}

// AddItem appends a fresh item to the ARRAY field at path. The new item
// carries every nested field's default value plus a synthetic unique id.
func AddItem(cnt content.Map, path string, field schema.FieldDefinition) content.Map {
	items, _ := itemsAt(cnt, path)
	next := make([]interface{}, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, content.NewArrayItem(field))
	return content.Set(cnt, path, next)
}

// RemoveItem deletes the item at index from the ARRAY field at path,
// closing the gap. Out-of-range indices are a no-op.
func RemoveItem(cnt content.Map, path string, index int) content.Map {
	items, ok := itemsAt(cnt, path)
	if !ok || index < 0 || index >= len(items) {
		return cnt
	}
	next := make([]interface{}, 0, len(items)-1)
	next = append(next, items[:index]...)
	next = append(next, items[index+1:]...)
	return content.Set(cnt, path, next)
}

// MoveItem shifts the item at from to position to within the ARRAY field
// at path, preserving relative order of the others.
func MoveItem(cnt content.Map, path string, from, to int) content.Map {
	items, ok := itemsAt(cnt, path)
	if !ok || from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return cnt
	}
	next := make([]interface{}, 0, len(items))
	next = append(next, items...)
	moved := next[from]
	next = append(next[:from], next[from+1:]...)
	next = append(next[:to], append([]interface{}{moved}, next[to:]...)...)
	return content.Set(cnt, path, next)
}

func itemsAt(cnt content.Map, path string) ([]interface{}, bool) {
	raw, ok := content.Get(cnt, path)
	if !ok {
		return nil, false
	}
	items, ok := raw.([]interface{})
	return items, ok
}

// ParsePath splits a dot path into its parent array path and trailing
// index, used by item-level operations arriving as a single path string.
func ParsePath(path string) (parent string, index int, err error) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return "", 0, fmt.Errorf("path %q has no index segment", path)
	}
	index, convErr := strconv.Atoi(path[idx+1:])
	if convErr != nil {
		return "", 0, fmt.Errorf("path %q does not end in an index", path)
	}
	return path[:idx], index, nil
}
