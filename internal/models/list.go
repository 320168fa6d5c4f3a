package models

import "encoding/json"

// EncodeList serializes a list field to its stored JSON text. A nil list is
// stored as "[]".
func EncodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeList is lossy-safe: anything that is not a JSON array of strings
// decodes to an empty, non-nil list.
func DecodeList(raw string) []string {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
