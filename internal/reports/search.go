package reports

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MatchesQuery reports whether any field of the record, stringified, contains
// the query as a case-insensitive substring. A linear scan with no indexing;
// fine at back-office scale.
func MatchesQuery(record any, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)

	raw, err := json.Marshal(record)
	if err != nil {
		return false
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}

	for _, value := range fields {
		if value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(value)), needle) {
			return true
		}
	}
	return false
}
