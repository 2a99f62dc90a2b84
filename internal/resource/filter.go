package resource

import (
	"fmt"
	"strings"
)

// Filter returns the records whose named fields contain the query as a
// case-insensitive substring. An empty query returns the input unchanged.
// Filter is pure: it never mutates its arguments, and applying it twice
// with the same query yields the same result.
func Filter(records []Record, query string, fields []string) []Record {
	if query == "" {
		return records
	}

	needle := strings.ToLower(query)
	matched := make([]Record, 0, len(records))

	for _, record := range records {
		if recordMatches(record, needle, fields) {
			matched = append(matched, record)
		}
	}

	return matched
}

func recordMatches(record Record, needle string, fields []string) bool {
	for _, field := range fields {
		value, ok := record.Values[field]
		if !ok || value == nil {
			continue
		}

		text, ok := value.(string)
		if !ok {
			text = fmt.Sprintf("%v", value)
		}

		if strings.Contains(strings.ToLower(text), needle) {
			return true
		}
	}
	return false
}
