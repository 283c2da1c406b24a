package task

import (
	"strings"

	internalstrings "github.com/aduverger/tasktrack/internal/strings"
)

// sanitizeDescription makes free text safe for the ';'-delimited file:
// whitespace runs collapse to single spaces and field separators become
// commas, so every record the store produces round-trips exactly.
func sanitizeDescription(value string) string {
	value = internalstrings.NormalizeWhitespace(value)
	return strings.ReplaceAll(value, ";", ",")
}

// sanitizeLabels normalizes label tokens: separators stripped, blanks
// dropped, duplicates collapsed first-seen-wins.
func sanitizeLabels(labels []string) []string {
	var result []string
	seen := make(map[string]struct{})
	for _, label := range labels {
		label = internalstrings.NormalizeWhitespace(label)
		label = strings.ReplaceAll(label, ";", "")
		label = strings.ReplaceAll(label, ",", "")
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		result = append(result, label)
	}
	return result
}
