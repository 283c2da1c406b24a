package task

import (
	"strconv"
	"strings"
)

// ParseLines parses raw task-file lines into a Store.
//
// Parsing is total: blank lines, lines with fewer than two fields, and
// lines whose first field is not an integer are dropped without error.
// Two-field legacy lines parse with no labels, the default status, and
// no dependency. An unrecognized status token also falls back to the
// default, so a parsed store always satisfies the status enum.
func ParseLines(lines []string) Store {
	var tasks []Task
	for _, line := range lines {
		parsed, ok := parseLine(line)
		if !ok {
			continue
		}
		tasks = append(tasks, parsed)
	}
	return Store{tasks: tasks}
}

func parseLine(line string) (Task, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Task{}, false
	}

	parts := strings.Split(line, ";")
	if len(parts) < 2 {
		return Task{}, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Task{}, false
	}

	parsed := Task{
		ID:          id,
		Description: parts[1],
		Status:      StatusSuspended,
	}

	if len(parts) >= 3 && parts[2] != noneField {
		parsed.Labels = parseLabelField(parts[2])
	}

	if len(parts) >= 4 {
		if status := Status(strings.TrimSpace(parts[3])); status.IsValid() {
			parsed.Status = status
		}
	}

	if len(parts) >= 5 {
		if dep, ok := parseDependencyField(parts[4]); ok {
			parsed.DependsOn = &dep
		}
	}

	return parsed, true
}

func parseLabelField(field string) []string {
	var labels []string
	for _, token := range strings.Split(field, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		labels = append(labels, token)
	}
	return labels
}

// parseDependencyField accepts only an all-digit field; anything else,
// including a negative number or the "None" placeholder, means unset.
func parseDependencyField(field string) (int, bool) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, false
	}
	for _, char := range field {
		if char < '0' || char > '9' {
			return 0, false
		}
	}
	dep, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return dep, true
}
