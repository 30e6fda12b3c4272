package config

import (
	"fmt"
	"strings"
)

// Issue is one problem found in the benchmark config.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates every issue found in one validation pass, so a
// broken config reports all of its problems at once.
type ValidationError struct {
	Issues []Issue
}

// Error renders the issues one per line, field first.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}
