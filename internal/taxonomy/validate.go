package taxonomy

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a taxonomy file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("taxonomy validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates a taxonomy. Compound names must be
// unique across every list; each regulated group needs a schedule label and at
// least one compound.
func Normalize(tax Taxonomy) (Taxonomy, error) {
	collector := &issueCollector{}
	if tax.Version == 0 {
		collector.add("version", "is required")
	} else if tax.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", tax.Version))
	}
	if tax.Size() == 0 {
		collector.add("taxonomy", "must include at least one compound")
	}

	seen := map[string]string{}
	record := func(field, name string) string {
		key := strings.ToLower(name)
		if prior, exists := seen[key]; exists {
			return prior
		}
		seen[key] = field
		return ""
	}

	seenSchedules := map[string]struct{}{}
	for i, group := range tax.Regulated {
		prefix := fmt.Sprintf("regulated[%d]", i)
		group.Schedule = strings.TrimSpace(group.Schedule)
		if group.Schedule == "" {
			collector.add(prefix+".schedule", "is required")
		} else if _, exists := seenSchedules[group.Schedule]; exists {
			collector.add(prefix+".schedule", fmt.Sprintf("duplicate schedule %q", group.Schedule))
		} else {
			seenSchedules[group.Schedule] = struct{}{}
		}

		group.Compounds = normalizeNames(group.Compounds)
		if len(group.Compounds) == 0 {
			collector.add(prefix+".compounds", "must include at least one entry")
		}
		for j, name := range group.Compounds {
			field := fmt.Sprintf("%s.compounds[%d]", prefix, j)
			if name == "" {
				collector.add(field, "is required")
				continue
			}
			if prior := record(field, name); prior != "" {
				collector.add(field, fmt.Sprintf("duplicate compound %q (also %s)", name, prior))
			}
		}
		tax.Regulated[i] = group
	}

	tax.Approved = normalizeNames(tax.Approved)
	for i, name := range tax.Approved {
		field := fmt.Sprintf("approved[%d]", i)
		if name == "" {
			collector.add(field, "is required")
			continue
		}
		if prior := record(field, name); prior != "" {
			collector.add(field, fmt.Sprintf("duplicate compound %q (also %s)", name, prior))
		}
	}

	tax.NegativeControls = normalizeNames(tax.NegativeControls)
	for i, name := range tax.NegativeControls {
		field := fmt.Sprintf("negative_controls[%d]", i)
		if name == "" {
			collector.add(field, "is required")
			continue
		}
		if prior := record(field, name); prior != "" {
			collector.add(field, fmt.Sprintf("duplicate compound %q (also %s)", name, prior))
		}
	}

	if err := collector.result(); err != nil {
		return Taxonomy{}, err
	}
	return tax, nil
}

func normalizeNames(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
