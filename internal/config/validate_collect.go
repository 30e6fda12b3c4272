package config

// issueAdder records one validation issue against a config field.
type issueAdder func(field, message string)

// issueCollector gathers issues across the per-section validators.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns nil when the config is clean.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
