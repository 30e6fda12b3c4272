package report

import (
	"context"
	"strings"
	"time"

	"chembench/internal/runner"
	"chembench/internal/spec"
)

// RenderHTML renders the report page into a string.
func RenderHTML(results runner.Results, targets spec.TargetsConfig, generatedAt time.Time) (string, error) {
	var builder strings.Builder
	if err := RunReport(results, targets, generatedAt).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
