//go:build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"chembench/internal/cli"
	"chembench/internal/config"
)

// InitializeCLIScenario wires steps for the validate/run CLI feature.
func InitializeCLIScenario(ctx *godog.ScenarioContext) {
	state := &cliScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a scaffolded benchmark project$`, state.givenScaffoldedProject)
	ctx.Step(`^the config declares version (\d+)$`, state.givenConfigVersion)
	ctx.Step(`^a benchmark project with a three-compound taxonomy$`, state.givenThreeCompoundProject)
	ctx.Step(`^a structure provider that resolves every compound$`, state.givenStructureProvider)
	ctx.Step(`^a structure provider that cannot resolve "([^"]+)"$`, state.givenStructureProviderMissing)
	ctx.Step(`^a classifier that flags exactly the regulated compounds$`, state.givenAgreeingClassifier)
	ctx.Step(`^a classifier that fails with HTTP (\d+) for "([^"]+)"$`, state.givenFailingClassifier)
	ctx.Step(`^I run "chembench ([^"]+)"$`, state.whenIRunCommand)
	ctx.Step(`^I run the benchmark$`, state.whenIRunBenchmark)
	ctx.Step(`^the exit code is (\d+)$`, state.thenExitCode)
	ctx.Step(`^stdout contains "([^"]+)"$`, state.thenStdoutContains)
	ctx.Step(`^stderr contains "([^"]+)"$`, state.thenStderrContains)
	ctx.Step(`^the run directory contains "([^"]+)"$`, state.thenRunDirContains)
}

// cliScenarioState holds one scenario's project directory, fake services,
// and captured command output.
type cliScenarioState struct {
	root       string
	configPath string
	provider   *fakeStructureProvider
	classifier *fakeClassifierService
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
	ran        bool
}

func (s *cliScenarioState) reset() {
	s.cleanup()
	s.root = ""
	s.configPath = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.ran = false
}

func (s *cliScenarioState) cleanup() {
	if s.provider != nil {
		s.provider.close()
		s.provider = nil
	}
	if s.classifier != nil {
		s.classifier.close()
		s.classifier = nil
	}
	if s.root != "" {
		_ = os.RemoveAll(s.root)
	}
}

func (s *cliScenarioState) makeRoot() error {
	dir, err := os.MkdirTemp("", "chembench-feature-*")
	if err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	s.root = dir
	s.configPath = config.ConfigPath(dir)
	return nil
}

func (s *cliScenarioState) givenScaffoldedProject() error {
	if err := s.makeRoot(); err != nil {
		return err
	}
	return config.Scaffold(s.configPath, "")
}

func (s *cliScenarioState) givenConfigVersion(version int) error {
	if s.configPath == "" {
		return fmt.Errorf("no project set up")
	}
	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "version:") {
			lines[i] = fmt.Sprintf("version: %d", version)
		}
	}
	return os.WriteFile(s.configPath, []byte(strings.Join(lines, "\n")), 0o644)
}

func (s *cliScenarioState) givenThreeCompoundProject() error {
	if err := s.makeRoot(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	taxonomy := `version: 1
regulated:
  - schedule: "I"
    compounds:
      - heroin
approved:
  - aspirin
negative_controls:
  - water
`
	return os.WriteFile(config.TaxonomyPath(s.root), []byte(taxonomy), 0o644)
}

func (s *cliScenarioState) givenStructureProvider() error {
	s.provider = startStructureProvider()
	return nil
}

func (s *cliScenarioState) givenStructureProviderMissing(name string) error {
	s.provider = startStructureProvider()
	s.provider.failFor(name)
	return nil
}

func (s *cliScenarioState) givenAgreeingClassifier() error {
	s.classifier = startClassifierService()
	return nil
}

func (s *cliScenarioState) givenFailingClassifier(status int, name string) error {
	s.classifier = startClassifierService()
	s.classifier.failFor(name, status)
	return nil
}

// writeRunConfig points the project config at the scenario's fake services.
func (s *cliScenarioState) writeRunConfig() error {
	if s.provider == nil || s.classifier == nil {
		return fmt.Errorf("fake services are not running")
	}
	content := fmt.Sprintf(`version: 1
benchmark:
  output_dir: "results"
  workers: 2
ground_truth:
  base_url: %q
  taxonomy: ".chembench/taxonomy.yml"
  timeout_ms: 2000
  requests_per_second: 500
classifier:
  base_url: %q
  timeout_ms: 2000
  requests_per_second: 500
`, s.provider.server.URL, s.classifier.server.URL)
	return os.WriteFile(s.configPath, []byte(content), 0o644)
}

func (s *cliScenarioState) whenIRunCommand(command string) error {
	if s.configPath == "" {
		return fmt.Errorf("no project set up")
	}
	args := strings.Fields(command)
	args = append(args, "--spec", s.configPath)
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	s.ran = true
	return nil
}

func (s *cliScenarioState) whenIRunBenchmark() error {
	if err := s.writeRunConfig(); err != nil {
		return err
	}
	return s.whenIRunCommand("run --ui plain")
}

func (s *cliScenarioState) thenExitCode(expected int) error {
	if !s.ran {
		return fmt.Errorf("no command was run")
	}
	if s.exitCode != expected {
		return fmt.Errorf("exit code: got %d, want %d\nstdout: %s\nstderr: %s",
			s.exitCode, expected, s.stdout.String(), s.stderr.String())
	}
	return nil
}

func (s *cliScenarioState) thenStdoutContains(snippet string) error {
	if !strings.Contains(s.stdout.String(), snippet) {
		return fmt.Errorf("stdout does not contain %q:\n%s", snippet, s.stdout.String())
	}
	return nil
}

func (s *cliScenarioState) thenStderrContains(snippet string) error {
	if !strings.Contains(s.stderr.String(), snippet) {
		return fmt.Errorf("stderr does not contain %q:\n%s", snippet, s.stderr.String())
	}
	return nil
}

// runDir locates the per-run directory created under the output root.
func (s *cliScenarioState) runDir() (string, error) {
	outputDir := filepath.Join(s.root, "results")
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("read output dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return filepath.Join(outputDir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no run directory under %s", outputDir)
}

func (s *cliScenarioState) thenRunDirContains(fileName string) error {
	dir, err := s.runDir()
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(dir, fileName)); err != nil {
		return fmt.Errorf("expected %s in run dir: %v", fileName, err)
	}
	return nil
}
