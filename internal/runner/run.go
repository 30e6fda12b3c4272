package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"chembench/internal/compound"
	"chembench/internal/config"
	"chembench/internal/dataset"
	"chembench/internal/groundtruth"
	"chembench/internal/metrics"
	"chembench/internal/spec"
	"chembench/internal/taxonomy"
)

// Run executes one benchmark run: it loads the taxonomy, assembles the
// ground truth, classifies every validatable record through a bounded worker
// pool, and computes the accuracy report. Nothing is written to disk;
// RunAndWrite adds persistence.
//
// Classification failures do not abort the run. They become error
// observations, so a cancelled context drains the remaining jobs as errors
// and the results stay aligned with the ground truth.
func Run(ctx context.Context, cfg spec.Config, params RunParams) (Results, error) {
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	observer := params.Deps.Observer
	startedAt := now()

	taxonomyPath := config.ResolvePath(params.Root, cfg.GroundTruth.Taxonomy)
	tax, err := taxonomy.LoadFile(taxonomyPath)
	if err != nil {
		return Results{}, err
	}
	taxInfo, err := taxonomyInfo(taxonomyPath, tax)
	if err != nil {
		return Results{}, err
	}

	if observer != nil {
		observer.OnRunStart(runID, tax.Size())
	}

	var truth compound.GroundTruthSet
	if params.SkipFetch {
		truth, err = loadGroundTruth(ResolveOutputDir(cfg, params.Root, params.OutputDir))
	} else {
		truth, err = buildGroundTruth(ctx, cfg, params, tax, observer, now)
	}
	if err != nil {
		return Results{}, err
	}
	if truth.Len() == 0 {
		return Results{}, fmt.Errorf("ground truth is empty: no compound resolved to a structure")
	}

	baseURL, apiKey := resolveClassifier(cfg, params)
	classifyFactory := params.Deps.ClassifyFactory
	if classifyFactory == nil {
		classifyFactory = defaultClassifyFactory
	}
	classify, err := classifyFactory(cfg, baseURL, apiKey)
	if err != nil {
		return Results{}, fmt.Errorf("build classifier client: %w", err)
	}

	workers := params.Workers
	if workers <= 0 {
		workers = cfg.Benchmark.Workers
	}

	validateObserver := newCompoundObserver(observer, PhaseValidate, now)
	validateObserver.Start(truth.Len())
	jobs := make([]classifyJob, 0, truth.Len())
	for index, record := range truth.Records {
		if !record.HasStructure() {
			validateObserver.EmitRecord(index, record, compoundEventOptions{EventType: CompoundSkipped})
			continue
		}
		validateObserver.EmitRecord(index, record, compoundEventOptions{EventType: CompoundQueued})
		jobs = append(jobs, classifyJob{slot: len(jobs), index: index, record: record})
	}
	observations := runClassifyJobs(ctx, jobs, classify, workers, validateObserver)
	validateObserver.End()

	report := metrics.Evaluate(compound.ResultsSet{Observations: observations})
	finishedAt := now()
	results := Results{
		RunID:        runID,
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
		Classifier:   ClassifierInfo{BaseURL: baseURL, Authenticated: apiKey != ""},
		Taxonomy:     taxInfo,
		GroundTruth:  truth,
		Observations: observations,
		Metrics:      report,
		Summary:      summarize(tax.Size(), truth, observations, report, startedAt, finishedAt),
	}
	if observer != nil {
		observer.OnRunEnd(results)
	}
	return results, nil
}

// RunAndWrite executes a run and persists its artifacts under the resolved
// output directory.
func RunAndWrite(ctx context.Context, cfg spec.Config, params RunParams) (Results, OutputPaths, error) {
	results, err := Run(ctx, cfg, params)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	paths, err := WriteRunOutputs(results, ResolveOutputDir(cfg, params.Root, params.OutputDir))
	if err != nil {
		return results, OutputPaths{}, err
	}
	return results, paths, nil
}

// FetchGroundTruth assembles the ground-truth set and saves it as the shared
// table under the output directory, ready for runs with SkipFetch set. It
// returns the set and the path it was written to.
func FetchGroundTruth(ctx context.Context, cfg spec.Config, params RunParams) (compound.GroundTruthSet, string, error) {
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	taxonomyPath := config.ResolvePath(params.Root, cfg.GroundTruth.Taxonomy)
	tax, err := taxonomy.LoadFile(taxonomyPath)
	if err != nil {
		return compound.GroundTruthSet{}, "", err
	}

	truth, err := buildGroundTruth(ctx, cfg, params, tax, params.Deps.Observer, now)
	if err != nil {
		return truth, "", err
	}
	if truth.Len() == 0 {
		return truth, "", fmt.Errorf("ground truth is empty: no compound resolved to a structure")
	}

	outputDir := ResolveOutputDir(cfg, params.Root, params.OutputDir)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return truth, "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(outputDir, groundTruthFileName)
	if err := dataset.SaveGroundTruth(path, truth); err != nil {
		return truth, "", err
	}
	return truth, path, nil
}

// ResolveOutputDir picks the output directory for a run: the override when
// set, the configured directory otherwise, resolved against the project
// root.
func ResolveOutputDir(cfg spec.Config, root, override string) string {
	dir := strings.TrimSpace(override)
	if dir == "" {
		dir = cfg.Benchmark.OutputDir
	}
	return config.ResolvePath(root, dir)
}

// buildGroundTruth resolves every taxonomy entry to a structure, reporting
// progress through the fetch phase of the observer.
func buildGroundTruth(ctx context.Context, cfg spec.Config, params RunParams, tax taxonomy.Taxonomy, observer RunObserver, now func() time.Time) (compound.GroundTruthSet, error) {
	lookupFactory := params.Deps.LookupFactory
	if lookupFactory == nil {
		lookupFactory = defaultLookupFactory
	}
	lookup, err := lookupFactory(cfg)
	if err != nil {
		return compound.GroundTruthSet{}, fmt.Errorf("build lookup client: %w", err)
	}

	entries := tax.Entries()
	fetchObserver := newCompoundObserver(observer, PhaseFetch, now)
	fetchObserver.Start(len(entries))
	for index, entry := range entries {
		fetchObserver.Emit(index, entry.Name, groundtruth.CategoryFor(entry.Group), entry.Schedule, compoundEventOptions{EventType: CompoundQueued})
	}
	truth, err := groundtruth.Build(ctx, tax, lookup, fetchObserver.fetchAdapter())
	fetchObserver.End()
	if err != nil {
		return truth, err
	}
	return truth, nil
}

// loadGroundTruth loads the shared ground-truth table saved by an earlier
// fetch.
func loadGroundTruth(outputDir string) (compound.GroundTruthSet, error) {
	path := filepath.Join(outputDir, groundTruthFileName)
	truth, err := dataset.LoadGroundTruth(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return compound.GroundTruthSet{}, fmt.Errorf("no saved ground truth at %s, run fetch first", path)
		}
		return compound.GroundTruthSet{}, err
	}
	return truth, nil
}

// taxonomyInfo fingerprints the taxonomy file a run was built from.
func taxonomyInfo(path string, tax taxonomy.Taxonomy) (TaxonomyInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TaxonomyInfo{}, fmt.Errorf("read taxonomy: %w", err)
	}
	digest := sha256.Sum256(data)
	return TaxonomyInfo{
		Path:      path,
		SHA256:    hex.EncodeToString(digest[:]),
		Compounds: tax.Size(),
	}, nil
}
