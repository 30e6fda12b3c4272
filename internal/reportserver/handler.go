package reportserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"chembench/internal/duckdb"
	"chembench/internal/report"
	"chembench/internal/spec"
)

// NewHandler builds the HTTP handler for serving run reports and the DuckDB
// warehouse file. The database connection stays owned by the caller.
func NewHandler(cfg Config, db *sql.DB) (http.Handler, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("reportserver: db path is required")
	}
	if db == nil {
		return nil, errors.New("reportserver: db is nil")
	}

	h := &handler{db: db, targets: cfg.Targets}
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.serveIndex)
	mux.HandleFunc("/runs/", h.serveRun)
	mux.HandleFunc("/api/runs", h.serveRunsJSON)
	mux.Handle("/data/benchmark.duckdb", serveDatabase(cfg.DBPath))
	return mux, nil
}

type handler struct {
	db      *sql.DB
	targets spec.TargetsConfig
}

// serveIndex lists the ingested runs with links to their report pages.
func (h *handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	runs, err := duckdb.ListRuns(r.Context(), h.db)
	if err != nil {
		http.Error(w, "list runs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var page strings.Builder
	page.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>Benchmark Runs</title>\n</head>\n<body>\n<h1>Benchmark Runs</h1>\n")
	if len(runs) == 0 {
		page.WriteString("<p>No runs ingested yet.</p>\n")
	} else {
		page.WriteString("<table>\n<tr><th>Run</th><th>Started</th><th>Tested</th><th>Accuracy</th><th>F1</th></tr>\n")
		for _, run := range runs {
			id := html.EscapeString(run.RunID)
			fmt.Fprintf(&page, "<tr><td><a href=\"/runs/%s\">%s</a></td><td>%s</td><td>%d</td><td>%.3f</td><td>%.3f</td></tr>\n",
				id, id, run.StartedAt.UTC().Format("2006-01-02 15:04:05"), run.CompoundsTested, run.Accuracy, run.F1)
		}
		page.WriteString("</table>\n")
	}
	page.WriteString("<p><a href=\"/data/benchmark.duckdb\">Download warehouse</a></p>\n</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page.String()))
}

// serveRun renders the full report page for one ingested run.
func (h *handler) serveRun(w http.ResponseWriter, r *http.Request) {
	runID := strings.TrimPrefix(r.URL.Path, "/runs/")
	if runID == "" || strings.Contains(runID, "/") {
		http.NotFound(w, r)
		return
	}
	results, err := duckdb.LoadRunResults(r.Context(), h.db, runID)
	if errors.Is(err, duckdb.ErrRunNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "load run: "+err.Error(), http.StatusInternalServerError)
		return
	}
	page, err := report.RenderHTML(results, h.targets, time.Now())
	if err != nil {
		http.Error(w, "render report: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// serveRunsJSON returns the run listing for programmatic consumers.
func (h *handler) serveRunsJSON(w http.ResponseWriter, r *http.Request) {
	runs, err := duckdb.ListRuns(r.Context(), h.db)
	if err != nil {
		http.Error(w, "list runs: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []duckdb.RunRow{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(runs)
}

// serveDatabase serves the DuckDB file from disk for local analysis.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}
