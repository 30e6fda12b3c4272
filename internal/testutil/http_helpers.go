package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// CompoundProperties is one resolvable compound served by a fake structure
// provider.
type CompoundProperties struct {
	CID     int64
	SMILES  string
	Formula string
	Weight  string
}

// FakePubChem is an in-memory stand-in for the PubChem PUG REST service.
type FakePubChem struct {
	mu        sync.Mutex
	compounds map[string]CompoundProperties
	failures  map[string]int
	requests  []string
	server    *httptest.Server
}

// StartPubChem launches a fake structure provider seeded with the given
// compounds. Unseeded names resolve to 404.
func StartPubChem(t testing.TB, compounds map[string]CompoundProperties) *FakePubChem {
	t.Helper()
	f := &FakePubChem{
		compounds: make(map[string]CompoundProperties, len(compounds)),
		failures:  make(map[string]int),
	}
	for name, props := range compounds {
		f.compounds[strings.ToLower(name)] = props
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the fake provider's base URL.
func (f *FakePubChem) URL() string { return f.server.URL }

// FailWith makes lookups for the given name return the given status code.
func (f *FakePubChem) FailWith(name string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[strings.ToLower(name)] = status
}

// Requests returns the compound names looked up so far, in arrival order.
func (f *FakePubChem) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakePubChem) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 || parts[0] != "compound" || parts[1] != "name" {
		http.NotFound(w, r)
		return
	}
	name := strings.ToLower(parts[2])

	f.mu.Lock()
	f.requests = append(f.requests, name)
	status, failing := f.failures[name]
	props, ok := f.compounds[name]
	f.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"PropertyTable": map[string]any{
			"Properties": []map[string]any{{
				"CID":              props.CID,
				"CanonicalSMILES":  props.SMILES,
				"MolecularFormula": props.Formula,
				"MolecularWeight":  props.Weight,
			}},
		},
	})
}

// ClassifierVerdict is the compliance verdict a fake classifier serves for one
// structure.
type ClassifierVerdict struct {
	DEAControlled bool
	ScaffoldMatch bool
	Whitelisted   bool
	Status        string
	Schedule      string
	FDABanned     bool
	CWCScheduled  bool
	FlagCount     int
	InDatabase    bool
	Source        string
}

// FakeClassifier is an in-memory stand-in for the compliance service's
// molecule-profile tool.
type FakeClassifier struct {
	mu       sync.Mutex
	verdicts map[string]ClassifierVerdict
	failures map[string]int
	apiKey   string
	requests []string
	server   *httptest.Server
}

// StartClassifier launches a fake classifier seeded with per-structure
// verdicts, keyed by SMILES. Unseeded structures get an all-clear verdict.
func StartClassifier(t testing.TB, verdicts map[string]ClassifierVerdict) *FakeClassifier {
	t.Helper()
	f := &FakeClassifier{
		verdicts: make(map[string]ClassifierVerdict, len(verdicts)),
		failures: make(map[string]int),
	}
	for smiles, verdict := range verdicts {
		f.verdicts[smiles] = verdict
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the fake classifier's base URL.
func (f *FakeClassifier) URL() string { return f.server.URL }

// RequireAPIKey rejects requests that do not carry the given X-API-Key.
func (f *FakeClassifier) RequireAPIKey(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apiKey = key
}

// FailWith makes classification of the given structure return the given
// status code.
func (f *FakeClassifier) FailWith(smiles string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[smiles] = status
}

// Requests returns the structures classified so far, in arrival order.
func (f *FakeClassifier) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeClassifier) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/mcp/tools/get_molecule_profile" {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Arguments struct {
			SMILES string `json:"smiles"`
		} `json:"arguments"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.requests = append(f.requests, req.Arguments.SMILES)
	key := f.apiKey
	status, failing := f.failures[req.Arguments.SMILES]
	verdict := f.verdicts[req.Arguments.SMILES]
	f.mu.Unlock()

	if key != "" && r.Header.Get("X-API-Key") != key {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if failing {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, map[string]any{
		"result": map[string]any{
			"compliance": map[string]any{
				"is_dea_controlled": verdict.DEAControlled,
				"is_scaffold_match": verdict.ScaffoldMatch,
				"is_whitelisted":    verdict.Whitelisted,
				"status":            verdict.Status,
				"detected_schedule": verdict.Schedule,
				"is_fda_banned":     verdict.FDABanned,
				"is_cwc_scheduled":  verdict.CWCScheduled,
				"faves_flag_count":  verdict.FlagCount,
			},
			"in_database": verdict.InDatabase,
			"source":      verdict.Source,
		},
	})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
