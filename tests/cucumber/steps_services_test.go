//go:build cucumber

package cucumber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// structureProps is one resolvable compound in the fake structure provider.
type structureProps struct {
	cid     int64
	smiles  string
	formula string
	weight  string
}

// benchCompounds is the fixture behind the three-compound taxonomy: one
// schedule I compound, one approved compound, one negative control.
var benchCompounds = map[string]structureProps{
	"heroin":  {cid: 5462328, smiles: "CC(=O)OC1C=CC2C3CC4=C5C2(C1OC5=C(OC(C)=O)C=C4)CCN3C", formula: "C21H23NO5", weight: "369.4"},
	"aspirin": {cid: 2244, smiles: "CC(=O)OC1=CC=CC=C1C(=O)O", formula: "C9H8O4", weight: "180.16"},
	"water":   {cid: 962, smiles: "O", formula: "H2O", weight: "18.015"},
}

// fakeStructureProvider mimics the PUG REST property endpoint.
type fakeStructureProvider struct {
	mu           sync.Mutex
	unresolvable map[string]bool
	server       *httptest.Server
}

func startStructureProvider() *fakeStructureProvider {
	f := &fakeStructureProvider{unresolvable: make(map[string]bool)}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeStructureProvider) close() {
	if f.server != nil {
		f.server.Close()
	}
}

func (f *fakeStructureProvider) failFor(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unresolvable[strings.ToLower(name)] = true
}

func (f *fakeStructureProvider) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 5 || parts[0] != "compound" || parts[1] != "name" {
		http.NotFound(w, r)
		return
	}
	name := strings.ToLower(parts[2])

	f.mu.Lock()
	blocked := f.unresolvable[name]
	f.mu.Unlock()

	props, ok := benchCompounds[name]
	if blocked || !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSONBody(w, map[string]any{
		"PropertyTable": map[string]any{
			"Properties": []map[string]any{{
				"CID":              props.cid,
				"CanonicalSMILES":  props.smiles,
				"MolecularFormula": props.formula,
				"MolecularWeight":  props.weight,
			}},
		},
	})
}

// fakeClassifierService mimics the molecule-profile tool and flags exactly
// the structures of regulated fixture compounds.
type fakeClassifierService struct {
	mu       sync.Mutex
	failures map[string]int
	server   *httptest.Server
}

func startClassifierService() *fakeClassifierService {
	f := &fakeClassifierService{failures: make(map[string]int)}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeClassifierService) close() {
	if f.server != nil {
		f.server.Close()
	}
}

// failFor makes classification of the named fixture compound return status.
func (f *fakeClassifierService) failFor(name string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[benchCompounds[strings.ToLower(name)].smiles] = status
}

func (f *fakeClassifierService) handle(w http.ResponseWriter, r *http.Request) {
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
	status, failing := f.failures[req.Arguments.SMILES]
	f.mu.Unlock()
	if failing {
		w.WriteHeader(status)
		return
	}

	compliance := map[string]any{
		"is_dea_controlled": false,
		"is_scaffold_match": false,
		"is_whitelisted":    false,
		"status":            "clear",
		"detected_schedule": "",
		"is_fda_banned":     false,
		"is_cwc_scheduled":  false,
		"faves_flag_count":  0,
	}
	switch req.Arguments.SMILES {
	case benchCompounds["heroin"].smiles:
		compliance["is_dea_controlled"] = true
		compliance["detected_schedule"] = "I"
		compliance["status"] = "controlled"
		compliance["faves_flag_count"] = 2
	case benchCompounds["aspirin"].smiles:
		compliance["is_whitelisted"] = true
		compliance["status"] = "approved"
	}
	writeJSONBody(w, map[string]any{
		"result": map[string]any{
			"compliance":  compliance,
			"in_database": true,
			"source":      "fixture",
		},
	})
}

func writeJSONBody(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
