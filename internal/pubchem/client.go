package pubchem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"chembench/internal/ratelimit"
)

// DefaultBaseURL is the public PubChem PUG REST endpoint.
const DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

// DefaultTimeout bounds a single property lookup.
const DefaultTimeout = 10 * time.Second

// HTTPDoer abstracts the HTTP client so tests can inject fakes.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNotFound indicates the provider has no compound under the given name.
var ErrNotFound = errors.New("compound not found")

// Properties are the structure fields resolved for a compound name.
type Properties struct {
	CID     int64
	SMILES  string
	Formula string
	Weight  string
}

// Client looks up canonical structures by compound name.
type Client struct {
	baseURL string
	timeout time.Duration
	pacer   ratelimit.Pacer
	client  HTTPDoer
}

// NewClient constructs a lookup client. Zero timeout and nil pacer/client get
// defaults.
func NewClient(baseURL string, timeout time.Duration, pacer ratelimit.Pacer, client HTTPDoer) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if pacer == nil {
		pacer = ratelimit.NoopPacer
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		pacer:   pacer,
		client:  client,
	}
}

// propertyTable mirrors the PUG REST property response envelope. PubChem has
// renamed the SMILES property over time, so the decode keeps the older keys
// as fallbacks.
type propertyTable struct {
	PropertyTable struct {
		Properties []struct {
			CID                int64  `json:"CID"`
			CanonicalSMILES    string `json:"CanonicalSMILES"`
			ConnectivitySMILES string `json:"ConnectivitySMILES"`
			SMILES             string `json:"SMILES"`
			MolecularFormula   string `json:"MolecularFormula"`
			MolecularWeight    string `json:"MolecularWeight"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}

// Lookup resolves the canonical SMILES, formula, and weight for a compound
// name. Any failure is a lookup failure: the caller omits the compound and
// moves on.
func (c *Client) Lookup(ctx context.Context, name string) (Properties, error) {
	if strings.TrimSpace(name) == "" {
		return Properties{}, fmt.Errorf("compound name is required")
	}
	if err := c.pacer.Wait(ctx); err != nil {
		return Properties{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf(
		"%s/compound/name/%s/property/CanonicalSMILES,MolecularFormula,MolecularWeight/JSON",
		c.baseURL, url.PathEscape(name),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Properties{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Properties{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Properties{}, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Properties{}, fmt.Errorf("pubchem returned HTTP %d", resp.StatusCode)
	}

	var table propertyTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return Properties{}, fmt.Errorf("decode response: %w", err)
	}
	if len(table.PropertyTable.Properties) == 0 {
		return Properties{}, ErrNotFound
	}
	entry := table.PropertyTable.Properties[0]
	smiles := entry.CanonicalSMILES
	if smiles == "" {
		smiles = entry.ConnectivitySMILES
	}
	if smiles == "" {
		smiles = entry.SMILES
	}
	if smiles == "" {
		return Properties{}, ErrNotFound
	}
	return Properties{
		CID:     entry.CID,
		SMILES:  smiles,
		Formula: entry.MolecularFormula,
		Weight:  entry.MolecularWeight,
	}, nil
}
