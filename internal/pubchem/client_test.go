package pubchem

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"chembench/internal/testutil"
)

// fakeDoer returns canned responses keyed by request URL substring.
type fakeDoer struct {
	handler func(req *http.Request) (*http.Response, error)
}

func (d fakeDoer) Do(req *http.Request) (*http.Response, error) {
	return d.handler(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestLookupResolvesProperties(t *testing.T) {
	var requested string
	client := NewClient("https://example.test/rest/pug", 0, nil, fakeDoer{
		handler: func(req *http.Request) (*http.Response, error) {
			requested = req.URL.String()
			return jsonResponse(http.StatusOK, `{
				"PropertyTable": {"Properties": [{
					"CID": 2519,
					"CanonicalSMILES": "CN1C=NC2=C1C(=O)N(C(=O)N2C)C",
					"MolecularFormula": "C8H10N4O2",
					"MolecularWeight": "194.19"
				}]}
			}`), nil
		},
	})

	props, err := client.Lookup(testutil.Context(t, 0), "caffeine")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if props.CID != 2519 {
		t.Fatalf("unexpected cid: %d", props.CID)
	}
	if props.SMILES != "CN1C=NC2=C1C(=O)N(C(=O)N2C)C" {
		t.Fatalf("unexpected smiles: %q", props.SMILES)
	}
	if props.Formula != "C8H10N4O2" || props.Weight != "194.19" {
		t.Fatalf("unexpected properties: %+v", props)
	}
	want := "https://example.test/rest/pug/compound/name/caffeine/property/CanonicalSMILES,MolecularFormula,MolecularWeight/JSON"
	if requested != want {
		t.Fatalf("unexpected url: %q", requested)
	}
}

func TestLookupEscapesCompoundNames(t *testing.T) {
	var requested string
	client := NewClient("https://example.test", 0, nil, fakeDoer{
		handler: func(req *http.Request) (*http.Response, error) {
			requested = req.URL.EscapedPath()
			return jsonResponse(http.StatusOK, `{"PropertyTable": {"Properties": [{"CID": 1, "CanonicalSMILES": "[Na+].[Cl-]"}]}}`), nil
		},
	})

	if _, err := client.Lookup(testutil.Context(t, 0), "sodium chloride"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !strings.Contains(requested, "sodium%20chloride") {
		t.Fatalf("name not escaped: %q", requested)
	}
}

func TestLookupNotFound(t *testing.T) {
	client := NewClient("", 0, nil, fakeDoer{
		handler: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusNotFound, `{"Fault": {"Code": "PUGREST.NotFound"}}`), nil
		},
	})

	_, err := client.Lookup(testutil.Context(t, 0), "no-such-compound")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupEmptyPropertyTableIsNotFound(t *testing.T) {
	client := NewClient("", 0, nil, fakeDoer{
		handler: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"PropertyTable": {"Properties": []}}`), nil
		},
	})

	_, err := client.Lookup(testutil.Context(t, 0), "mystery")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupServerError(t *testing.T) {
	client := NewClient("", 0, nil, fakeDoer{
		handler: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusServiceUnavailable, "busy"), nil
		},
	})

	_, err := client.Lookup(testutil.Context(t, 0), "caffeine")
	if err == nil || !strings.Contains(err.Error(), "HTTP 503") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLookupTransportError(t *testing.T) {
	transportErr := errors.New("connection refused")
	client := NewClient("", 0, nil, fakeDoer{
		handler: func(_ *http.Request) (*http.Response, error) {
			return nil, transportErr
		},
	})

	_, err := client.Lookup(testutil.Context(t, 0), "caffeine")
	if !errors.Is(err, transportErr) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
