package faves

import (
	"encoding/json"
	"fmt"
)

// Verdict is the normalized classification response for one structure.
//
// Default policy for absent response fields, applied here and nowhere else:
// booleans default to false, counts to 0, strings to empty. Downstream code
// may rely on a Verdict being fully populated.
type Verdict struct {
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

// Regulated reports the union verdict: a structure counts as regulated when
// any sub-signal fires, direct listing or scaffold similarity alike.
func (v Verdict) Regulated() bool {
	return v.DEAControlled || v.ScaffoldMatch
}

// profilePayload mirrors the molecule-profile response body.
type profilePayload struct {
	Compliance compliancePayload `json:"compliance"`
	InDatabase bool              `json:"in_database"`
	Source     string            `json:"source"`
}

type compliancePayload struct {
	IsDEAControlled  bool   `json:"is_dea_controlled"`
	IsScaffoldMatch  bool   `json:"is_scaffold_match"`
	IsWhitelisted    bool   `json:"is_whitelisted"`
	Status           string `json:"status"`
	DetectedSchedule string `json:"detected_schedule"`
	IsFDABanned      bool   `json:"is_fda_banned"`
	IsCWCScheduled   bool   `json:"is_cwc_scheduled"`
	FavesFlagCount   int    `json:"faves_flag_count"`
}

// parseProfile decodes a profile response, accepting both the wrapped
// {"result": {...}} envelope and a bare payload.
func parseProfile(body []byte) (Verdict, error) {
	var envelope struct {
		Result *profilePayload `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Verdict{}, fmt.Errorf("decode response: %w", err)
	}
	payload := envelope.Result
	if payload == nil {
		var bare profilePayload
		if err := json.Unmarshal(body, &bare); err != nil {
			return Verdict{}, fmt.Errorf("decode response: %w", err)
		}
		payload = &bare
	}
	return Verdict{
		DEAControlled: payload.Compliance.IsDEAControlled,
		ScaffoldMatch: payload.Compliance.IsScaffoldMatch,
		Whitelisted:   payload.Compliance.IsWhitelisted,
		Status:        payload.Compliance.Status,
		Schedule:      payload.Compliance.DetectedSchedule,
		FDABanned:     payload.Compliance.IsFDABanned,
		CWCScheduled:  payload.Compliance.IsCWCScheduled,
		FlagCount:     payload.Compliance.FavesFlagCount,
		InDatabase:    payload.InDatabase,
		Source:        payload.Source,
	}, nil
}
