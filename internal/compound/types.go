package compound

// Category labels a ground-truth compound by its expected regulatory standing.
type Category string

const (
	// CategoryRegulated marks compounds controlled at some schedule.
	CategoryRegulated Category = "regulated"
	// CategoryApproved marks approved compounds that are not controlled.
	CategoryApproved Category = "approved_non_regulated"
	// CategoryNegativeControl marks everyday substances that must never flag.
	CategoryNegativeControl Category = "negative_control"
)

// Valid reports whether the category is one of the known labels.
func (c Category) Valid() bool {
	switch c {
	case CategoryRegulated, CategoryApproved, CategoryNegativeControl:
		return true
	}
	return false
}

// Record is one row of ground truth: a named compound with its expected label.
// StructureID is empty when the structure lookup failed; such records are
// excluded from validation. Tier is set if and only if the category is
// regulated.
type Record struct {
	Name              string   `json:"name"`
	StructureID       string   `json:"structure_id,omitempty"`
	CID               int64    `json:"cid,omitempty"`
	Formula           string   `json:"formula,omitempty"`
	Weight            string   `json:"weight,omitempty"`
	Category          Category `json:"category"`
	Tier              string   `json:"tier,omitempty"`
	ExpectedRegulated bool     `json:"expected_regulated"`
}

// HasStructure reports whether the record resolved to a structure identifier.
func (r Record) HasStructure() bool {
	return r.StructureID != ""
}

// Observation is one row of validation output for a ground-truth record.
// When Error is set the detection fields are undefined and the observation is
// excluded from metrics.
type Observation struct {
	Name              string   `json:"name"`
	StructureID       string   `json:"structure_id,omitempty"`
	Category          Category `json:"category"`
	ExpectedRegulated bool     `json:"expected_regulated"`
	ExpectedTier      string   `json:"expected_tier,omitempty"`

	DetectedRegulated   bool   `json:"detected_regulated"`
	DetectedTier        string `json:"detected_tier,omitempty"`
	DetectedWhitelisted bool   `json:"detected_whitelisted"`
	Status              string `json:"status,omitempty"`
	ScaffoldMatch       bool   `json:"scaffold_match"`
	BannedElsewhere     bool   `json:"banned_elsewhere"`
	TreatyScheduled     bool   `json:"treaty_scheduled"`
	FlagCount           int    `json:"flag_count"`
	InDatabase          bool   `json:"in_database"`
	Source              string `json:"source,omitempty"`

	Error string `json:"error,omitempty"`
}

// Failed reports whether the observation carries a classification failure.
func (o Observation) Failed() bool {
	return o.Error != ""
}
