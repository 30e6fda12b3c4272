package compound

// GroundTruthSet is an immutable, ordered collection of labeled records.
type GroundTruthSet struct {
	Records []Record `json:"records"`
}

// Len returns the number of records in the set.
func (s GroundTruthSet) Len() int {
	return len(s.Records)
}

// Validatable returns the records that resolved to a structure identifier, in
// set order. Records without a structure are skipped entirely during
// validation and never appear in a results set.
func (s GroundTruthSet) Validatable() []Record {
	out := make([]Record, 0, len(s.Records))
	for _, record := range s.Records {
		if record.HasStructure() {
			out = append(out, record)
		}
	}
	return out
}

// ResultsSet is an ordered sequence of observations whose order matches the
// ground-truth iteration order.
type ResultsSet struct {
	Observations []Observation `json:"observations"`
}

// Len returns the number of observations in the set.
func (s ResultsSet) Len() int {
	return len(s.Observations)
}

// Valid returns the observations without a classification failure, in set
// order.
func (s ResultsSet) Valid() []Observation {
	out := make([]Observation, 0, len(s.Observations))
	for _, observation := range s.Observations {
		if !observation.Failed() {
			out = append(out, observation)
		}
	}
	return out
}
