package taxonomy

// Taxonomy defines the compound lists a benchmark draws its ground truth from.
// It is supplied as a configuration file, never compiled in.
type Taxonomy struct {
	Version          int             `json:"version" yaml:"version"`
	Regulated        []ScheduleGroup `json:"regulated" yaml:"regulated"`
	Approved         []string        `json:"approved" yaml:"approved"`
	NegativeControls []string        `json:"negative_controls" yaml:"negative_controls"`
}

// ScheduleGroup lists the regulated compounds expected at one schedule.
type ScheduleGroup struct {
	Schedule  string   `json:"schedule" yaml:"schedule"`
	Compounds []string `json:"compounds" yaml:"compounds"`
}

// Entry is one (category, tier, name) triple in taxonomy declaration order.
type Entry struct {
	Name     string
	Schedule string
	Group    Group
}

// Group identifies which taxonomy list an entry came from.
type Group string

const (
	// GroupRegulated marks entries from a schedule group.
	GroupRegulated Group = "regulated"
	// GroupApproved marks entries from the approved list.
	GroupApproved Group = "approved"
	// GroupNegativeControl marks entries from the negative-control list.
	GroupNegativeControl Group = "negative_control"
)

// Entries flattens the taxonomy into declaration order: regulated compounds
// grouped by schedule, then approved compounds, then negative controls. This
// order is the ground-truth iteration order for the whole benchmark.
func (t Taxonomy) Entries() []Entry {
	entries := make([]Entry, 0, t.Size())
	for _, group := range t.Regulated {
		for _, name := range group.Compounds {
			entries = append(entries, Entry{Name: name, Schedule: group.Schedule, Group: GroupRegulated})
		}
	}
	for _, name := range t.Approved {
		entries = append(entries, Entry{Name: name, Group: GroupApproved})
	}
	for _, name := range t.NegativeControls {
		entries = append(entries, Entry{Name: name, Group: GroupNegativeControl})
	}
	return entries
}

// Size returns the total number of compound names across all lists.
func (t Taxonomy) Size() int {
	total := len(t.Approved) + len(t.NegativeControls)
	for _, group := range t.Regulated {
		total += len(group.Compounds)
	}
	return total
}
