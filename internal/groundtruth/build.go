package groundtruth

import (
	"context"
	"fmt"

	"chembench/internal/compound"
	"chembench/internal/pubchem"
	"chembench/internal/taxonomy"
)

// EventType identifies a lookup status update for observers.
type EventType string

const (
	// EventLookup marks a structure lookup in progress.
	EventLookup EventType = "lookup"
	// EventResolved marks a compound added to the set.
	EventResolved EventType = "resolved"
	// EventOmitted marks a compound dropped after a failed lookup.
	EventOmitted EventType = "omitted"
)

// Event carries a single status update for one taxonomy name.
type Event struct {
	Name     string
	Category compound.Category
	Tier     string
	Type     EventType
	Error    string
}

// Lookup resolves one compound name to its canonical structure properties.
type Lookup func(ctx context.Context, name string) (pubchem.Properties, error)

// Build resolves every taxonomy entry through the provider and assembles the
// ground-truth set in taxonomy declaration order. A failed lookup omits that
// compound and the build continues; only context cancellation stops it, and
// then the records resolved so far are returned alongside the context error.
func Build(ctx context.Context, tax taxonomy.Taxonomy, lookup Lookup, notify func(Event)) (compound.GroundTruthSet, error) {
	if lookup == nil {
		return compound.GroundTruthSet{}, fmt.Errorf("groundtruth: lookup is nil")
	}
	if notify == nil {
		notify = func(Event) {}
	}

	entries := tax.Entries()
	records := make([]compound.Record, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return compound.GroundTruthSet{Records: records}, err
		}
		category := CategoryFor(entry.Group)
		notify(Event{Name: entry.Name, Category: category, Tier: entry.Schedule, Type: EventLookup})

		props, err := lookup(ctx, entry.Name)
		if err != nil {
			if ctx.Err() != nil {
				return compound.GroundTruthSet{Records: records}, ctx.Err()
			}
			notify(Event{Name: entry.Name, Category: category, Tier: entry.Schedule, Type: EventOmitted, Error: err.Error()})
			continue
		}
		records = append(records, compound.Record{
			Name:              entry.Name,
			StructureID:       props.SMILES,
			CID:               props.CID,
			Formula:           props.Formula,
			Weight:            props.Weight,
			Category:          category,
			Tier:              entry.Schedule,
			ExpectedRegulated: category == compound.CategoryRegulated,
		})
		notify(Event{Name: entry.Name, Category: category, Tier: entry.Schedule, Type: EventResolved})
	}
	return compound.GroundTruthSet{Records: records}, nil
}

// CategoryFor maps a taxonomy group to its ground-truth category.
func CategoryFor(group taxonomy.Group) compound.Category {
	switch group {
	case taxonomy.GroupApproved:
		return compound.CategoryApproved
	case taxonomy.GroupNegativeControl:
		return compound.CategoryNegativeControl
	default:
		return compound.CategoryRegulated
	}
}
