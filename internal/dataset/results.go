package dataset

import (
	"fmt"
	"strconv"

	"chembench/internal/compound"
)

// resultsColumns is the fixed column set for results files.
var resultsColumns = []string{
	"name",
	"structure_id",
	"category",
	"expected_regulated",
	"expected_tier",
	"detected_regulated",
	"detected_tier",
	"detected_whitelisted",
	"status",
	"scaffold_match",
	"banned_elsewhere",
	"treaty_scheduled",
	"flag_count",
	"in_database",
	"source",
	"error",
}

// SaveResults writes a results set as CSV.
func SaveResults(path string, set compound.ResultsSet) error {
	rows := make([][]string, 0, set.Len()+1)
	rows = append(rows, resultsColumns)
	for _, observation := range set.Observations {
		rows = append(rows, []string{
			observation.Name,
			observation.StructureID,
			string(observation.Category),
			strconv.FormatBool(observation.ExpectedRegulated),
			observation.ExpectedTier,
			strconv.FormatBool(observation.DetectedRegulated),
			observation.DetectedTier,
			strconv.FormatBool(observation.DetectedWhitelisted),
			observation.Status,
			strconv.FormatBool(observation.ScaffoldMatch),
			strconv.FormatBool(observation.BannedElsewhere),
			strconv.FormatBool(observation.TreatyScheduled),
			strconv.Itoa(observation.FlagCount),
			strconv.FormatBool(observation.InDatabase),
			observation.Source,
			observation.Error,
		})
	}
	return writeRows(path, rows)
}

// LoadResults reads a results set from CSV, rejecting files whose header does
// not match the expected columns.
func LoadResults(path string) (compound.ResultsSet, error) {
	rows, err := readRows(path, resultsColumns)
	if err != nil {
		return compound.ResultsSet{}, err
	}
	observations := make([]compound.Observation, 0, len(rows))
	for i, row := range rows {
		observation, err := decodeResultsRow(row)
		if err != nil {
			return compound.ResultsSet{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		observations = append(observations, observation)
	}
	return compound.ResultsSet{Observations: observations}, nil
}

// decodeResultsRow converts one data row into an observation.
func decodeResultsRow(row []string) (compound.Observation, error) {
	category := compound.Category(row[2])
	if !category.Valid() {
		return compound.Observation{}, fmt.Errorf("unknown category %q", row[2])
	}
	observation := compound.Observation{
		Name:         row[0],
		StructureID:  row[1],
		Category:     category,
		ExpectedTier: row[4],
		DetectedTier: row[6],
		Status:       row[8],
		Source:       row[14],
		Error:        row[15],
	}
	var err error
	if observation.ExpectedRegulated, err = parseBool("expected_regulated", row[3]); err != nil {
		return compound.Observation{}, err
	}
	if observation.DetectedRegulated, err = parseBool("detected_regulated", row[5]); err != nil {
		return compound.Observation{}, err
	}
	if observation.DetectedWhitelisted, err = parseBool("detected_whitelisted", row[7]); err != nil {
		return compound.Observation{}, err
	}
	if observation.ScaffoldMatch, err = parseBool("scaffold_match", row[9]); err != nil {
		return compound.Observation{}, err
	}
	if observation.BannedElsewhere, err = parseBool("banned_elsewhere", row[10]); err != nil {
		return compound.Observation{}, err
	}
	if observation.TreatyScheduled, err = parseBool("treaty_scheduled", row[11]); err != nil {
		return compound.Observation{}, err
	}
	if observation.InDatabase, err = parseBool("in_database", row[13]); err != nil {
		return compound.Observation{}, err
	}
	flagCount, err := parseInt("flag_count", row[12])
	if err != nil {
		return compound.Observation{}, err
	}
	observation.FlagCount = int(flagCount)
	return observation, nil
}
