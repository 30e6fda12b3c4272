package dataset

import (
	"fmt"
	"strconv"

	"chembench/internal/compound"
)

// groundTruthColumns is the fixed column set for ground-truth files.
var groundTruthColumns = []string{
	"name",
	"structure_id",
	"cid",
	"formula",
	"weight",
	"category",
	"tier",
	"expected_regulated",
}

// SaveGroundTruth writes a ground-truth set as CSV.
func SaveGroundTruth(path string, set compound.GroundTruthSet) error {
	rows := make([][]string, 0, set.Len()+1)
	rows = append(rows, groundTruthColumns)
	for _, record := range set.Records {
		rows = append(rows, []string{
			record.Name,
			record.StructureID,
			formatOptionalInt(record.CID),
			record.Formula,
			record.Weight,
			string(record.Category),
			record.Tier,
			strconv.FormatBool(record.ExpectedRegulated),
		})
	}
	return writeRows(path, rows)
}

// LoadGroundTruth reads a ground-truth set from CSV, rejecting files whose
// header does not match the expected columns.
func LoadGroundTruth(path string) (compound.GroundTruthSet, error) {
	rows, err := readRows(path, groundTruthColumns)
	if err != nil {
		return compound.GroundTruthSet{}, err
	}
	records := make([]compound.Record, 0, len(rows))
	for i, row := range rows {
		record, err := decodeGroundTruthRow(row)
		if err != nil {
			return compound.GroundTruthSet{}, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, record)
	}
	return compound.GroundTruthSet{Records: records}, nil
}

// decodeGroundTruthRow converts one data row into a compound record.
func decodeGroundTruthRow(row []string) (compound.Record, error) {
	category := compound.Category(row[5])
	if !category.Valid() {
		return compound.Record{}, fmt.Errorf("unknown category %q", row[5])
	}
	cid, err := parseInt("cid", row[2])
	if err != nil {
		return compound.Record{}, err
	}
	expectedRegulated, err := parseBool("expected_regulated", row[7])
	if err != nil {
		return compound.Record{}, err
	}
	return compound.Record{
		Name:              row[0],
		StructureID:       row[1],
		CID:               cid,
		Formula:           row[3],
		Weight:            row[4],
		Category:          category,
		Tier:              row[6],
		ExpectedRegulated: expectedRegulated,
	}, nil
}
