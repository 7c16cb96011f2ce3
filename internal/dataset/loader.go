package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"launchdash/internal/models"
)

// Column headers of the launch CSV.
const (
	ColumnFlightNumber    = "Flight Number"
	ColumnLaunchSite      = "Launch Site"
	ColumnClass           = "class"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterVersion  = "Booster Version"
	ColumnBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterCategory,
}

// Load reads the launch dataset from a CSV file.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads launch records from CSV. The first row must be the header.
// Columns are matched by name; an unnamed index column is ignored.
func Parse(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	reader.FieldsPerRecord = len(header)

	var records []models.LaunchRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return New(records)
}

func parseRow(row []string, cols map[string]int) (models.LaunchRecord, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := models.LaunchRecord{
		Site:            field(ColumnLaunchSite),
		BoosterVersion:  field(ColumnBoosterVersion),
		BoosterCategory: field(ColumnBoosterCategory),
	}
	if rec.Site == "" {
		return rec, fmt.Errorf("%w: empty %q", ErrMalformedRow, ColumnLaunchSite)
	}

	payload, err := strconv.ParseFloat(field(ColumnPayloadMass), 64)
	if err != nil || payload < 0 {
		return rec, fmt.Errorf("%w: invalid %q value %q", ErrMalformedRow, ColumnPayloadMass, field(ColumnPayloadMass))
	}
	rec.PayloadMassKg = payload

	class, err := strconv.ParseFloat(field(ColumnClass), 64)
	if err != nil {
		return rec, fmt.Errorf("%w: invalid %q value %q", ErrMalformedRow, ColumnClass, field(ColumnClass))
	}
	switch class {
	case 0:
		rec.Outcome = models.OutcomeFailure
	case 1:
		rec.Outcome = models.OutcomeSuccess
	default:
		return rec, fmt.Errorf("%w: got %v", ErrInvalidOutcome, class)
	}

	if v := field(ColumnFlightNumber); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return rec, fmt.Errorf("%w: invalid %q value %q", ErrMalformedRow, ColumnFlightNumber, v)
		}
		rec.FlightNumber = n
	}

	return rec, nil
}
