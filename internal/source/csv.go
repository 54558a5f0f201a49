// Package source loads raw rider entries from a local spreadsheet export.
// The upstream system publishes the registration sheet as CSV; fetching it
// is someone else's job, this package only reads the file.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ttresults/internal/rider"
)

// LoadCSV reads a results export and returns raw entries in file order.
// The first row must name the columns; header names are matched
// case-insensitively against the canonical field keys and unknown columns
// are ignored. Ragged rows are tolerated, and every entry carries all
// canonical keys so absent cells read as empty rather than missing.
func LoadCSV(path string) ([]rider.Raw, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results export: %w", err)
	}
	defer file.Close()

	entries, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read results export %s: %w", path, err)
	}
	return entries, nil
}

// Read parses CSV export data from r.
func Read(r io.Reader) ([]rider.Raw, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}

	known := make(map[string]struct{}, len(rider.Keys))
	for _, key := range rider.Keys {
		known[key] = struct{}{}
	}
	columns := make(map[int]string, len(header))
	for i, name := range header {
		name = normalizeHeader(name)
		if _, ok := known[name]; ok {
			columns[i] = name
		}
	}

	var entries []rider.Raw
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		entry := make(rider.Raw, len(rider.Keys))
		for _, key := range rider.Keys {
			entry[key] = ""
		}
		for i, cell := range row {
			if key, ok := columns[i]; ok {
				entry[key] = strings.TrimSpace(cell)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// normalizeHeader matches export column headings to field keys: the sheet
// publishes them with arbitrary casing and embedded spaces.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}
