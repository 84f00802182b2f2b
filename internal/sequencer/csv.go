package sequencer

import (
	"encoding/csv"
	"errors"
	"io"
)

// LoadRows parses comma-separated, quote-aware records with any number of
// columns. There is no header row. Blank rows are dropped wherever they
// appear. Any malformed record fails the whole load.
func LoadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := Row(record)
		if row.Blank() {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
