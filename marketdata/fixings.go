package marketdata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Observation is one published index value.
type Observation struct {
	Date  time.Time
	Value float64
}

// LoadFixingsCSV reads "date,value" rows from path. A header row whose first
// field is not a date is skipped. Dates are YYYY-MM-DD.
func LoadFixingsCSV(path string) ([]Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFixingsCSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("LoadFixingsCSV: %s: %w", path, err)
	}

	obs := make([]Observation, 0, len(rows))
	for i, row := range rows {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("LoadFixingsCSV: %s row %d: bad date %q", path, i+1, row[0])
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("LoadFixingsCSV: %s row %d: bad value %q", path, i+1, row[1])
		}
		obs = append(obs, Observation{Date: d, Value: v})
	}
	return obs, nil
}
