// Package jsonfile reads the static governance dataset JSON the charts were
// built around: a flat array of records, one per DAO.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"daostats/domain/dataset"
)

// Reader loads a Dataset from a JSON file on disk.
type Reader struct {
	filePath string
}

// NewReader creates a reader for the given file path.
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath}
}

// Read parses the file into a Dataset. The file must hold a non-empty JSON
// array of governance records.
func (r *Reader) Read(ctx context.Context) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	raw, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", r.filePath, err)
	}

	var records []dataset.GovernanceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file %s: %w", r.filePath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset file %s contains no records", r.filePath)
	}

	log.Printf("[JSONReader] Loaded %d records from %s in %.2fms",
		len(records), r.filePath, float64(time.Since(start).Nanoseconds())/1e6)

	return &dataset.Dataset{Records: records}, nil
}
