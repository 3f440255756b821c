package orderbench

import (
	"encoding/json"
	"fmt"
	"os"
)

// Batch is one decoded solution document.
//
// The document layout is
//
//	{
//	  "qubo_solution": {
//	    "result_status": true,
//	    "solutions": [
//	      {"configuration": {"0": true, "1": false, ...}, "energy": -144, "frequency": 1},
//	      ...
//	    ]
//	  },
//	  "status": "Done"
//	}
type Batch struct {
	Records      []Record
	ResultStatus bool
	Status       string
}

type solutionDocument struct {
	QUBOSolution *struct {
		ResultStatus bool               `json:"result_status"`
		Solutions    []solutionDocEntry `json:"solutions"`
	} `json:"qubo_solution"`
	Status string `json:"status"`
}

type solutionDocEntry struct {
	// encoding/json decodes the string keys as ints and rejects anything else.
	Configuration map[int]bool `json:"configuration"`
	Energy        float64      `json:"energy"`
	Frequency     int          `json:"frequency"`
}

// DecodeBatch parses a solution document held in memory.
func DecodeBatch(data []byte) (Batch, error) {
	var doc solutionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if doc.QUBOSolution == nil {
		return Batch{}, fmt.Errorf("%w: missing qubo_solution", ErrMalformedRecord)
	}

	batch := Batch{
		Records:      make([]Record, len(doc.QUBOSolution.Solutions)),
		ResultStatus: doc.QUBOSolution.ResultStatus,
		Status:       doc.Status,
	}
	for i, entry := range doc.QUBOSolution.Solutions {
		if entry.Configuration == nil {
			return Batch{}, fmt.Errorf("%w: solution %d has no configuration", ErrMalformedRecord, i)
		}
		batch.Records[i] = Record{
			Configuration: entry.Configuration,
			Energy:        entry.Energy,
			Frequency:     entry.Frequency,
		}
	}
	return batch, nil
}

// LoadBatch reads a whole solution file into memory and decodes it.
func LoadBatch(filePath string) (Batch, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Batch{}, fmt.Errorf("read solutions: %w", err)
	}
	batch, err := DecodeBatch(data)
	if err != nil {
		return Batch{}, fmt.Errorf("%s: %w", filePath, err)
	}
	return batch, nil
}

// FileOptions controls AnalyzeFile.
type FileOptions struct {
	Options

	// PerLayer analyses each of the Height layers named in the path separately
	// instead of folding them onto one lattice.
	PerLayer bool
}

// AnalyzeFile runs the order-parameter analysis on one dataset file: the
// lattice length (and layer count, with PerLayer) comes from the path, the
// records from the file contents.
func AnalyzeFile(filePath string, opts FileOptions) (Metadata, Series, error) {
	md, err := ParseMetadata(filePath)
	if err != nil {
		return Metadata{}, Series{}, err
	}

	batch, err := LoadBatch(filePath)
	if err != nil {
		return md, Series{}, err
	}

	run := opts.Options
	if opts.PerLayer {
		run.Layers = md.Layers()
	}

	series, err := Analyze(md.Length, batch.Records, run)
	if err != nil {
		return md, Series{}, fmt.Errorf("%s: %w", filePath, err)
	}
	return md, series, nil
}
