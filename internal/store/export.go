package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/sortviz/internal/experiment"
)

type StepData struct {
	Index    int    `json:"index"`
	Kind     string `json:"kind"`
	A        int    `json:"a,omitempty"`
	B        int    `json:"b,omitempty"`
	Label    string `json:"label,omitempty"`
	Snapshot []int  `json:"snapshot"`
}

type ExportData struct {
	Algorithm string             `json:"algorithm"`
	Seed      int64              `json:"seed"`
	Size      int                `json:"size"`
	Initial   []int              `json:"initial"`
	Steps     []StepData         `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func newExportData(res *experiment.Result) ExportData {
	data := ExportData{
		Algorithm: res.Algorithm,
		Seed:      res.Seed,
		Size:      len(res.Initial),
		Initial:   res.Initial,
		Steps:     make([]StepData, len(res.Steps)),
		Metrics:   res.Metrics,
	}
	for i, s := range res.Steps {
		op := s.Op.Adjusted()
		data.Steps[i] = StepData{
			Index:    i,
			Kind:     op.Kind.String(),
			A:        op.A,
			B:        op.B,
			Label:    op.String(),
			Snapshot: s.Snapshot,
		}
	}
	return data
}

// WriteJSON writes the trace as indented JSON.
func WriteJSON(w io.Writer, res *experiment.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(res))
}

func ExportJSON(path string, res *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, res)
}

// WriteCSV writes one row per step: the step index, the operation and the
// snapshot spread over one column per element.
func WriteCSV(w io.Writer, res *experiment.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"step", "kind", "a", "b"}
	for i := range res.Initial {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, s := range res.Steps {
		op := s.Op.Adjusted()
		row := []string{strconv.Itoa(i), op.Kind.String(), "", ""}
		idx := op.Indices()
		for j := 0; j < len(idx) && j < 2; j++ {
			row[2+j] = strconv.Itoa(idx[j])
		}
		for _, v := range s.Snapshot {
			row = append(row, strconv.Itoa(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, res *experiment.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, res)
}
