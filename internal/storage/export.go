package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

type ExportData struct {
	Meta   RunMetadata `json:"meta"`
	Frames []Frame     `json:"frames"`
}

func ExportJSON(path string, meta RunMetadata, frames []Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, meta, frames)
}

func ExportJSONStdout(meta RunMetadata, frames []Frame) error {
	return writeJSON(os.Stdout, meta, frames)
}

func writeJSON(w io.Writer, meta RunMetadata, frames []Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Meta: meta, Frames: frames})
}

// ExportCSV writes the frame table to w in the same layout as frames.csv.
func ExportCSV(w io.Writer, frames []Frame) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(frameHeader); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{
			strconv.FormatFloat(f.Time, 'f', 6, 64),
			strconv.Itoa(f.Objects),
			strconv.FormatFloat(f.Kinetic, 'f', 6, 64),
			strconv.FormatFloat(f.MinY, 'f', 6, 64),
			strconv.FormatFloat(f.MaxY, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
