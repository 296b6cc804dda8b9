package storage

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/san-kum/spinlab/internal/sweep"
)

type ExportData struct {
	ID      string                `json:"id"`
	Kind    string                `json:"kind"`
	Param   string                `json:"param"`
	Samples int                   `json:"samples"`
	X       []*float64            `json:"x"`
	Series  map[string][]*float64 `json:"series"`
	Fixed   map[string]float64    `json:"fixed"`
}

// finite maps NaN and ±Inf to null, which JSON cannot encode otherwise.
func finite(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		v := values[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = &v
	}
	return out
}

func exportData(id string, result *sweep.Result) ExportData {
	data := ExportData{
		ID:      id,
		Kind:    result.Kind,
		Param:   result.Param,
		Samples: len(result.X),
		X:       finite(result.X),
		Series:  make(map[string][]*float64, len(result.Series)),
		Fixed:   result.Fixed,
	}
	for _, s := range result.Series {
		data.Series[s.Name] = finite(s.Values)
	}
	return data
}

func WriteJSON(w io.Writer, id string, result *sweep.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(id, result))
}

func ExportJSON(path, id string, result *sweep.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, id, result)
}

func ExportJSONStdout(id string, result *sweep.Result) error {
	return WriteJSON(os.Stdout, id, result)
}
