package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/spinlab/internal/sweep"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Param     string             `json:"param"`
	Timestamp time.Time          `json:"timestamp"`
	From      float64            `json:"from"`
	To        float64            `json:"to"`
	Samples   int                `json:"samples"`
	Columns   []string           `json:"columns"`
	Fixed     map[string]float64 `json:"fixed"`
}

// Save writes metadata.json and series.csv for result under a new run id.
func (s *Store) Save(result *sweep.Result) (string, error) {
	if result == nil || len(result.X) == 0 {
		return "", errors.New("storage: empty sweep result")
	}

	now := time.Now()
	runID := fmt.Sprintf("%s_%d_%s", result.Kind, now.Unix(), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	columns := make([]string, len(result.Series))
	for i, series := range result.Series {
		columns[i] = series.Name
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      result.Kind,
		Param:     result.Param,
		Timestamp: now,
		From:      result.X[0],
		To:        result.X[len(result.X)-1],
		Samples:   len(result.X),
		Columns:   columns,
		Fixed:     result.Fixed,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), result); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeries(path string, result *sweep.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{result.Param}
	for _, series := range result.Series {
		header = append(header, series.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, x := range result.X {
		row := []string{strconv.FormatFloat(x, 'g', -1, 64)}
		for _, series := range result.Series {
			row = append(row, strconv.FormatFloat(series.Values[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	return &meta, nil
}

// LoadResult reads a run back into a sweep result.
func (s *Store) LoadResult(runID string) (*sweep.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	result := &sweep.Result{
		Kind:   meta.Kind,
		Param:  meta.Param,
		Fixed:  meta.Fixed,
		Series: make([]sweep.Series, len(meta.Columns)),
	}
	for i, name := range meta.Columns {
		result.Series[i] = sweep.Series{Name: name}
	}

	for row, record := range records {
		if row == 0 {
			continue
		}
		if len(record) != len(meta.Columns)+1 {
			return nil, fmt.Errorf("run %s: row %d has %d fields", runID, row, len(record))
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: row %d: %w", runID, row, err)
		}
		result.X = append(result.X, x)

		for c := range meta.Columns {
			v, err := strconv.ParseFloat(record[c+1], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: row %d: %w", runID, row, err)
			}
			result.Series[c].Values = append(result.Series[c].Values, v)
		}
	}

	return result, nil
}
