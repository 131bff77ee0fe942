package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/experiment"
)

// Store keeps exported traces under a base directory, one directory per run.
// Runs are written for offline inspection and are never replayed.
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
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Size      int                `json:"size"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(res *experiment.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", strings.ReplaceAll(res.Algorithm, " ", "_"), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Algorithm: res.Algorithm,
		Timestamp: now,
		Seed:      res.Seed,
		Size:      len(res.Initial),
		Steps:     len(res.Steps),
		Metrics:   res.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := ExportCSV(filepath.Join(runDir, "trace.csv"), res); err != nil {
		return "", err
	}
	if err := ExportJSON(filepath.Join(runDir, "trace.json"), res); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns the metadata of every saved run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
