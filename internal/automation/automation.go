package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/store"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted batch of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Seed      int64  `yaml:"seed"`
	Save      bool   `yaml:"save"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}

	return &scenario, nil
}

// RunScenario executes all steps in order. Steps marked save are written to
// st when it is not nil. Results of the steps that finished are returned
// alongside the first error.
func RunScenario(ctx context.Context, scenario *Scenario, st *store.Store, logger *slog.Logger) ([]*experiment.Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	results := make([]*experiment.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		size := step.Size
		if size == 0 {
			size = experiment.MinWidth
		}
		logger.Info("scenario step",
			slog.Int("step", i+1),
			slog.Int("of", len(scenario.Steps)),
			slog.String("algorithm", step.Algorithm),
			slog.Int("size", size))

		exp, err := experiment.New(experiment.Config{
			Algorithm: step.Algorithm,
			Size:      size,
			Seed:      step.Seed,
		}, logger)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, result)

		if step.Save && st != nil {
			id, err := st.Save(result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			logger.Info("saved run", slog.String("id", id))
		}
	}

	return results, nil
}

// SizeSweep runs one algorithm over evenly spaced input sizes
type SizeSweep struct {
	Algorithm string
	MinSize   int
	MaxSize   int
	NumSteps  int
	Seed      int64
}

// SweepResult holds the metrics of one size in a sweep
type SweepResult struct {
	Size    int
	Steps   int
	Metrics map[string]float64
}

// RunSweep executes a size sweep. Every size uses the same seed so repeated
// sweeps are comparable.
func RunSweep(ctx context.Context, sweep *SizeSweep, logger *slog.Logger) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if sweep.MinSize < 0 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("%w: sweep range %d..%d", experiment.ErrInvalidSize, sweep.MinSize, sweep.MaxSize)
	}
	if logger == nil {
		logger = slog.Default()
	}

	seed := sweep.Seed
	if seed == 0 {
		seed = 1
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		size := sweep.MinSize
		if sweep.NumSteps > 1 {
			size += (sweep.MaxSize - sweep.MinSize) * i / (sweep.NumSteps - 1)
		}

		exp, err := experiment.New(experiment.Config{
			Algorithm: sweep.Algorithm,
			Size:      size,
			Seed:      seed,
		}, logger)
		if err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Size:    size,
			Steps:   len(result.Steps),
			Metrics: result.Metrics,
		})
		logger.Debug("sweep",
			slog.Int("step", i+1),
			slog.Int("of", sweep.NumSteps),
			slog.Int("size", size),
			slog.Int("ops", len(result.Steps)))
	}

	return results, nil
}
