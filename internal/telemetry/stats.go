// Package telemetry records per-generation statistics for a running session.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats is one row of generation telemetry.
type GenerationStats struct {
	Generation uint64 `csv:"generation"`
	ElapsedMS  uint64 `csv:"elapsed_ms"`
	Cols       int    `csv:"cols"`
	Rows       int    `csv:"rows"`
	Population int    `csv:"population"`
	Births     int    `csv:"births"`
	Deaths     int    `csv:"deaths"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("generation", s.Generation),
		slog.Uint64("elapsed_ms", s.ElapsedMS),
		slog.Int("cols", s.Cols),
		slog.Int("rows", s.Rows),
		slog.Int("population", s.Population),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
	)
}

// WindowSummary aggregates a run of consecutive generations.
type WindowSummary struct {
	FirstGeneration uint64
	LastGeneration  uint64
	Generations     int
	PopulationMean  float64
	PopulationStd   float64
	PopulationMin   int
	PopulationMax   int
	Births          int
	Deaths          int
	Density         float64
}

// LogValue implements slog.LogValuer for structured logging.
func (w WindowSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("first", w.FirstGeneration),
		slog.Uint64("last", w.LastGeneration),
		slog.Int("generations", w.Generations),
		slog.Float64("pop_mean", w.PopulationMean),
		slog.Float64("pop_std", w.PopulationStd),
		slog.Int("pop_min", w.PopulationMin),
		slog.Int("pop_max", w.PopulationMax),
		slog.Int("births", w.Births),
		slog.Int("deaths", w.Deaths),
		slog.Float64("density", w.Density),
	)
}

// Summarize computes window statistics over records. An empty slice yields
// the zero summary.
func Summarize(records []GenerationStats) WindowSummary {
	if len(records) == 0 {
		return WindowSummary{}
	}
	pops := make([]float64, len(records))
	density := make([]float64, len(records))
	sum := WindowSummary{
		FirstGeneration: records[0].Generation,
		LastGeneration:  records[len(records)-1].Generation,
		Generations:     len(records),
		PopulationMin:   records[0].Population,
		PopulationMax:   records[0].Population,
	}
	for i, r := range records {
		pops[i] = float64(r.Population)
		if cells := r.Cols * r.Rows; cells > 0 {
			density[i] = float64(r.Population) / float64(cells)
		}
		sum.Births += r.Births
		sum.Deaths += r.Deaths
		if r.Population < sum.PopulationMin {
			sum.PopulationMin = r.Population
		}
		if r.Population > sum.PopulationMax {
			sum.PopulationMax = r.Population
		}
	}
	if len(pops) > 1 {
		sum.PopulationMean, sum.PopulationStd = stat.MeanStdDev(pops, nil)
	} else {
		sum.PopulationMean = pops[0]
	}
	sum.Density = stat.Mean(density, nil)
	return sum
}
