package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// DefaultWindow is the number of generations summarized per log line.
const DefaultWindow = 50

// Options configures a Recorder.
type Options struct {
	// Window is the number of generations per summary. Zero uses DefaultWindow.
	Window int
	// LogStats emits a summary via slog at the end of every window.
	LogStats bool
	// CSVPath, when set, receives one row per generation.
	CSVPath string
	Logger  *slog.Logger
}

// Recorder collects generation statistics, writing CSV rows and periodic
// slog summaries. A nil *Recorder is valid and records nothing.
type Recorder struct {
	window   int
	logStats bool
	logger   *slog.Logger

	pending []GenerationStats

	csv           io.Writer
	csvFile       *os.File
	headerWritten bool
}

// NewRecorder creates a recorder. It returns nil when neither logging nor CSV
// output is requested.
func NewRecorder(opts Options) (*Recorder, error) {
	if !opts.LogStats && opts.CSVPath == "" {
		return nil, nil
	}
	r := &Recorder{
		window:   opts.Window,
		logStats: opts.LogStats,
		logger:   opts.Logger,
	}
	if r.window <= 0 {
		r.window = DefaultWindow
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if opts.CSVPath != "" {
		if dir := filepath.Dir(opts.CSVPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating stats directory: %w", err)
			}
		}
		f, err := os.Create(opts.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Base(opts.CSVPath), err)
		}
		r.csvFile = f
		r.csv = f
	}
	return r, nil
}

// NewWriterRecorder creates a recorder that writes CSV rows to w.
func NewWriterRecorder(w io.Writer, opts Options) *Recorder {
	r := &Recorder{window: opts.Window, logStats: opts.LogStats, logger: opts.Logger, csv: w}
	if r.window <= 0 {
		r.window = DefaultWindow
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Record appends one generation. CSV failures disable further CSV output and
// are returned to the caller.
func (r *Recorder) Record(s GenerationStats) error {
	if r == nil {
		return nil
	}
	var err error
	if r.csv != nil {
		if err = r.writeRow(s); err != nil {
			r.csv = nil
		}
	}
	if r.logStats {
		r.pending = append(r.pending, s)
		if len(r.pending) >= r.window {
			r.flushSummary()
		}
	}
	return err
}

func (r *Recorder) writeRow(s GenerationStats) error {
	records := []GenerationStats{s}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.csv); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.csv); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

func (r *Recorder) flushSummary() {
	if len(r.pending) == 0 {
		return
	}
	r.logger.Info("generation window", "stats", Summarize(r.pending))
	r.pending = r.pending[:0]
}

// Discard drops a partially filled window, used when the grid is reset.
func (r *Recorder) Discard() {
	if r == nil {
		return
	}
	r.pending = r.pending[:0]
}

// Close logs any partial window and closes the CSV file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	if r.logStats {
		r.flushSummary()
	}
	r.csv = nil
	if r.csvFile != nil {
		err := r.csvFile.Close()
		r.csvFile = nil
		return err
	}
	return nil
}
