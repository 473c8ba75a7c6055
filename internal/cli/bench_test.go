package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/polycalc/internal/bench"
	"github.com/agbru/polycalc/internal/polynomial"
)

// fakeSpinner is a silent Spinner implementation for tests.
type fakeSpinner struct {
	suffixes []string
}

func (f *fakeSpinner) Start()                     {}
func (f *fakeSpinner) Stop()                      {}
func (f *fakeSpinner) UpdateSuffix(suffix string) { f.suffixes = append(f.suffixes, suffix) }

func TestDisplayBenchReport(t *testing.T) {
	t.Parallel()

	report := &bench.Report{
		Coefficients: polynomial.Coefficients{1, -3, 2},
		X:            0.5,
		Algorithms: []bench.AlgorithmReport{
			{
				Name:         "Horner Scheme",
				Trials:       1000,
				Min:          100 * time.Nanosecond,
				Median:       150 * time.Nanosecond,
				Mean:         160 * time.Nanosecond,
				Max:          2 * time.Microsecond,
				AllocBytes:   0,
				AllocObjects: 0,
				Value:        0,
			},
			{
				Name:   "Direct Summation",
				Trials: 1000,
				Min:    300 * time.Nanosecond,
				Median: 400 * time.Nanosecond,
				Mean:   420 * time.Nanosecond,
				Max:    5 * time.Microsecond,
			},
			{
				Name:   "Symbolic Reference",
				Trials: 1000,
				Err:    errors.New("backend unavailable"),
			},
		},
		TotalDuration: 3 * time.Second,
	}

	var buf bytes.Buffer
	DisplayBenchReport(report, &buf)
	output := buf.String()

	if !strings.Contains(output, "Benchmark Report") {
		t.Error("Report should have a title")
	}
	if !strings.Contains(output, "Polynomial degree: ") {
		t.Error("Report header should show the degree")
	}
	if !strings.Contains(output, "ALGORITHM") || !strings.Contains(output, "MEDIAN") {
		t.Error("Report should have table headers")
	}
	if !strings.Contains(output, "ok (fastest)") {
		t.Error("Report should highlight the fastest evaluator")
	}
	if !strings.Contains(output, "failed: backend unavailable") {
		t.Error("Report should show the failed evaluator's error")
	}
	if !strings.Contains(output, "Total campaign time") {
		t.Error("Report should show the total campaign time")
	}
}

func TestRunBenchmark(t *testing.T) {
	// Overrides the package-level spinner constructor; not parallel.
	original := NewSpinner
	fake := &fakeSpinner{}
	NewSpinner = func(options ...spinner.Option) Spinner { return fake }
	defer func() { NewSpinner = original }()

	factory := polynomial.NewFactory(&polynomial.Horner{}, &polynomial.DirectSum{})
	opts := bench.Options{Trials: 50, Degree: 8, X: 0.5, Seed: 42}

	var buf bytes.Buffer
	err := RunBenchmark(context.Background(), factory.GetAll(), opts, &buf)
	if err != nil {
		t.Fatalf("RunBenchmark returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Benchmark Report") {
		t.Error("RunBenchmark should print the report")
	}
	if len(fake.suffixes) != 2 {
		t.Errorf("Spinner should be updated once per evaluator, got %d updates", len(fake.suffixes))
	}
	if len(fake.suffixes) > 0 && !strings.Contains(fake.suffixes[0], "(1/2)") {
		t.Errorf("Spinner suffix should show progress, got %q", fake.suffixes[0])
	}
}

func TestRunBenchmarkCanceled(t *testing.T) {
	original := NewSpinner
	NewSpinner = func(options ...spinner.Option) Spinner { return &fakeSpinner{} }
	defer func() { NewSpinner = original }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	factory := polynomial.NewFactory(&polynomial.Horner{})
	opts := bench.Options{Trials: 50, Degree: 8, X: 0.5, Seed: 42}

	var buf bytes.Buffer
	err := RunBenchmark(ctx, factory.GetAll(), opts, &buf)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestFormatAllocPerTrial(t *testing.T) {
	t.Parallel()

	algo := bench.AlgorithmReport{Trials: 100, AllocBytes: 1600, AllocObjects: 50}
	got := formatAllocPerTrial(algo)
	if !strings.Contains(got, "16 B") || !strings.Contains(got, "0.5 objs") {
		t.Errorf("formatAllocPerTrial = %q", got)
	}

	if got := formatAllocPerTrial(bench.AlgorithmReport{}); got != "-" {
		t.Errorf("Zero trials should render as dash, got %q", got)
	}
}
