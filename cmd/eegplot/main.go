// Command eegplot renders power spectra and topographic maps from a
// per-electrode spectrum table.
//
// Usage:
//
//	eegplot [flags] -in spectrum.csv
//
// The input CSV has one header row of electrode labels (10-20 order) and one
// row of power values per frequency bin.
//
// Examples:
//
//	eegplot -in rest.csv -freq 10
//	eegplot -in rest.csv -band alpha -relative -format html -out alpha
//	eegplot -in rest.csv -stats -start 1 -step 0.25
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-eeg/plotdata/freq"
	"github.com/cwbudde/algo-eeg/plotdata/topo"
	"github.com/cwbudde/algo-eeg/render"
	"github.com/cwbudde/algo-eeg/stats/frequency"
)

var (
	errMissingInput = errors.New("eegplot: -in is required")
	errFormat       = errors.New("eegplot: unknown output format")
	errBand         = errors.New("eegplot: unknown band")
)

type options struct {
	in       string
	out      string
	format   string
	band     string
	units    string
	start    float64
	step     float64
	freq     float64
	k        int
	res      int
	relative bool
	stats    bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("eegplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "", "input CSV (header = electrode labels, one row per bin)")
	fs.StringVar(&o.out, "out", "eegplot", "output path prefix")
	fs.StringVar(&o.format, "format", "png", "output format: png or html")
	fs.StringVar(&o.band, "band", "", "map the power of one band (delta, theta, alpha, beta) instead of a single bin")
	fs.StringVar(&o.units, "units", topo.DefaultUnits, "units of the input values")
	fs.Float64Var(&o.start, "start", 0.5, "frequency of the first bin in Hz")
	fs.Float64Var(&o.step, "step", 0.5, "bin width in Hz")
	fs.Float64Var(&o.freq, "freq", 10, "frequency of the topographic map in Hz")
	fs.IntVar(&o.k, "k", 4, "number of nearest electrodes used per map point")
	fs.IntVar(&o.res, "res", 64, "map resolution in samples per side")
	fs.BoolVar(&o.relative, "relative", false, "with -band, map the band's share of total power")
	fs.BoolVar(&o.stats, "stats", false, "print per-electrode spectrum statistics")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: eegplot [flags] -in spectrum.csv\n\n")
		fmt.Fprintf(stderr, "Renders a power spectrum plot and a topographic map.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o.format = strings.ToLower(strings.TrimSpace(o.format))
	switch {
	case o.in == "":
		return nil, errMissingInput
	case o.format != "png" && o.format != "html":
		return nil, fmt.Errorf("%w: %q", errFormat, o.format)
	}
	return o, nil
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, o.verbose)
	defer func() { _ = logger.Sync() }()

	if err := run(o, os.Stdout, logger); err != nil {
		logger.Error("eegplot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(o *options, stdout io.Writer, logger *zap.Logger) error {
	rec, err := loadRecording(o.in)
	if err != nil {
		return err
	}
	logger.Info("loaded recording",
		zap.String("path", o.in),
		zap.Int("electrodes", len(rec.labels)),
		zap.Int("bins", rec.bins()))

	axis, err := buildAxis(o, rec)
	if err != nil {
		return err
	}
	e := axis.Extent()
	logger.Debug("frequency axis",
		zap.Float64("xMin", e.X.Min), zap.Float64("xMax", e.X.Max),
		zap.Float64("yMin", e.Y.Min), zap.Float64("yMax", e.Y.Max))

	if o.stats {
		if err := printStats(stdout, axis, rec.labels); err != nil {
			return err
		}
	}

	ip, err := buildInterpolator(o, axis, rec)
	if err != nil {
		return err
	}
	if bin, ok := ip.BinIndex(o.freq); !ok {
		logger.Warn("map frequency has no bin, map will be empty", zap.Float64("freq", o.freq))
	} else {
		logger.Debug("map bin", zap.Int("bin", bin), zap.Float64("extentMin", ip.Extent().Min), zap.Float64("extentMax", ip.Extent().Max))
	}

	grid, err := ip.SampleGrid(o.k, o.freq, o.res)
	if err != nil {
		return err
	}

	paths, err := write(o, axis, ip, grid, rec.labels)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info("wrote output", zap.String("path", p), zap.String("format", o.format))
	}
	return nil
}

func buildAxis(o *options, rec *recording) (*freq.Axis, error) {
	axis, err := freq.New(o.start, o.step, rec.bins(), "Power spectrum ("+o.units+")")
	if err != nil {
		return nil, err
	}
	for e, tr := range rec.traces() {
		if err := axis.AddTrace(tr); err != nil {
			return nil, fmt.Errorf("electrode %s: %w", rec.labels[e], err)
		}
	}
	return axis, nil
}

func buildInterpolator(o *options, axis *freq.Axis, rec *recording) (*topo.Interpolator, error) {
	if o.band == "" {
		return topo.NewFromMatrix(rec.labels, rec.values, o.start, o.step,
			topo.WithName(fmt.Sprintf("%g Hz", o.freq)),
			topo.WithUnits(o.units))
	}

	band, ok := freq.LookupBand(axis.Bands(), o.band)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errBand, o.band)
	}
	m, err := frequency.BandMatrix(axis.Domain(), rec.traces(), []freq.Band{band}, o.relative)
	if err != nil {
		return nil, err
	}

	name, units := band.Name+" power", o.units
	if o.relative {
		name, units = "Relative "+strings.ToLower(band.Name)+" power", "fraction"
	}
	return topo.New(rec.labels, m, o.start, o.step, topo.WithName(name), topo.WithUnits(units))
}

func write(o *options, axis *freq.Axis, ip *topo.Interpolator, grid *topo.Grid, labels []string) ([]string, error) {
	if o.format == "html" {
		path := o.out + ".html"
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create output: %w", err)
		}
		if err := render.WriteHTML(f, render.SpectrumChart(axis, labels), render.TopomapChart(grid, ip)); err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("close output: %w", err)
		}
		return []string{path}, nil
	}

	spectrum, err := render.Spectrum(axis, labels)
	if err != nil {
		return nil, err
	}
	spectrumPath := o.out + "-spectrum.png"
	if err := render.SavePNG(spectrum, render.SpectrumWidth, render.SpectrumHeight, spectrumPath); err != nil {
		return nil, err
	}

	topomap, err := render.Topomap(grid, ip)
	if err != nil {
		return nil, err
	}
	topomapPath := o.out + "-topomap.png"
	if err := render.SavePNG(topomap, render.TopomapSize, render.TopomapSize, topomapPath); err != nil {
		return nil, err
	}
	return []string{spectrumPath, topomapPath}, nil
}
