package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-eeg/plotdata/freq"
	"github.com/cwbudde/algo-eeg/stats/frequency"
)

// printStats writes one row of spectrum statistics per electrode, followed
// by the relative power of each band.
func printStats(w io.Writer, axis *freq.Axis, labels []string) error {
	bands := axis.Bands()
	domain := axis.Domain()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprint(tw, "Electrode\tPeak [Hz]\tCentroid [Hz]\tSEF95 [Hz]\tFlatness\tTotal"); err != nil {
		return fmt.Errorf("write stats header: %w", err)
	}
	for _, b := range bands {
		if _, err := fmt.Fprintf(tw, "\t%s [%%]", b.Name); err != nil {
			return fmt.Errorf("write stats header: %w", err)
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return fmt.Errorf("write stats header: %w", err)
	}

	for e, tr := range axis.Traces() {
		s := frequency.Calculate(domain, tr)
		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.4f\t%.4g",
			labels[e], s.PeakFreq, s.Centroid, s.Edge, s.Flatness, s.Total); err != nil {
			return fmt.Errorf("write stats row: %w", err)
		}
		for _, b := range bands {
			if _, err := fmt.Fprintf(tw, "\t%.1f", 100*frequency.RelativeBandPower(domain, tr, b)); err != nil {
				return fmt.Errorf("write stats row: %w", err)
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return fmt.Errorf("write stats row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush stats: %w", err)
	}
	return nil
}
