// Package frequency computes statistics of binned EEG spectra.
//
// Spectra are given as a power trace aligned with an explicit frequency
// domain, the same shape a plotdata/freq Axis holds. Band-level summaries
// ([BandPower], [RelativeBandPower], [BandMatrix]) turn per-electrode spectra
// into the per-electrode values a topographic map interpolates.
package frequency
