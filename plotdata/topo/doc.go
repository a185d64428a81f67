// Package topo estimates scalp-surface intensity for topographic EEG maps.
//
// An [Interpolator] holds one value per electrode and frequency bin and
// evaluates any 2D point by inverse squared distance weighting over the k
// electrodes nearest to it. Electrodes are placed on [Layout1020], a fixed
// projection of the 19-channel 10-20 montage: the i-th label of an
// interpolator names the i-th layout position.
//
// Results are normalized against the interpolator's extent so that the
// extent minimum maps to -1 and the maximum to +1. Degenerate input is not
// masked: an empty contributor set or a zero-width extent yields NaN or ±Inf.
// [Interpolator.InterpolateStrict] reports these cases as errors instead.
//
// Working buffers are pooled per call, so Interpolate is safe to call from
// multiple goroutines on one Interpolator as long as SetExtent is not called
// concurrently.
package topo
