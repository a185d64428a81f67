// Package freq builds the frequency axis of an EEG spectrum plot.
//
// An [Axis] holds an evenly spaced frequency domain, the signal traces
// aligned with it, and an [Extent] that bounds everything added so far. A
// renderer reads the extent to pick axis scales without rescanning traces.
// The canonical EEG bands (Delta, Theta, Alpha, Beta) come with every axis
// and can be replaced with [WithBands].
//
// An Axis is owned by a single goroutine; AddTrace is not synchronized.
package freq
