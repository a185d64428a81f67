// Package scratch pools the per-call working buffers of hot evaluation loops,
// so callers can evaluate concurrently without sharing mutable state and
// without allocating on every call.
package scratch
