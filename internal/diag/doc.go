// Package diag defines the diagnostic value types for the marker engine:
// severities, stable codes, spans, quick fixes, and the Bag that collects
// the diagnostics of a single scan pass.
package diag
