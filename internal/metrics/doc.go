// Package metrics records accumulation runs as Prometheus metrics and
// reads runtime memory statistics for the verbose report.
package metrics
