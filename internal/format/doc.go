// Package format holds presentation helpers shared by the CLI: duration,
// float and ULP rendering, and progress bars with completion estimates.
package format
