// Package ui provides the color themes and lipgloss styles of the
// exactsum CLI. Themes honor --no-color and the NO_COLOR environment
// variable.
package ui
