// Package orchestrator wires the preset → generator → layout → renderer
// pipeline behind a single entry point with dependency injection friendly
// options.
package orchestrator
