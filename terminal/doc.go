// Package terminal provides the line-oriented terminal capability the
// scroll renderer draws through.
//
// The real implementation wraps a tcell screen (alternate buffer, raw
// mode, diffed repaints) and layers a tracked write cursor on top so
// the renderer can position, write, and clear by row. NewSim builds
// the same implementation over a tcell simulation screen for tests.
// EmergencyReset writes raw ANSI restore sequences for panic paths
// where the screen may already be unusable.
package terminal
