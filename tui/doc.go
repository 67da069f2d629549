// Package tui realizes the toolkit contract on bubbletea: forms are
// bubbletea-driven widget lists, dialogs are composited popup cards, and
// every committed edit is delivered to the connected sink by widget name.
package tui
