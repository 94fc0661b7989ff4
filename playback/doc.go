// Package playback owns the lifecycle of one loaded simulation run and
// derives the currently displayed frame.
//
// This package handles:
// - Loading result documents and discarding stale in-flight loads
// - Advancing the current step on a fixed cadence while playing
// - Clamping step selection and looping playback past the last frame
// - Exposing a read-only view to the presentation layer
//
// The Controller is the only writer of playback state; the presentation
// layer reads views and issues Play/Pause/SetStep back to the controller.
package playback
