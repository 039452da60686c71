// Package progress carries incremental, fire-and-forget notifications from a
// long-running stage to whoever is watching.
//
// A Reporter never influences the computation: Safe recovers panics raised by
// a listener, Chan drops events instead of blocking on a full channel, and Nop
// discards everything. Bar renders a one-line text progress bar.
//
// Event.String yields the human-readable strings shown to users:
// "Generating...", "Generated 3/10", " - Done!" or a diagnostic note.
package progress
