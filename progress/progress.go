// SPDX-License-Identifier: MIT
// Package progress: events, reporters and adapters.

package progress

import "strconv"

// Stage tags an Event.
type Stage uint8

const (
	// Started opens a run.
	Started Stage = iota
	// Advanced reports one more unit of work.
	Advanced
	// Finished closes a run.
	Finished
	// Note carries a diagnostic message, e.g. why a stage did not run.
	Note
)

// Unknown marks an open-ended total.
const Unknown = -1

// Event is one notification. Total is Unknown when the run has no fixed
// target.
type Event struct {
	Stage Stage
	Done  int
	Total int
	Msg   string
}

// String renders e for display.
func (e Event) String() string {
	switch e.Stage {
	case Started:
		return "Generating..."
	case Advanced:
		if e.Total == Unknown {
			return "Generated " + strconv.Itoa(e.Done)
		}
		return "Generated " + strconv.Itoa(e.Done) + "/" + strconv.Itoa(e.Total)
	case Finished:
		return " - Done!"
	default:
		return e.Msg
	}
}

// Reporter receives events. Implementations must not assume they are called
// for every unit of work.
type Reporter interface {
	Report(Event)
}

// Func adapts a function to Reporter.
type Func func(Event)

// Report calls f(e).
func (f Func) Report(e Event) { f(e) }

type nop struct{}

func (nop) Report(Event) {}

// Nop returns a Reporter that discards every event.
func Nop() Reporter { return nop{} }

type safe struct{ r Reporter }

// Report forwards e and swallows any panic from the listener.
func (s safe) Report(e Event) {
	defer func() { _ = recover() }()
	s.r.Report(e)
}

// Safe wraps r so that listener panics never reach the caller. A nil r
// yields Nop.
func Safe(r Reporter) Reporter {
	switch r.(type) {
	case nil:
		return nop{}
	case nop, safe:
		return r
	}
	return safe{r: r}
}

// Chan returns a Reporter that sends events on ch without blocking; events
// are dropped while ch is full.
func Chan(ch chan<- Event) Reporter {
	return Func(func(e Event) {
		select {
		case ch <- e:
		default:
		}
	})
}

// Multi fans every event out to each reporter in order.
func Multi(rs ...Reporter) Reporter {
	return Func(func(e Event) {
		for _, r := range rs {
			r.Report(e)
		}
	})
}
