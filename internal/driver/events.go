package driver

import "time"

// Status captures progress state of one input.
type Status string

const (
	// StatusQueued indicates the input is waiting to be checked.
	StatusQueued Status = "queued"
	// StatusWorking indicates the input is being parsed.
	StatusWorking Status = "working"
	// StatusDone indicates the input parsed and round-tripped.
	StatusDone Status = "done"
	// StatusError indicates the input failed to parse or to round-trip.
	StatusError Status = "error"
)

// Event reports progress for one input.
type Event struct {
	Index   int
	Input   string
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Events arrive from worker
// goroutines, so implementations must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

type nopSink struct{}

func (nopSink) OnEvent(Event) {}
