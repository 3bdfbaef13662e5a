package driver

// Stage identifies where a file currently is in a directory run.
type Stage uint8

const (
	// StageQueued means the file is waiting for a worker.
	StageQueued Stage = iota
	// StageLexing means a worker is tokenizing the file.
	StageLexing
	// StageCached means the tokens came from the disk cache.
	StageCached
	// StageDone means the file finished cleanly.
	StageDone
	// StageFailed means the file could not be processed.
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageLexing:
		return "lexing"
	case StageCached:
		return "cached"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// Event is one progress notification from a directory run.
type Event struct {
	Path  string
	Stage Stage
	Err   error
}

// Sink receives progress events. Implementations must be safe for use from
// multiple workers.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel, dropping them when the
// channel is full so slow consumers never stall the workers.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}

type nopSink struct{}

func (nopSink) Send(Event) {}
