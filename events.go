package motion

// EventKind identifies a timeline lifecycle transition.
type EventKind uint8

const (
	EventStarted   EventKind = iota // a run began at directive 0
	EventCompleted                  // a run went past its last directive
	EventLooped                     // a repeating timeline began another run
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	case EventLooped:
		return "looped"
	}
	return "unknown"
}

// TimelineEvent carries one lifecycle transition to an EventSink.
type TimelineEvent struct {
	Kind EventKind
	// Name is the timeline's name as set by Named; empty when unnamed.
	Name string
	// Cycle counts completed runs before this event: 0 for the first run,
	// 1 after the first loop, and so on.
	Cycle int
}

// EventSink is the interface for optional lifecycle observers, such as an ECS
// bridge. When set on a Timeline, every transition is forwarded to it. Clones
// made for Parallel and Then inherit their template's sink.
type EventSink interface {
	EmitTimelineEvent(event TimelineEvent)
}

// EventSinkFunc adapts a plain func to EventSink.
type EventSinkFunc func(event TimelineEvent)

// EmitTimelineEvent implements EventSink.
func (f EventSinkFunc) EmitTimelineEvent(event TimelineEvent) { f(event) }
