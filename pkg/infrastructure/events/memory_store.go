package events

// InMemoryEventStore keeps event streams in memory, in append order. The
// simulation is single-threaded, so the store does no locking.
type InMemoryEventStore struct {
	streams map[string][]Event
	all     []Event
}

// NewInMemoryEventStore creates an empty store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[string][]Event),
	}
}

// Append adds an event to its stream, assigning the next stream version.
// Append on a nil store is a no-op, so callers can treat the store as
// optional.
func (s *InMemoryEventStore) Append(event Event) {
	if s == nil {
		return
	}

	streamID := event.StreamID()
	versioned := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}

	s.streams[streamID] = append(s.streams[streamID], versioned)
	s.all = append(s.all, versioned)
}

// Stream returns all events on a stream from the given version onward
// (versions start at 1).
func (s *InMemoryEventStore) Stream(streamID string, fromVersion int) []Event {
	if s == nil {
		return nil
	}
	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return nil
	}
	return stream[fromVersion-1:]
}

// All returns every recorded event in append order.
func (s *InMemoryEventStore) All() []Event {
	if s == nil {
		return nil
	}
	out := make([]Event, len(s.all))
	copy(out, s.all)
	return out
}
