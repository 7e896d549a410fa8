package scheduler

// EventType identifies a kind of scheduled event. Only one
// event of each type can be pending at a time.
type EventType int

const (
	// EIPending fires one cycle after an EI instruction, when
	// the interrupt master enable flag takes effect.
	EIPending EventType = iota
	// SerialBitTransfer fires when the next bit of a serial
	// transfer is shifted.
	SerialBitTransfer
	// CheatFrame fires once per frame, when GameShark codes are
	// written to RAM.
	CheatFrame

	eventTypes
)

func (e EventType) String() string {
	switch e {
	case EIPending:
		return "EIPending"
	case SerialBitTransfer:
		return "SerialBitTransfer"
	case CheatFrame:
		return "CheatFrame"
	}
	return "unknown"
}

type Event struct {
	cycle     uint64
	eventType EventType
	scheduled bool
	next      *Event
}

func (e *Event) Reset() {
	e.cycle = 0
	e.scheduled = false
	e.next = nil
}
