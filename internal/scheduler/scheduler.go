// Package scheduler provides the cycle clock that every bus access
// and internal wait advances, along with the components that consume
// elapsed cycles.
package scheduler

import (
	"fmt"
	"strings"
)

// Ticker is a component that is clocked once for every cycle unit
// that passes, such as the timer.
type Ticker interface {
	Tick()
}

// Scheduler is a monotonic cycle counter with a simple event scheduler
// that can be used to schedule events to be executed at a specific cycle.
//
// The scheduler is a linked list of events, sorted by the cycle at which
// they should be executed. When an event is scheduled, it is inserted into
// the list in the correct position, and when the scheduler is ticked, every
// event that is due is executed and removed from the list.
type Scheduler struct {
	cycles uint64
	root   *Event

	tickers       []Ticker
	eventHandlers [eventTypes]func()
	events        [eventTypes]*Event // only one event of each type can be scheduled at a time
}

// NewScheduler returns a new Scheduler, with the cycle counter at 0.
func NewScheduler() *Scheduler {
	s := &Scheduler{}

	// initialize the events with the number of event types
	// to avoid the cost of allocating a new event for each
	// scheduled event
	for i := range s.events {
		s.events[i] = &Event{eventType: EventType(i)}
	}

	return s
}

// Cycle returns the number of cycle units elapsed.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}

// AddTicker attaches a component that is clocked once per cycle unit,
// in the order the tickers were added.
func (s *Scheduler) AddTicker(t Ticker) {
	s.tickers = append(s.tickers, t)
}

// RegisterEvent registers a function of the EventType to be called when
// the event is scheduled for execution.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func()) {
	s.eventHandlers[eventType] = fn
}

// Tick advances the scheduler by the given number of cycles. Every ticker
// is clocked once per cycle, and after each cycle any event that has
// become due is executed and removed from the list.
func (s *Scheduler) Tick(c uint64) {
	for ; c > 0; c-- {
		s.cycles++
		for _, t := range s.tickers {
			t.Tick()
		}

		for s.root != nil && s.root.cycle <= s.cycles {
			event := s.root
			s.root = event.next
			event.Reset()

			if fn := s.eventHandlers[event.eventType]; fn != nil {
				fn()
			}
		}
	}
}

// ScheduleEvent schedules an event to be executed the given number of
// cycles from now. If an event of the same type is already pending, it
// is rescheduled.
func (s *Scheduler) ScheduleEvent(eventType EventType, cycle uint64) {
	s.DescheduleEvent(eventType)

	this := s.events[eventType]
	this.cycle = s.cycles + cycle
	this.scheduled = true

	// find the first event that is due after this one
	var prev *Event
	event := s.root
	for event != nil && event.cycle <= this.cycle {
		prev = event
		event = event.next
	}

	this.next = event
	if prev == nil {
		s.root = this
	} else {
		prev.next = this
	}
}

// DescheduleEvent removes a pending event of the given type, if any.
func (s *Scheduler) DescheduleEvent(eventType EventType) {
	if !s.events[eventType].scheduled {
		return
	}

	var prev *Event
	for event := s.root; event != nil; event = event.next {
		if event.eventType == eventType {
			if prev == nil {
				s.root = event.next
			} else {
				prev.next = event.next
			}
			event.Reset()
			return
		}
		prev = event
	}
}

// Pending returns true if an event of the given type is scheduled.
func (s *Scheduler) Pending(eventType EventType) bool {
	return s.events[eventType].scheduled
}

// Reset clears the cycle counter and every pending event. Tickers and
// event handlers stay attached.
func (s *Scheduler) Reset() {
	s.cycles = 0
	s.root = nil
	for _, e := range s.events {
		e.Reset()
	}
}

func (s *Scheduler) String() string {
	var b strings.Builder
	for event := s.root; event != nil; event = event.next {
		fmt.Fprintf(&b, "%s:%d->", event.eventType, event.cycle)
	}
	return b.String()
}
