package scheduler

import "testing"

type counter struct {
	ticks int
}

func (c *counter) Tick() {
	c.ticks++
}

func TestScheduler_Tick(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	s.AddTicker(c)

	s.Tick(4)
	s.Tick(1)

	if s.Cycle() != 5 {
		t.Errorf("expected 5 cycles, got %d", s.Cycle())
	}
	if c.ticks != 5 {
		t.Errorf("expected ticker to be clocked 5 times, got %d", c.ticks)
	}
}

func TestScheduler_Events(t *testing.T) {
	t.Run("fires when due", func(t *testing.T) {
		s := NewScheduler()
		fired := uint64(0)
		s.RegisterEvent(EIPending, func() {
			fired = s.Cycle()
		})

		s.ScheduleEvent(EIPending, 2)
		s.Tick(1)
		if fired != 0 {
			t.Fatalf("expected event to be pending, fired at %d", fired)
		}
		if !s.Pending(EIPending) {
			t.Errorf("expected event to be pending")
		}
		s.Tick(1)
		if fired != 2 {
			t.Errorf("expected event to fire at cycle 2, got %d", fired)
		}
		if s.Pending(EIPending) {
			t.Errorf("expected event to be removed after firing")
		}
	})
	t.Run("deschedule", func(t *testing.T) {
		s := NewScheduler()
		fired := false
		s.RegisterEvent(EIPending, func() {
			fired = true
		})

		s.ScheduleEvent(EIPending, 1)
		s.DescheduleEvent(EIPending)
		s.Tick(10)
		if fired {
			t.Errorf("expected descheduled event not to fire")
		}
		if s.String() != "" {
			t.Errorf("expected empty event list, got %s", s)
		}
	})
	t.Run("reschedule", func(t *testing.T) {
		s := NewScheduler()
		count := 0
		s.RegisterEvent(EIPending, func() {
			count++
		})

		s.ScheduleEvent(EIPending, 1)
		s.ScheduleEvent(EIPending, 3)
		s.Tick(2)
		if count != 0 {
			t.Errorf("expected rescheduled event to be pending, fired %d times", count)
		}
		s.Tick(1)
		if count != 1 {
			t.Errorf("expected event to fire once, fired %d times", count)
		}
	})
}
