package app

import "testing"

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(0.3, 1, func(float64) { order = append(order, 3) })
	s.After(0.1, 1, func(float64) { order = append(order, 1) })
	s.After(0.1, 1, func(float64) { order = append(order, 2) })
	s.After(0.5, 1, func(float64) { order = append(order, 5) })

	if n := s.Run(0.3, nil); n != 3 {
		t.Fatalf("ran: got=%d want=3", n)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order: %v", order)
	}
	if len(s.tasks) != 1 {
		t.Fatalf("pending: got=%d want=1", len(s.tasks))
	}
}

func TestSchedulerRunsTasksAddedDuringRun(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(1, 1, func(now float64) {
		calls++
		s.After(now, 1, func(float64) { calls++ })
		s.After(now+1, 1, func(float64) { calls++ })
	})

	s.Run(1, nil)
	if calls != 2 {
		t.Fatalf("calls: got=%d want=2", calls)
	}
}

func TestSchedulerDropsStaleGenerations(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(0.1, 1, func(float64) { calls++ })
	s.After(0.1, 2, func(float64) { calls++ })

	n := s.Run(1, func(gen uint64) bool { return gen == 2 })
	if n != 1 || calls != 1 {
		t.Fatalf("ran=%d calls=%d want 1 and 1", n, calls)
	}
	if len(s.tasks) != 0 {
		t.Fatalf("stale task must be discarded, pending=%d", len(s.tasks))
	}
}
