// internal/app/scheduler.go
package app

// task — отложенный вызов на игровых часах, привязанный к поколению сессии.
type task struct {
	due        float64
	seq        uint64
	generation uint64
	fn         func(now float64)
}

// Scheduler хранит отложенные вызовы (заряд, залпы, моргание) и исполняет
// их из игрового цикла. Отмены нет: устаревший вызов отбрасывается при
// исполнении, если valid отвергает его поколение.
type Scheduler struct {
	tasks []task
	seq   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make([]task, 0, 16)}
}

// After ставит fn на момент due игрового времени.
func (s *Scheduler) After(due float64, generation uint64, fn func(now float64)) {
	s.seq++
	s.tasks = append(s.tasks, task{due: due, seq: s.seq, generation: generation, fn: fn})
}

// Run исполняет все вызовы со сроком не позже now, от ранних к поздним.
// Вызовы, добавленные во время Run и уже созревшие, исполняются тут же.
// Возвращает число исполненных (не отброшенных) вызовов.
func (s *Scheduler) Run(now float64, valid func(generation uint64) bool) int {
	ran := 0
	for {
		idx := s.next(now)
		if idx < 0 {
			return ran
		}
		t := s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		if valid != nil && !valid(t.generation) {
			continue
		}
		t.fn(now)
		ran++
	}
}

func (s *Scheduler) next(now float64) int {
	idx := -1
	for i, t := range s.tasks {
		if t.due > now {
			continue
		}
		if idx < 0 || t.due < s.tasks[idx].due || (t.due == s.tasks[idx].due && t.seq < s.tasks[idx].seq) {
			idx = i
		}
	}
	return idx
}
