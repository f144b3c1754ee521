package engine

import (
	"math"
	"sync"

	"go.uber.org/zap"
)

const defaultMaxTasks = 100000

type task struct {
	fn  func()
	id  int64
	seq uint64
	due float64
}

// loop is a virtual-time task queue. Microtasks run before any timer; timers
// run in order of due time, then scheduling order. The clock jumps straight
// to the next due time, so a drain never sleeps.
type loop struct {
	micro    []*task
	timers   []*task
	maxTasks int
	nextID   int64
	seq      uint64
	now      float64
	mu       sync.Mutex
}

func newLoop(maxTasks int) *loop {
	if maxTasks <= 0 {
		maxTasks = defaultMaxTasks
	}
	return &loop{maxTasks: maxTasks}
}

func (l *loop) schedule(delay float64, fn func()) int64 {
	if math.IsNaN(delay) || delay < 0 {
		delay = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.seq++
	l.timers = append(l.timers, &task{fn: fn, id: l.nextID, seq: l.seq, due: l.now + delay})
	return l.nextID
}

func (l *loop) microtask(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.micro = append(l.micro, &task{fn: fn, seq: l.seq})
}

func (l *loop) cancel(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, t := range l.timers {
		if t.id == id {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}

func (l *loop) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.micro) + len(l.timers)
}

func (l *loop) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.micro = nil
	l.timers = nil
}

// next pops the next runnable task, advancing the virtual clock.
func (l *loop) next() *task {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.micro) > 0 {
		t := l.micro[0]
		l.micro = l.micro[1:]
		return t
	}
	if len(l.timers) == 0 {
		return nil
	}

	best := 0
	for i, t := range l.timers[1:] {
		b := l.timers[best]
		if t.due < b.due || (t.due == b.due && t.seq < b.seq) {
			best = i + 1
		}
	}
	t := l.timers[best]
	l.timers = append(l.timers[:best], l.timers[best+1:]...)
	if t.due > l.now {
		l.now = t.due
	}
	return t
}

func (l *loop) drain() int {
	n := 0
	for n < l.maxTasks {
		t := l.next()
		if t == nil {
			return n
		}
		t.fn()
		n++
	}
	Logger().Warn("task queue drain stopped at limit", zap.Int("limit", l.maxTasks), zap.Int("pending", l.len()))
	return n
}
