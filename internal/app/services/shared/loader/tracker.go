package loader

import "sync"

// Tracker counts in-flight upstream calls so the status endpoint can report
// whether the gateway is busy. Hide never drives the counter below zero, even
// when calls are released out of order.
type Tracker struct {
	mu    sync.Mutex
	count int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
}

func (t *Tracker) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.count > 0 {
		t.count--
	}
}

func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *Tracker) Visible() bool {
	return t.Count() > 0
}
