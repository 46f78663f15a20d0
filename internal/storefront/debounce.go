package storefront

import (
	"sync"
	"time"
)

// Debouncer runs the most recently scheduled task once the delay has
// passed without another Schedule call
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	task  func()
	seq   uint64
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule cancels the pending task and restarts the delay for task
func (d *Debouncer) Schedule(task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.task = task
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.task == nil {
		d.mu.Unlock()
		return
	}
	task := d.take()
	d.mu.Unlock()
	task()
}

// Flush runs the pending task now, on the caller's goroutine
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.task == nil {
		d.mu.Unlock()
		return false
	}
	task := d.take()
	d.mu.Unlock()
	task()
	return true
}

// Stop cancels the pending task
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.take() != nil
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.task != nil
}

// take clears the pending state; d.mu must be held
func (d *Debouncer) take() func() {
	task := d.task
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.task = nil
	d.seq++
	return task
}
