package storefront

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerRunsLastTask(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var last atomic.Int32
	var runs atomic.Int32
	for i := int32(1); i <= 5; i++ {
		d.Schedule(func() {
			last.Store(i)
			runs.Add(1)
		})
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(5), last.Load())
	assert.False(t, d.Pending())

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestDebouncerFlushAndStop(t *testing.T) {
	d := NewDebouncer(time.Hour)
	var runs atomic.Int32

	d.Schedule(func() { runs.Add(1) })
	assert.True(t, d.Pending())
	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), runs.Load())
	assert.False(t, d.Flush())

	d.Schedule(func() { runs.Add(1) })
	assert.True(t, d.Stop())
	assert.False(t, d.Stop())
	assert.False(t, d.Flush())
	assert.Equal(t, int32(1), runs.Load())
}
