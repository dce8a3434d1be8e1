package progress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureRenderer records what the tracker pushes to the display.
type captureRenderer struct {
	mu        sync.Mutex
	advanced  int64
	finished  bool
	abandoned bool
}

func (r *captureRenderer) Advance(n int64) {
	r.mu.Lock()
	r.advanced += n
	r.mu.Unlock()
}
func (r *captureRenderer) Finish()  { r.finished = true }
func (r *captureRenderer) Abandon() { r.abandoned = true }

func TestTracker_AdvanceAccumulates(t *testing.T) {
	r := &captureRenderer{}
	tracker := NewTrackerWithRenderer(100, r)

	tracker.Advance(40)
	tracker.Advance(60)

	assert.Equal(t, int64(100), tracker.Transferred())
	assert.Equal(t, int64(100), tracker.Total())
	assert.Equal(t, int64(100), r.advanced)
}

func TestTracker_NonPositiveAdvanceIgnored(t *testing.T) {
	tracker := Discard(10)

	tracker.Advance(5)
	tracker.Advance(0)
	tracker.Advance(-3)

	assert.Equal(t, int64(5), tracker.Transferred(), "counter must stay monotonic")
}

func TestTracker_IndeterminateMode(t *testing.T) {
	tracker := Discard(0)
	tracker.Advance(123)

	assert.Equal(t, int64(0), tracker.Total())
	assert.Equal(t, int64(123), tracker.Transferred())
}

func TestTracker_ConcurrentAdvance(t *testing.T) {
	tracker := Discard(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				tracker.Advance(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8000), tracker.Transferred())
}

func TestTracker_FinishAndAbandonReachRenderer(t *testing.T) {
	r := &captureRenderer{}
	tracker := NewTrackerWithRenderer(1, r)

	tracker.Finish()
	assert.True(t, r.finished)

	r2 := &captureRenderer{}
	NewTrackerWithRenderer(1, r2).Abandon()
	assert.True(t, r2.abandoned)
}
