package progress

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Renderer is the display half of a Tracker. The real renderer draws a
// terminal progress bar; tests substitute a no-op.
type Renderer interface {
	Advance(n int64)
	Finish()
	Abandon()
}

// Tracker counts bytes moved during one upload and drives a Renderer.
// The counter is atomic: the transfer loop writes it while the bar's
// redraw timer reads it.
type Tracker struct {
	total       int64
	transferred atomic.Int64
	renderer    Renderer
}

// NewTracker creates a tracker rendering to stderr. A total of 0 selects
// indeterminate (spinner) mode.
func NewTracker(total int64, label string) *Tracker {
	return &Tracker{
		total:    total,
		renderer: newBarRenderer(total, label),
	}
}

// NewTrackerWithRenderer creates a tracker with a caller-supplied renderer.
func NewTrackerWithRenderer(total int64, r Renderer) *Tracker {
	return &Tracker{total: total, renderer: r}
}

// Discard creates a tracker that counts bytes but renders nothing.
func Discard(total int64) *Tracker {
	return NewTrackerWithRenderer(total, nopRenderer{})
}

// Advance adds n transferred bytes. Non-positive values are ignored so the
// counter stays monotonic.
func (t *Tracker) Advance(n int64) {
	if n <= 0 {
		return
	}
	t.transferred.Add(n)
	t.renderer.Advance(n)
}

// Transferred returns the bytes counted so far.
func (t *Tracker) Transferred() int64 {
	return t.transferred.Load()
}

// Total returns the expected byte total, 0 in indeterminate mode.
func (t *Tracker) Total() int64 {
	return t.total
}

// Finish freezes the display in its success state.
func (t *Tracker) Finish() {
	t.renderer.Finish()
}

// Abandon freezes the display with a failure marker.
func (t *Tracker) Abandon() {
	t.renderer.Abandon()
}

type nopRenderer struct{}

func (nopRenderer) Advance(int64) {}
func (nopRenderer) Finish()       {}
func (nopRenderer) Abandon()      {}

type barRenderer struct {
	bar   *progressbar.ProgressBar
	label string
	start time.Time
}

func newBarRenderer(total int64, label string) *barRenderer {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(fmt.Sprintf("Uploading %s", label)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100 * time.Millisecond),
		progressbar.OptionSpinnerType(14),
	}
	if total > 0 {
		opts = append(opts,
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetPredictTime(true),
		)
	} else {
		// progressbar treats -1 as an indeterminate spinner
		total = -1
	}
	return &barRenderer{
		bar:   progressbar.NewOptions64(total, opts...),
		label: label,
		start: time.Now(),
	}
}

func (r *barRenderer) Advance(n int64) {
	_ = r.bar.Add64(n)
}

func (r *barRenderer) Finish() {
	_ = r.bar.Finish()
	fmt.Fprintf(os.Stderr, "\n✅ %s uploaded successfully in %.1fs\n",
		r.label, time.Since(r.start).Seconds())
}

func (r *barRenderer) Abandon() {
	_ = r.bar.Exit()
	fmt.Fprintf(os.Stderr, "\n❌ Upload of %s was interrupted\n", r.label)
}
