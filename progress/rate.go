package progress

import (
	"time"

	"github.com/ef-ds/deque"
)

const rateWindow = 10

type sample struct {
	at        time.Time
	iteration int
}

// rate keeps the last rateWindow samples and estimates iterations per second
// over that window.
type rate struct {
	samples *deque.Deque
}

func newRate() *rate {
	return &rate{samples: deque.New()}
}

func (r *rate) reset() {
	r.samples = deque.New()
}

func (r *rate) add(at time.Time, iteration int) {
	r.samples.PushBack(sample{at: at, iteration: iteration})
	for r.samples.Len() > rateWindow {
		r.samples.PopFront()
	}
}

// perSecond returns false until two samples at distinct instants exist
func (r *rate) perSecond() (float64, bool) {
	if r.samples.Len() < 2 {
		return 0, false
	}
	f, _ := r.samples.Front()
	l, _ := r.samples.Back()
	first, last := f.(sample), l.(sample)
	elapsed := last.at.Sub(first.at).Seconds()
	done := last.iteration - first.iteration
	if elapsed <= 0 || done <= 0 {
		return 0, false
	}

	return float64(done) / elapsed, true
}

// remaining estimates the time needed for left more iterations
func (r *rate) remaining(left int) (time.Duration, bool) {
	perSecond, ok := r.perSecond()
	if !ok {
		return 0, false
	}

	return time.Duration(float64(left) / perSecond * float64(time.Second)), true
}
