package ebrake

// window is a fixed-capacity ring buffer of boolean outcome samples with
// incrementally maintained failure and success counters. The counters
// always satisfy failures+successes == count.
type window struct {
	buf       []bool
	pos       int // next write position
	count     int // samples currently held, up to len(buf)
	failures  int
	successes int
}

func newWindow(size int) *window {
	if size < 0 {
		size = 0
	}
	return &window{buf: make([]bool, size)}
}

// record slides the window forward by one sample. At capacity the oldest
// sample is evicted and its counter contribution removed before the new
// sample's contribution is added.
func (w *window) record(ok bool) {
	if len(w.buf) == 0 {
		return
	}

	if w.count == len(w.buf) {
		if w.buf[w.pos] {
			w.successes--
		} else {
			w.failures--
		}
	} else {
		w.count++
	}

	w.buf[w.pos] = ok
	if ok {
		w.successes++
	} else {
		w.failures++
	}

	w.pos = (w.pos + 1) % len(w.buf)
}

// full reports whether the window holds its full capacity of samples.
// A zero-capacity window is trivially full but holds no failures.
func (w *window) full() bool {
	return w.count == len(w.buf)
}

func (w *window) failureRate() float64 {
	if w.count == 0 {
		return 0
	}
	return float64(w.failures) / float64(w.count)
}

func (w *window) reset() {
	w.pos = 0
	w.count = 0
	w.failures = 0
	w.successes = 0
}
