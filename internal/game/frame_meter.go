package game

import "time"

// frameMeter records the frame rate of the last N display ticks in a ring
// buffer so the panel can draw a history graph.
type frameMeter struct {
	buffer    []float64
	nextIndex int
	filled    int
	last      time.Time
}

func newFrameMeter(ringSize int) *frameMeter {
	return &frameMeter{
		buffer: make([]float64, ringSize),
	}
}

// tick marks the start of a frame. The first tick only sets the reference.
func (m *frameMeter) tick(now time.Time) {
	if !m.last.IsZero() {
		if dt := now.Sub(m.last); dt > 0 {
			m.record(float64(time.Second) / float64(dt))
		}
	}
	m.last = now
}

func (m *frameMeter) record(fps float64) {
	m.buffer[m.nextIndex] = fps
	m.nextIndex++
	if m.nextIndex >= len(m.buffer) {
		m.nextIndex = 0
	}
	if m.filled < len(m.buffer) {
		m.filled++
	}
}

// snapshot returns up to the last n samples, most recent last.
func (m *frameMeter) snapshot(n int) []float64 {
	n = min(n, m.filled)
	size := len(m.buffer)
	first := m.nextIndex - n + size
	out := make([]float64, n)
	for i := range out {
		out[i] = m.buffer[(first+i)%size]
	}
	return out
}

// current is the most recent sample, or 0.
func (m *frameMeter) current() float64 {
	s := m.snapshot(1)
	if len(s) == 0 {
		return 0
	}
	return s[0]
}
