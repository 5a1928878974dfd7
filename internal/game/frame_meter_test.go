package game

import (
	"testing"
	"time"
)

func TestFrameMeterTick(t *testing.T) {
	m := newFrameMeter(4)
	start := time.Unix(1000, 0)

	m.tick(start)
	if got := m.snapshot(10); len(got) != 0 {
		t.Fatalf("first tick recorded %v", got)
	}

	m.tick(start.Add(time.Second / 50))
	m.tick(start.Add(time.Second/50 + time.Second/25))
	got := m.snapshot(10)
	if len(got) != 2 || got[0] != 50 || got[1] != 25 {
		t.Errorf("snapshot = %v, want [50 25]", got)
	}
	if m.current() != 25 {
		t.Errorf("current = %v, want 25", m.current())
	}
}

func TestFrameMeterIgnoresNonPositiveDelta(t *testing.T) {
	m := newFrameMeter(4)
	now := time.Unix(1000, 0)
	m.tick(now)
	m.tick(now)
	if got := m.snapshot(4); len(got) != 0 {
		t.Errorf("zero delta recorded %v", got)
	}
}

func TestFrameMeterWraps(t *testing.T) {
	m := newFrameMeter(3)
	for i := 1; i <= 5; i++ {
		m.record(float64(i))
	}
	tests := []struct {
		n    int
		want []float64
	}{
		{1, []float64{5}},
		{2, []float64{4, 5}},
		{3, []float64{3, 4, 5}},
		{10, []float64{3, 4, 5}},
	}
	for _, tt := range tests {
		got := m.snapshot(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("snapshot(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("snapshot(%d) = %v, want %v", tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestFrameMeterEmpty(t *testing.T) {
	m := newFrameMeter(8)
	if m.current() != 0 {
		t.Errorf("current = %v, want 0", m.current())
	}
}

func TestWheelLinesCarriesFractions(t *testing.T) {
	var w wheelLines
	tests := []struct {
		dy   float64
		want int
	}{
		{0.4, 0},
		{0.4, 0},
		{0.4, 1},
		{3, 3},
		{-0.5, 0},
		{-0.5, 0},
		{-0.5, -1},
	}
	for i, tt := range tests {
		if got := w.add(tt.dy); got != tt.want {
			t.Errorf("step %d: add(%v) = %d, want %d", i, tt.dy, got, tt.want)
		}
	}
}
