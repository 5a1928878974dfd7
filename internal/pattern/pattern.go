// Package pattern computes the point cloud drawn each frame.
package pattern

import (
	"iter"
	"math"

	"github.com/iburimskiy/alga/internal/config"
)

// Point is an offset from the canvas center.
type Point struct {
	X, Y float64
}

// Remap linearly maps v from [s1, e1] onto [s2, e2]. The end of the source
// range always lands exactly on e2.
func Remap(v, s1, e1, s2, e2 float64) float64 {
	if v == e1 {
		return e2
	}
	return s2 + ((v-s1)/(e1-s1))*(e2-s2)
}

// At computes point i of p.Count at the given frame.
func At(i int, frame uint64, p config.Params) Point {
	pos := float64(i) / float64(p.Count)
	angle := pos * 2 * math.Pi
	t := float64(frame) * p.Speed

	main := math.Sin((t + pos) * p.MainFrequency * math.Pi)
	radius := Remap(main, -1, 1, p.Size.Min, p.Size.Max)

	dx := math.Cos(angle) * radius
	dy := math.Sin(angle) * radius

	dx += math.Cos(angle*p.SubFrequency) * radius * p.SubLength
	dy += math.Sin(angle*p.SubFrequency) * radius * p.SubLength

	return Point{X: dx, Y: dy}
}

// Points yields the p.Count points of a frame in order. The sequence is
// computed lazily and can be ranged over any number of times.
//
// p must satisfy config.Params.Validate; nothing is clamped here.
func Points(frame uint64, p config.Params) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := 0; i < p.Count; i++ {
			if !yield(i, At(i, frame, p)) {
				return
			}
		}
	}
}

// Generate materializes Points.
func Generate(frame uint64, p config.Params) []Point {
	out := make([]Point, 0, max(p.Count, 0))
	for _, pt := range Points(frame, p) {
		out = append(out, pt)
	}
	return out
}
