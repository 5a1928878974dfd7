package game

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// fpsColor shades from red at 0 fps to green at target fps and above.
func fpsColor(fps, target float64) color.Color {
	hue := 120 * clamp01(fps/target)
	return colorful.Hsv(hue, 0.7, 0.9)
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

// wheelLines turns wheel deltas into whole monitor lines. Fractions carry
// over to the next tick so slow trackpad scrolling still moves the view.
type wheelLines struct {
	pending float64
}

func (w *wheelLines) add(dy float64) int {
	w.pending += dy
	n := int(w.pending)
	w.pending -= float64(n)
	return n
}

// formatFPS formats a frame rate as "59.9 fps".
func formatFPS(fps float64) string {
	return fmt.Sprintf("%.1f fps", fps)
}

func maxOf(vs []float64, floor float64) float64 {
	m := floor
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}
