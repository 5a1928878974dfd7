package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/iburimskiy/alga/internal/shader"
)

// ImageTarget renders on the CPU. Points land in Scene; Composite writes the
// post-processed result into Frame.
type ImageTarget struct {
	Scene *image.RGBA
	Frame *image.RGBA
}

func NewImageTarget(width, height int) *ImageTarget {
	r := image.Rect(0, 0, width, height)
	return &ImageTarget{
		Scene: image.NewRGBA(r),
		Frame: image.NewRGBA(r),
	}
}

func (t *ImageTarget) Fill(c color.Color) {
	draw.Draw(t.Scene, t.Scene.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills every pixel whose center lies inside the rectangle.
func (t *ImageTarget) FillRect(x, y, w, h float32, c color.Color) {
	r := image.Rect(
		pixelEdge(x), pixelEdge(y),
		pixelEdge(x+w), pixelEdge(y+h),
	).Intersect(t.Scene.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(t.Scene, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (t *ImageTarget) Composite(aberration float64) {
	shader.Apply(t.Frame, t.Scene, aberration)
}

// pixelEdge returns the first pixel whose center is at or after v.
func pixelEdge(v float32) int {
	return int(math.Ceil(float64(v) - 0.5))
}
