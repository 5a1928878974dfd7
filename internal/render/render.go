// Package render drives one frame of the sketch: background, point cloud and
// the post pass, on any Target.
package render

import (
	"image/color"

	"github.com/iburimskiy/alga/internal/config"
	"github.com/iburimskiy/alga/internal/pattern"
)

// Surface is something points can be rasterized into.
type Surface interface {
	Fill(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
}

// Target is a Surface with a post-processing stage. Composite runs after all
// points of a frame have been drawn.
type Target interface {
	Surface
	Composite(aberration float64)
}

// FrameClock counts rendered frames. It only moves forward.
type FrameClock struct {
	frame uint64
}

func (c *FrameClock) Frame() uint64 { return c.frame }

func (c *FrameClock) Advance() { c.frame++ }

// Pipeline renders the parameters it was built with. The caller owns params
// and may change them between frames.
type Pipeline struct {
	params *config.Params
	clock  FrameClock
	size   int
}

func NewPipeline(params *config.Params, size int) *Pipeline {
	return &Pipeline{params: params, size: size}
}

func (p *Pipeline) Frame() uint64 { return p.clock.Frame() }

func (p *Pipeline) Params() *config.Params { return p.params }

// Render draws the current frame into t and advances the clock by one.
func (p *Pipeline) Render(t Target) {
	params := *p.params
	center := float64(p.size) / 2

	t.Fill(config.Hex(config.Background).RGBA())

	c := params.Color.RGBA()
	for _, pt := range pattern.Points(p.clock.Frame(), params) {
		t.FillRect(float32(center+pt.X), float32(center+pt.Y), 1, 1, c)
	}

	t.Composite(params.Aberration)
	p.clock.Advance()
}
