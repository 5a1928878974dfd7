package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/iburimskiy/alga/internal/config"
)

type recordingTarget struct {
	fills      []color.Color
	rects      []image.Point
	composites []float64
	order      []string
}

func (r *recordingTarget) Fill(c color.Color) {
	r.fills = append(r.fills, c)
	r.order = append(r.order, "fill")
}

func (r *recordingTarget) FillRect(x, y, w, h float32, c color.Color) {
	if w != 1 || h != 1 {
		panic("points must be unit rectangles")
	}
	r.rects = append(r.rects, image.Pt(int(x), int(y)))
	if len(r.order) == 0 || r.order[len(r.order)-1] != "rect" {
		r.order = append(r.order, "rect")
	}
}

func (r *recordingTarget) Composite(aberration float64) {
	r.composites = append(r.composites, aberration)
	r.order = append(r.order, "composite")
}

func TestRenderOrderAndClock(t *testing.T) {
	params := config.Defaults()
	params.Count = 5
	p := NewPipeline(&params, config.Size)

	rec := &recordingTarget{}
	for i := 0; i < 3; i++ {
		if p.Frame() != uint64(i) {
			t.Fatalf("frame before render %d = %d", i, p.Frame())
		}
		p.Render(rec)
	}
	if p.Frame() != 3 {
		t.Errorf("frame = %d, want 3", p.Frame())
	}

	want := []string{"fill", "rect", "composite", "fill", "rect", "composite", "fill", "rect", "composite"}
	if len(rec.order) != len(want) {
		t.Fatalf("order = %v, want %v", rec.order, want)
	}
	for i := range want {
		if rec.order[i] != want[i] {
			t.Fatalf("order = %v, want %v", rec.order, want)
		}
	}
	if len(rec.rects) != 15 {
		t.Errorf("rects = %d, want 15", len(rec.rects))
	}
	for _, a := range rec.composites {
		if a != params.Aberration {
			t.Errorf("composite aberration = %v, want %v", a, params.Aberration)
		}
	}
	if rec.fills[0] != (color.RGBA{0x11, 0x11, 0x11, 0xff}) {
		t.Errorf("background = %v", rec.fills[0])
	}
}

func TestRenderReadsLiveParams(t *testing.T) {
	params := config.Defaults()
	params.Count = 2
	p := NewPipeline(&params, config.Size)
	rec := &recordingTarget{}
	p.Render(rec)
	params.Count = 7
	p.Render(rec)
	if len(rec.rects) != 9 {
		t.Errorf("rects = %d, want 9", len(rec.rects))
	}
}

func TestImageTargetScenario(t *testing.T) {
	params := config.Defaults()
	params.Count = 3
	params.Speed = 0
	params.Aberration = 0
	params.Color = config.Hex(0xff8000)

	p := NewPipeline(&params, config.Size)
	target := NewImageTarget(config.Size, config.Size)
	p.Render(target)

	// Point 0 sits at (186, 0) from the center.
	if got := target.Frame.RGBAAt(486, 300); got != (color.RGBA{0xff, 0x80, 0x00, 0xff}) {
		t.Errorf("point 0 pixel = %v", got)
	}
	if got := target.Frame.RGBAAt(10, 10); got != (color.RGBA{0x11, 0x11, 0x11, 0xff}) {
		t.Errorf("background pixel = %v", got)
	}
}

func TestImageTargetSinglePoint(t *testing.T) {
	params := config.Defaults()
	params.Count = 1
	params.Aberration = 0

	p := NewPipeline(&params, config.Size)
	target := NewImageTarget(config.Size, config.Size)
	p.Render(target)

	bg := color.RGBA{0x11, 0x11, 0x11, 0xff}
	lit := 0
	for y := 0; y < config.Size; y++ {
		for x := 0; x < config.Size; x++ {
			if target.Frame.RGBAAt(x, y) != bg {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Errorf("lit pixels = %d, want 1", lit)
	}
}

func TestImageTargetClearsEachFrame(t *testing.T) {
	params := config.Defaults()
	params.Count = 50
	params.Speed = 1e-3
	params.Aberration = 0

	p := NewPipeline(&params, config.Size)
	target := NewImageTarget(config.Size, config.Size)
	p.Render(target)
	p.Render(target)

	params.Count = 1
	p.Render(target)

	bg := color.RGBA{0x11, 0x11, 0x11, 0xff}
	lit := 0
	for i := 0; i < len(target.Scene.Pix); i += 4 {
		c := color.RGBA{target.Scene.Pix[i], target.Scene.Pix[i+1], target.Scene.Pix[i+2], target.Scene.Pix[i+3]}
		if c != bg {
			lit++
		}
	}
	if lit != 1 {
		t.Errorf("lit pixels after clear = %d, want 1", lit)
	}
}

func TestImageTargetMaxCount(t *testing.T) {
	params := config.Defaults()
	params.Count = 20000

	p := NewPipeline(&params, config.Size)
	target := NewImageTarget(config.Size, config.Size)
	p.Render(target)
	if p.Frame() != 1 {
		t.Errorf("frame = %d, want 1", p.Frame())
	}
}

func TestFillRectOutOfBounds(t *testing.T) {
	target := NewImageTarget(4, 4)
	target.Fill(color.Black)
	target.FillRect(-10, -10, 1, 1, color.White)
	target.FillRect(100, 2, 1, 1, color.White)
	for i := 0; i < len(target.Scene.Pix); i += 4 {
		if target.Scene.Pix[i] != 0 {
			t.Fatal("out-of-bounds rectangle touched the surface")
		}
	}
}

func TestPixelEdge(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{0, 0},
		{0.5, 0},
		{0.51, 1},
		{486, 486},
		{-0.4, 0},
		{-0.6, -1},
	}
	for _, tt := range tests {
		if got := pixelEdge(tt.in); got != tt.want {
			t.Errorf("pixelEdge(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
