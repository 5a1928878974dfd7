package shader

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

func TestApplyZeroIsIdentity(t *testing.T) {
	for _, size := range []image.Point{{600, 600}, {31, 17}, {1, 1}} {
		src := gradient(size.X, size.Y)
		dst := image.NewRGBA(src.Bounds())
		Apply(dst, src, 0)
		if !bytes.Equal(dst.Pix, src.Pix) {
			t.Errorf("%v: aberration 0 changed pixels", size)
		}
	}
}

func TestApplyOpaque(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	dst := image.NewRGBA(src.Bounds())
	Apply(dst, src, 0.02)
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0xff {
			t.Fatalf("alpha at %d = %d, want 255", i, dst.Pix[i])
		}
	}
}

func TestApplyKeepsRedInPlace(t *testing.T) {
	src := gradient(64, 64)
	dst := image.NewRGBA(src.Bounds())
	Apply(dst, src, 0.04)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if dst.RGBAAt(x, y).R != src.RGBAAt(x, y).R {
				t.Fatalf("red moved at (%d, %d)", x, y)
			}
		}
	}
}

func TestFactors(t *testing.T) {
	r, g, b := Factors(0.04)
	if r != 1 || g != 0.96 || b != 1.08 {
		t.Errorf("Factors(0.04) = %v %v %v", r, g, b)
	}
	r, g, b = Factors(0)
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("Factors(0) = %v %v %v", r, g, b)
	}
}

func TestOppositeDisplacement(t *testing.T) {
	bounds := image.Rect(0, 0, 600, 600)
	x, y := 100, 300

	_, gPos, bPos := Factors(0.04)
	_, gNeg, bNeg := Factors(-0.04)

	tests := []struct {
		name     string
		pos, neg float64
	}{
		{"green", gPos, gNeg},
		{"blue", bPos, bNeg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := SampleCoord(x, y, tt.pos, bounds)
			b := SampleCoord(x, y, tt.neg, bounds)
			da := a.X - x
			db := b.X - x
			if da == 0 || db == 0 {
				t.Fatalf("no displacement: %v %v", a, b)
			}
			if (da > 0) == (db > 0) {
				t.Errorf("displacements %d and %d point the same way", da, db)
			}
		})
	}

	// Green and blue also move in opposite directions for a single sign.
	g := SampleCoord(x, y, gPos, bounds)
	b := SampleCoord(x, y, bPos, bounds)
	if (g.X-x > 0) == (b.X-x > 0) {
		t.Errorf("green %v and blue %v displaced the same way", g, b)
	}
}

func TestSampleCoordClamped(t *testing.T) {
	bounds := image.Rect(0, 0, 600, 600)
	p := SampleCoord(0, 0, 1.08, bounds)
	if p != (image.Point{}) {
		t.Errorf("corner sample = %v, want (0,0)", p)
	}
	p = SampleCoord(599, 599, 1.08, bounds)
	if p != image.Pt(599, 599) {
		t.Errorf("corner sample = %v, want (599,599)", p)
	}
	if c := SampleCoord(300, 300, 0.5, bounds); c != image.Pt(300, 300) {
		t.Errorf("center moved to %v", c)
	}
}

func TestApplyGreenChannelShift(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 600))
	// Single bright green column at x = 108.
	for y := 0; y < 600; y++ {
		src.SetRGBA(108, y, color.RGBA{G: 255, A: 255})
	}
	dst := image.NewRGBA(src.Bounds())
	Apply(dst, src, 0.04)
	// Destination x=100 samples green at (100.5-300)*0.96+300 = 108.48.
	if g := dst.RGBAAt(100, 300).G; g != 255 {
		t.Errorf("green at x=100 = %d, want 255", g)
	}
	if g := dst.RGBAAt(108, 300).G; g != 0 {
		t.Errorf("green at x=108 = %d, want 0", g)
	}
}

func TestUniforms(t *testing.T) {
	u := Uniforms(0.015, 600, 600)
	if u["Aberration"] != float32(0.015) {
		t.Errorf("Aberration = %v", u["Aberration"])
	}
	s, ok := u["ScreenSize"].([]float32)
	if !ok || len(s) != 2 || s[0] != 600 || s[1] != 600 {
		t.Errorf("ScreenSize = %v", u["ScreenSize"])
	}
}

func TestSourceEmbedded(t *testing.T) {
	if !bytes.Contains(Source, []byte("func Fragment")) {
		t.Error("Kage source missing Fragment entry point")
	}
	if !bytes.Contains(Source, []byte("var Aberration float")) {
		t.Error("Kage source missing Aberration uniform")
	}
}
