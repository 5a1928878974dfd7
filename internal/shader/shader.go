// Package shader holds the chromatic-aberration post pass: the Kage program
// run on the GPU and a software rendition over image.RGBA buffers.
//
// Both sample the red channel in place, green scaled about the center by
// (1 - aberration) and blue by (1 + 2*aberration).
package shader

import (
	_ "embed"
	"image"
	"math"
)

//go:embed aberration.kage
var Source []byte

// Channel scale factors relative to the surface center.
func Factors(aberration float64) (r, g, b float64) {
	return 1, 1 - aberration, 1 + 2*aberration
}

// Uniforms returns the uniform map for ebiten's DrawRectShaderOptions.
func Uniforms(aberration float64, width, height int) map[string]any {
	return map[string]any{
		"Aberration": float32(aberration),
		"ScreenSize": []float32{float32(width), float32(height)},
	}
}

// SampleCoord returns the source pixel read for destination pixel (x, y)
// when scaling by factor about the center of bounds. The result is clamped
// to bounds.
func SampleCoord(x, y int, factor float64, bounds image.Rectangle) image.Point {
	cx := float64(bounds.Min.X) + float64(bounds.Dx())/2
	cy := float64(bounds.Min.Y) + float64(bounds.Dy())/2
	px := (float64(x)+0.5-cx)*factor + cx
	py := (float64(y)+0.5-cy)*factor + cy
	sx := clampInt(int(math.Floor(px)), bounds.Min.X, bounds.Max.X-1)
	sy := clampInt(int(math.Floor(py)), bounds.Min.Y, bounds.Max.Y-1)
	return image.Pt(sx, sy)
}

// Apply writes the aberrated composite of src into dst. dst and src must have
// the same bounds and must not alias. The output is fully opaque.
func Apply(dst, src *image.RGBA, aberration float64) {
	b := src.Bounds()
	_, gf, bf := Factors(aberration)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ri := src.PixOffset(x, y)
			gp := SampleCoord(x, y, gf, b)
			bp := SampleCoord(x, y, bf, b)
			gi := src.PixOffset(gp.X, gp.Y)
			bi := src.PixOffset(bp.X, bp.Y)

			o := dst.PixOffset(x, y)
			dst.Pix[o+0] = src.Pix[ri+0]
			dst.Pix[o+1] = src.Pix[gi+1]
			dst.Pix[o+2] = src.Pix[bi+2]
			dst.Pix[o+3] = 0xff
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
