package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid parameters")

// RGB is an opaque 8-bit color. It is encoded in presets as "#rrggbb".
type RGB struct {
	R, G, B uint8
}

// Hex converts a 0xRRGGBB literal.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (c RGB) String() string {
	return c.Colorful().Hex()
}

func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *RGB) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	c.R, c.G, c.B = cf.RGB255()
	return nil
}

// Interval is an ordered pair of radius bounds.
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Params holds every tunable value of the sketch. It is read once per frame
// and written only through the control panel.
type Params struct {
	Color         RGB      `json:"color"`
	Count         int      `json:"count"`
	MainFrequency float64  `json:"mainFrequency"`
	SubFrequency  float64  `json:"subFrequency"`
	Size          Interval `json:"size"`
	Speed         float64  `json:"speed"`
	SubLength     float64  `json:"subLength"`
	Aberration    float64  `json:"aberration"`
}

func Defaults() Params {
	return Params{
		Color:         Hex(0xffffff),
		Count:         10000,
		MainFrequency: 24,
		SubFrequency:  300,
		Size:          Interval{Min: 130, Max: 180},
		Speed:         2 * 1e-4,
		SubLength:     0.2,
		Aberration:    0.015,
	}
}

// Validate reports whether p satisfies the generator's preconditions.
func (p Params) Validate() error {
	if p.Count < 1 {
		return fmt.Errorf("%w: count %d < 1", ErrInvalidParams, p.Count)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"mainFrequency", p.MainFrequency},
		{"subFrequency", p.SubFrequency},
		{"speed", p.Speed},
		{"subLength", p.SubLength},
		{"size.min", p.Size.Min},
		{"size.max", p.Size.Max},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParams, f.name, f.v)
		}
	}
	if math.IsNaN(p.Aberration) || math.IsInf(p.Aberration, 0) {
		return fmt.Errorf("%w: aberration = %v", ErrInvalidParams, p.Aberration)
	}
	if p.Size.Min > p.Size.Max {
		return fmt.Errorf("%w: size.min %v > size.max %v", ErrInvalidParams, p.Size.Min, p.Size.Max)
	}
	return nil
}

// Range is the declared domain of a bound field. A zero Step means continuous.
type Range struct {
	Min, Max, Step float64
}

// Clamp limits v to the range and snaps it to the nearest step.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Ratio maps v into [0, 1] across the range.
func (r Range) Ratio(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (v - r.Min) / (r.Max - r.Min)
}

// At is the inverse of Ratio, clamped.
func (r Range) At(ratio float64) float64 {
	return r.Clamp(r.Min + ratio*(r.Max-r.Min))
}

var (
	SpeedRange         = Range{Min: 0, Max: 1e-3}
	CountRange         = Range{Min: 1, Max: 20000, Step: 1}
	AberrationRange    = Range{Min: -0.04, Max: 0.04}
	MainFrequencyRange = Range{Min: 2, Max: 100, Step: 2}
	SubFrequencyRange  = Range{Min: 0, Max: 500, Step: 1}
	SubLengthRange     = Range{Min: 0, Max: 2}
	SizeRange          = Range{Min: 0, Max: 450}
	ChannelRange       = Range{Min: 0, Max: 255, Step: 1}
)
