package panel

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iburimskiy/alga/internal/config"
)

// Value is a control bound to a piece of state and exported in presets.
type Value interface {
	Control
	Key() string
	Export() any
	// decode parses raw without touching state and returns the assignment.
	decode(raw json.RawMessage) (apply func(), err error)
}

// Slider binds a scalar to a range.
type Slider struct {
	key, label string
	rng        config.Range
	get        func() float64
	set        func(float64)
	panel      *Panel
}

// AddSlider binds get/set to a slider over r.
func (c *container) AddSlider(key, label string, r config.Range, get func() float64, set func(float64)) *Slider {
	s := &Slider{key: key, label: label, rng: r, get: get, set: set, panel: c.panel}
	c.add(s)
	return s
}

func (s *Slider) Key() string         { return s.key }
func (s *Slider) Label() string       { return s.label }
func (s *Slider) Range() config.Range { return s.rng }
func (s *Slider) Value() float64      { return s.get() }
func (s *Slider) Ratio() float64      { return s.rng.Ratio(s.get()) }
func (s *Slider) Export() any         { return s.get() }

// Set clamps v to the slider's range. Listeners are notified when the bound
// value changes.
func (s *Slider) Set(v float64) {
	v = s.rng.Clamp(v)
	if v == s.get() {
		return
	}
	s.set(v)
	s.panel.emit(Event{Key: s.key, Control: s})
}

func (s *Slider) SetRatio(r float64) { s.Set(s.rng.At(r)) }

func (s *Slider) decode(raw json.RawMessage) (func(), error) {
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	v = s.rng.Clamp(v)
	return func() { s.set(v) }, nil
}

// Text formats the current value for display.
func (s *Slider) Text() string {
	return formatValue(s.get(), s.rng)
}

// Interval binds an ordered pair. The low handle never passes the high one.
type Interval struct {
	key, label string
	rng        config.Range
	get        func() (lo, hi float64)
	set        func(lo, hi float64)
	panel      *Panel
}

type intervalDoc struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (c *container) AddInterval(key, label string, r config.Range, get func() (float64, float64), set func(float64, float64)) *Interval {
	iv := &Interval{key: key, label: label, rng: r, get: get, set: set, panel: c.panel}
	c.add(iv)
	return iv
}

func (iv *Interval) Key() string               { return iv.key }
func (iv *Interval) Label() string             { return iv.label }
func (iv *Interval) Range() config.Range       { return iv.rng }
func (iv *Interval) Values() (lo, hi float64)  { return iv.get() }
func (iv *Interval) HandleRatio(i int) float64 { return iv.rng.Ratio(iv.Handle(i)) }

func (iv *Interval) Export() any {
	lo, hi := iv.get()
	return intervalDoc{Min: lo, Max: hi}
}

// Handle returns the low (0) or high (1) bound.
func (iv *Interval) Handle(i int) float64 {
	lo, hi := iv.get()
	if i == 0 {
		return lo
	}
	return hi
}

func (iv *Interval) SetHandleRatio(i int, r float64) {
	iv.SetHandle(i, iv.rng.At(r))
}

// SetHandle moves the low (0) or high (1) handle, keeping lo <= hi.
func (iv *Interval) SetHandle(i int, v float64) {
	lo, hi := iv.get()
	v = iv.rng.Clamp(v)
	nlo, nhi := lo, hi
	if i == 0 {
		nlo = min(v, hi)
	} else {
		nhi = max(v, lo)
	}
	if nlo == lo && nhi == hi {
		return
	}
	iv.set(nlo, nhi)
	iv.panel.emit(Event{Key: iv.key, Control: iv})
}

func (iv *Interval) decode(raw json.RawMessage) (func(), error) {
	var d intervalDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	lo, hi := iv.rng.Clamp(d.Min), iv.rng.Clamp(d.Max)
	if lo > hi {
		return nil, fmt.Errorf("min %v greater than max %v", d.Min, d.Max)
	}
	return func() { iv.set(lo, hi) }, nil
}

func (iv *Interval) HandleText(i int) string {
	return formatValue(iv.Handle(i), iv.rng)
}

// ColorPicker edits an RGB value through one slider per channel.
type ColorPicker struct {
	key, label string
	get        func() config.RGB
	set        func(config.RGB)
	panel      *Panel
}

var channelNames = [3]string{"r", "g", "b"}

func (c *container) AddColor(key, label string, get func() config.RGB, set func(config.RGB)) *ColorPicker {
	cp := &ColorPicker{key: key, label: label, get: get, set: set, panel: c.panel}
	c.add(cp)
	return cp
}

func (cp *ColorPicker) Key() string       { return cp.key }
func (cp *ColorPicker) Label() string     { return cp.label }
func (cp *ColorPicker) Value() config.RGB { return cp.get() }
func (cp *ColorPicker) Export() any       { return cp.get() }

func (cp *ColorPicker) Channel(i int) uint8 {
	c := cp.get()
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	}
	return c.B
}

func (cp *ColorPicker) ChannelRatio(i int) float64 {
	return config.ChannelRange.Ratio(float64(cp.Channel(i)))
}

func (cp *ColorPicker) SetChannelRatio(i int, r float64) {
	cp.SetChannel(i, config.ChannelRange.At(r))
}

// SetChannel sets channel i (0 red, 1 green, 2 blue) to v clamped to 0..255.
func (cp *ColorPicker) SetChannel(i int, v float64) {
	u := uint8(config.ChannelRange.Clamp(v))
	c := cp.get()
	switch i {
	case 0:
		c.R = u
	case 1:
		c.G = u
	case 2:
		c.B = u
	}
	cp.Set(c)
}

func (cp *ColorPicker) Set(c config.RGB) {
	if c == cp.get() {
		return
	}
	cp.set(c)
	cp.panel.emit(Event{Key: cp.key, Control: cp})
}

func (cp *ColorPicker) decode(raw json.RawMessage) (func(), error) {
	var c config.RGB
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return func() { cp.set(c) }, nil
}

// Button runs an action on click.
type Button struct {
	title   string
	onClick func()
}

func (c *container) AddButton(title string, onClick func()) *Button {
	b := &Button{title: title, onClick: onClick}
	c.add(b)
	return b
}

func (b *Button) Label() string { return b.title }

func (b *Button) Click() {
	if b.onClick != nil {
		b.onClick()
	}
}

// Monitor shows read-only multi-line text.
type Monitor struct {
	label  string
	lines  int
	get    func() string
	scroll int
}

func (c *container) AddMonitor(label string, lines int, get func() string) *Monitor {
	m := &Monitor{label: label, lines: lines, get: get}
	c.add(m)
	return m
}

func (m *Monitor) Label() string { return m.label }
func (m *Monitor) Lines() int    { return m.lines }
func (m *Monitor) Text() string  { return m.get() }

// Visible returns the lines currently scrolled into view.
func (m *Monitor) Visible() []string {
	all := splitLines(m.get())
	m.scroll = clampScroll(m.scroll, len(all), m.lines)
	end := min(m.scroll+m.lines, len(all))
	return all[m.scroll:end]
}

// Scroll moves the view by delta lines.
func (m *Monitor) Scroll(delta int) {
	m.scroll = clampScroll(m.scroll+delta, len(splitLines(m.get())), m.lines)
}

// Graph plots a series of samples as bars.
type Graph struct {
	label string
	get   func() []float64
}

func (c *container) AddGraph(label string, get func() []float64) *Graph {
	g := &Graph{label: label, get: get}
	c.add(g)
	return g
}

func (g *Graph) Label() string      { return g.label }
func (g *Graph) Samples() []float64 { return g.get() }

func formatValue(v float64, r config.Range) string {
	if r.Step >= 1 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if r.Max-r.Min < 0.01 {
		return strconv.FormatFloat(v, 'e', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
