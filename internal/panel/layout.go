package panel

import (
	"image"
	"strings"

	"github.com/iburimskiy/alga/internal/config"
)

// Metrics sizes the rows produced by Layout.
type Metrics struct {
	Row, Header, Graph, Line, Padding int
	// LabelWidth is the share of the row width left of a slider track.
	LabelWidth float64
}

// RowKind tells the renderer how to draw a row.
type RowKind int

const (
	RowTitle RowKind = iota
	RowHeader
	RowSlider
	RowHandle
	RowChannel
	RowButton
	RowMonitor
	RowGraph
)

// Row is one laid-out line of the panel.
type Row struct {
	Kind    RowKind
	Rect    image.Rectangle
	Track   image.Rectangle
	Label   string
	Control Control
	Folder  *Folder
	// Index selects an interval handle or a color channel.
	Index int
}

// Ratio is the normalized handle position of a slider-like row.
func (r Row) Ratio() float64 {
	switch c := r.Control.(type) {
	case *Slider:
		return c.Ratio()
	case *Interval:
		return c.HandleRatio(r.Index)
	case *ColorPicker:
		return c.ChannelRatio(r.Index)
	}
	return 0
}

// DragTo moves a slider-like row's handle to screen x.
func (r Row) DragTo(x int) {
	if r.Track.Dx() <= 0 {
		return
	}
	ratio := float64(x-r.Track.Min.X) / float64(r.Track.Dx())
	ratio = max(0, min(1, ratio))
	switch c := r.Control.(type) {
	case *Slider:
		c.SetRatio(ratio)
	case *Interval:
		c.SetHandleRatio(r.Index, ratio)
	case *ColorPicker:
		c.SetChannelRatio(r.Index, ratio)
	}
}

// Text is the value shown next to a slider-like row.
func (r Row) Text() string {
	switch c := r.Control.(type) {
	case *Slider:
		return c.Text()
	case *Interval:
		return c.HandleText(r.Index)
	case *ColorPicker:
		return formatValue(float64(c.Channel(r.Index)), config.ChannelRange)
	}
	return ""
}

// Layout stacks the panel's rows from origin downward. Controls of collapsed
// folders are skipped.
func (p *Panel) Layout(origin image.Point, width int, m Metrics) []Row {
	l := layouter{y: origin.Y, x: origin.X, width: width, m: m}
	l.add(Row{Kind: RowTitle, Label: p.Title}, m.Header)
	l.controls(p.controls)
	for _, f := range p.folders {
		label := "- " + f.Title
		if !f.expanded {
			label = "+ " + f.Title
		}
		l.add(Row{Kind: RowHeader, Label: label, Folder: f}, m.Header)
		if f.expanded {
			l.controls(f.controls)
		}
	}
	return l.rows
}

// Hit returns the row containing pt.
func Hit(rows []Row, pt image.Point) (Row, bool) {
	for _, r := range rows {
		if pt.In(r.Rect) {
			return r, true
		}
	}
	return Row{}, false
}

type layouter struct {
	x, y, width int
	m           Metrics
	rows        []Row
}

func (l *layouter) add(r Row, h int) {
	r.Rect = image.Rect(l.x, l.y, l.x+l.width, l.y+h)
	if r.Kind == RowSlider || r.Kind == RowHandle || r.Kind == RowChannel {
		left := l.x + int(float64(l.width)*l.m.LabelWidth)
		right := l.x + l.width - l.m.Padding
		r.Track = image.Rect(left, l.y+l.m.Padding/2, right, l.y+h-l.m.Padding/2)
	}
	l.rows = append(l.rows, r)
	l.y += h
}

func (l *layouter) controls(ctls []Control) {
	for _, c := range ctls {
		switch c := c.(type) {
		case *Slider:
			l.add(Row{Kind: RowSlider, Label: c.Label(), Control: c}, l.m.Row)
		case *Interval:
			l.add(Row{Kind: RowHandle, Label: c.Label() + ".min", Control: c, Index: 0}, l.m.Row)
			l.add(Row{Kind: RowHandle, Label: c.Label() + ".max", Control: c, Index: 1}, l.m.Row)
		case *ColorPicker:
			for i, name := range channelNames {
				l.add(Row{Kind: RowChannel, Label: c.Label() + "." + name, Control: c, Index: i}, l.m.Row)
			}
		case *Button:
			l.add(Row{Kind: RowButton, Label: c.Label(), Control: c}, l.m.Row)
		case *Monitor:
			l.add(Row{Kind: RowMonitor, Label: c.Label(), Control: c}, c.Lines()*l.m.Line+l.m.Padding)
		case *Graph:
			l.add(Row{Kind: RowGraph, Label: c.Label(), Control: c}, l.m.Graph)
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func clampScroll(v, total, visible int) int {
	return max(0, min(v, total-visible))
}
