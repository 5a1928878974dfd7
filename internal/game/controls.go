package game

import (
	"github.com/iburimskiy/alga/internal/config"
	"github.com/iburimskiy/alga/internal/panel"
)

var panelMetrics = panel.Metrics{
	Row:        config.RowHeight,
	Header:     config.HeaderHeight,
	Graph:      config.GraphHeight,
	Line:       config.LineHeight,
	Padding:    config.PanelPadding,
	LabelWidth: 0.4,
}

// actions are the panel's buttons.
type actions struct {
	capture    func()
	savePreset func()
	loadPreset func()
}

// newControlPanel binds every tunable field of params to a control.
func newControlPanel(params *config.Params, meter *frameMeter, preset *presetPublisher, act actions) *panel.Panel {
	p := panel.New(config.Title)

	p.AddSlider("speed", "speed", config.SpeedRange,
		func() float64 { return params.Speed },
		func(v float64) { params.Speed = v })
	p.AddSlider("count", "count", config.CountRange,
		func() float64 { return float64(params.Count) },
		func(v float64) { params.Count = int(v) })

	coloration := p.AddFolder("coloration")
	coloration.AddColor("color", "color",
		func() config.RGB { return params.Color },
		func(c config.RGB) { params.Color = c })
	coloration.AddSlider("aberration", "aberration", config.AberrationRange,
		func() float64 { return params.Aberration },
		func(v float64) { params.Aberration = v })

	form := p.AddFolder("form")
	form.AddSlider("mainFrequency", "mainFreq", config.MainFrequencyRange,
		func() float64 { return params.MainFrequency },
		func(v float64) { params.MainFrequency = v })
	form.AddSlider("subFrequency", "subFreq", config.SubFrequencyRange,
		func() float64 { return params.SubFrequency },
		func(v float64) { params.SubFrequency = v })
	form.AddSlider("subLength", "subLen", config.SubLengthRange,
		func() float64 { return params.SubLength },
		func(v float64) { params.SubLength = v })
	form.AddInterval("size", "size", config.SizeRange,
		func() (float64, float64) { return params.Size.Min, params.Size.Max },
		func(lo, hi float64) { params.Size = config.Interval{Min: lo, Max: hi} })

	misc := p.AddFolder("misc")
	misc.AddGraph("fps", func() []float64 { return meter.snapshot(config.GraphBars) })
	misc.AddMonitor("json", config.MonitorLines, preset.Document)
	misc.AddButton("Capture", act.capture)
	misc.AddButton("Save preset", act.savePreset)
	misc.AddButton("Load preset", act.loadPreset)

	preset.Attach(p)
	return p
}

// presetPublisher keeps the JSON export of a panel current.
type presetPublisher struct {
	panel *panel.Panel
	doc   string
	err   error
}

// Attach subscribes to p and publishes once immediately.
func (pp *presetPublisher) Attach(p *panel.Panel) {
	pp.panel = p
	p.OnChange(func(panel.Event) { pp.publish() })
	pp.publish()
}

func (pp *presetPublisher) publish() {
	b, err := pp.panel.ExportJSON()
	if err != nil {
		pp.err = err
		return
	}
	pp.doc, pp.err = string(b), nil
}

// Document is the latest export.
func (pp *presetPublisher) Document() string { return pp.doc }

// Err is the error of the latest export, if it failed.
func (pp *presetPublisher) Err() error { return pp.err }
