package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/alga/internal/config"
	"github.com/iburimskiy/alga/internal/panel"
)

const glyphWidth = 6

var (
	panelBg      = color.RGBA{R: 28, G: 29, B: 34, A: 255}
	headerBg     = color.RGBA{R: 40, G: 42, B: 50, A: 255}
	trackBg      = color.RGBA{R: 50, G: 53, B: 62, A: 255}
	trackFill    = color.RGBA{R: 110, G: 120, B: 150, A: 255}
	monitorBg    = color.RGBA{R: 20, G: 21, B: 25, A: 255}
	borderColor  = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	channelFills = [3]color.RGBA{
		{R: 200, G: 60, B: 60, A: 255},
		{R: 60, G: 180, B: 80, A: 255},
		{R: 70, G: 100, B: 220, A: 255},
	}
)

func (g *Game) drawPanel(screen *ebiten.Image, rows []panel.Row) {
	vector.DrawFilledRect(screen, config.Size, 0, config.PanelWidth, config.WindowHeight, panelBg, false)

	for _, row := range rows {
		switch row.Kind {
		case panel.RowTitle:
			drawLabel(screen, row.Label, row.Rect, config.PanelPadding)
		case panel.RowHeader:
			fillRect(screen, row.Rect, headerBg)
			drawLabel(screen, row.Label, row.Rect, config.PanelPadding)
		case panel.RowSlider, panel.RowHandle, panel.RowChannel:
			g.drawSlider(screen, row)
		case panel.RowButton:
			g.drawButton(screen, row)
		case panel.RowMonitor:
			g.drawMonitor(screen, row)
		case panel.RowGraph:
			g.drawGraph(screen, row)
		}
	}
}

func (g *Game) drawSlider(screen *ebiten.Image, row panel.Row) {
	drawLabel(screen, row.Label, row.Rect, config.PanelPadding)

	track := row.Track
	fillRect(screen, track, trackBg)

	fill := trackFill
	if row.Kind == panel.RowChannel {
		fill = channelFills[row.Index]
	}
	w := float32(float64(track.Dx()) * clamp01(row.Ratio()))
	vector.DrawFilledRect(screen, float32(track.Min.X), float32(track.Min.Y), w, float32(track.Dy()), fill, false)

	if g.dragging != nil && g.dragging.Control == row.Control && g.dragging.Index == row.Index {
		strokeRect(screen, track, 1, color.White)
	}

	text := row.Text()
	ebitenutil.DebugPrintAt(screen, text, track.Max.X-len(text)*glyphWidth-4, track.Min.Y-1)
}

func (g *Game) drawButton(screen *ebiten.Image, row panel.Row) {
	r := row.Rect.Inset(2)

	var bgColor color.Color
	if g.pressed != nil && row.Control == g.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.hovered.Control == row.Control {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	fillRect(screen, r, bgColor)
	strokeRect(screen, r, 1, color.RGBA{R: 150, G: 170, B: 200, A: 255})

	textX := r.Min.X + (r.Dx()-len(row.Label)*glyphWidth)/2
	ebitenutil.DebugPrintAt(screen, row.Label, textX, r.Min.Y+1)
}

func (g *Game) drawMonitor(screen *ebiten.Image, row panel.Row) {
	m := row.Control.(*panel.Monitor)
	r := row.Rect.Inset(2)
	fillRect(screen, r, monitorBg)
	strokeRect(screen, r, 1, borderColor)

	maxChars := (r.Dx() - config.PanelPadding) / glyphWidth
	for i, line := range m.Visible() {
		if len(line) > maxChars {
			line = line[:maxChars]
		}
		ebitenutil.DebugPrintAt(screen, line, r.Min.X+config.PanelPadding/2, r.Min.Y+i*config.LineHeight)
	}
}

func (g *Game) drawGraph(screen *ebiten.Image, row panel.Row) {
	gr := row.Control.(*panel.Graph)
	samples := gr.Samples()

	r := row.Rect.Inset(2)
	fillRect(screen, r, monitorBg)

	left := r.Min.X + int(float64(r.Dx())*panelMetrics.LabelWidth)
	plot := image.Rect(left, r.Min.Y+2, r.Max.X-2, r.Max.Y-2)
	top := maxOf(samples, 60)
	barWidth := float32(plot.Dx()) / config.GraphBars
	for i, fps := range samples {
		h := float32(float64(plot.Dy()) * clamp01(fps/top))
		x := float32(plot.Min.X) + float32(i)*barWidth
		vector.DrawFilledRect(screen, x, float32(plot.Max.Y)-h, barWidth, h, fpsColor(fps, 60), false)
	}

	ebitenutil.DebugPrintAt(screen, row.Label, r.Min.X+config.PanelPadding/2, r.Min.Y)
	ebitenutil.DebugPrintAt(screen, formatFPS(g.meter.current()), r.Min.X+config.PanelPadding/2, r.Min.Y+config.LineHeight)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("frame %d - Esc/Q: quit", g.pipeline.Frame())
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.Size+config.PanelPadding, config.WindowHeight-config.LineHeight-2)
}

func drawLabel(screen *ebiten.Image, label string, r image.Rectangle, pad int) {
	ebitenutil.DebugPrintAt(screen, label, r.Min.X+pad, r.Min.Y+(r.Dy()-config.LineHeight)/2)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(screen *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}
