// Package game runs the sketch in an ebiten window: the render loop on the
// left, the control panel on the right.
package game

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/alga/internal/capture"
	"github.com/iburimskiy/alga/internal/config"
	"github.com/iburimskiy/alga/internal/panel"
	"github.com/iburimskiy/alga/internal/render"
)

type Game struct {
	params   *config.Params
	pipeline *render.Pipeline
	target   *ebitenTarget
	panel    *panel.Panel
	preset   *presetPublisher
	meter    *frameMeter
	saver    *capture.Saver
	log      *slog.Logger

	// input state
	prevKey  map[ebiten.Key]bool
	dragging *panel.Row
	pressed  *panel.Button
	hovered  panel.Row
	wheel    wheelLines

	lastErr error
}

func New(log *slog.Logger) (*Game, error) {
	target, err := newEbitenTarget(config.Size)
	if err != nil {
		return nil, err
	}
	log.Info("shader compiled", "size", config.Size)

	params := config.Defaults()
	g := &Game{
		params:  &params,
		target:  target,
		preset:  &presetPublisher{},
		meter:   newFrameMeter(config.FrameRingSize),
		saver:   capture.NewSaver(log),
		log:     log,
		prevKey: map[ebiten.Key]bool{},
	}
	g.pipeline = render.NewPipeline(g.params, config.Size)
	g.panel = newControlPanel(g.params, g.meter, g.preset, actions{
		capture:    g.capture,
		savePreset: g.savePreset,
		loadPreset: g.loadPreset,
	})
	if err := g.preset.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	cursor := image.Pt(mouseX, mouseY)
	rows := g.rows()
	g.hovered, _ = panel.Hit(rows, cursor)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(g.hovered)
	}
	if g.dragging != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging.DragTo(mouseX)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		// Buttons fire on release while still hovered.
		if b, ok := g.hovered.Control.(*panel.Button); ok && g.pressed == b {
			b.Click()
		}
		g.dragging = nil
		g.pressed = nil
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		if m, ok := g.hovered.Control.(*panel.Monitor); ok {
			if n := g.wheel.add(wy); n != 0 {
				m.Scroll(-n)
			}
		}
	}
	return nil
}

func (g *Game) press(row panel.Row) {
	switch row.Kind {
	case panel.RowHeader:
		row.Folder.Toggle()
	case panel.RowSlider, panel.RowHandle, panel.RowChannel:
		g.dragging = &row
	case panel.RowButton:
		g.pressed, _ = row.Control.(*panel.Button)
	}
}

func (g *Game) rows() []panel.Row {
	return g.panel.Layout(image.Pt(config.Size, 0), config.PanelWidth, panelMetrics)
}

// Draw is the display tick: one frame of the sketch, then the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.meter.tick(time.Now())

	g.pipeline.Render(g.target)
	screen.DrawImage(g.target.frame, &ebiten.DrawImageOptions{})

	g.drawPanel(screen, g.rows())
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) capture() {
	path, err := g.saver.SaveImage(config.CaptureName, g.target.snapshot())
	if err != nil {
		g.fail(fmt.Errorf("capture: %w", err))
		return
	}
	if path != "" {
		g.log.Info("capture saved", "path", path, "frame", g.pipeline.Frame())
	}
	g.lastErr = nil
}

func (g *Game) savePreset() {
	if err := g.preset.Err(); err != nil {
		g.fail(err)
		return
	}
	if _, err := g.saver.SavePreset(config.PresetName, []byte(g.preset.Document())); err != nil {
		g.fail(fmt.Errorf("save preset: %w", err))
		return
	}
	g.lastErr = nil
}

func (g *Game) loadPreset() {
	doc, err := g.saver.LoadPreset()
	if err != nil {
		g.fail(fmt.Errorf("load preset: %w", err))
		return
	}
	if doc == nil {
		return
	}
	if err := g.panel.ImportJSON(doc); err != nil {
		g.fail(fmt.Errorf("load preset: %w", err))
		return
	}
	g.log.Info("preset loaded", "count", g.params.Count)
	g.lastErr = nil
}

func (g *Game) fail(err error) {
	g.log.Warn("action failed", "err", err)
	g.lastErr = err
}
