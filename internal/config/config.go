package config

const (
	// Canvas
	Size       = 600
	Background = 0x111111

	// Panel dimensions
	PanelWidth   = 300
	PanelPadding = 8
	WindowWidth  = Size + PanelWidth
	WindowHeight = Size

	// Panel rows
	RowHeight    = 22
	HeaderHeight = 20
	GraphHeight  = 36
	LineHeight   = 16
	MonitorLines = 8

	// FPS meter
	FrameRingSize = 120
	GraphBars     = 60

	// Default export names
	CaptureName = "capture.png"
	PresetName  = "preset.json"

	Title = "Alga"
)
