package panel

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPreset is returned when a preset document cannot be applied.
var ErrMalformedPreset = errors.New("malformed preset")

// FoldersKey holds folder layout in exported presets.
const FoldersKey = "folders"

// FolderState is the UI metadata stored per folder.
type FolderState struct {
	Expanded bool `json:"expanded"`
}

// Preset is a snapshot of every bound value keyed by control key, plus the
// folder layout under FoldersKey.
type Preset map[string]any

// ExportPreset snapshots the panel.
func (p *Panel) ExportPreset() Preset {
	out := Preset{}
	for _, v := range p.Values() {
		out[v.Key()] = v.Export()
	}
	folders := make(map[string]FolderState, len(p.folders))
	for _, f := range p.folders {
		folders[f.Title] = FolderState{Expanded: f.expanded}
	}
	out[FoldersKey] = folders
	return out
}

// ExportJSON renders ExportPreset as JSON indented by two spaces.
func (p *Panel) ExportJSON() ([]byte, error) {
	b, err := json.MarshalIndent(p.ExportPreset(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export preset: %w", err)
	}
	return b, nil
}

// ImportJSON applies a preset document. Values are clamped to each control's
// range and unknown keys are ignored. Nothing is changed if any known key
// fails to decode. Listeners receive one event per imported control and one
// per folder whose layout changed.
func (p *Panel) ImportJSON(doc []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPreset, err)
	}

	var applied []Value
	var steps []func()
	for _, v := range p.Values() {
		field, ok := raw[v.Key()]
		if !ok {
			continue
		}
		apply, err := v.decode(field)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMalformedPreset, v.Key(), err)
		}
		steps = append(steps, apply)
		applied = append(applied, v)
	}

	var folders map[string]FolderState
	if field, ok := raw[FoldersKey]; ok {
		if err := json.Unmarshal(field, &folders); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMalformedPreset, FoldersKey, err)
		}
	}

	for _, apply := range steps {
		apply()
	}
	var toggled []*Folder
	for _, f := range p.folders {
		if st, ok := folders[f.Title]; ok && st.Expanded != f.expanded {
			f.expanded = st.Expanded
			toggled = append(toggled, f)
		}
	}
	for _, v := range applied {
		p.emit(Event{Key: v.Key(), Control: v})
	}
	for _, f := range toggled {
		p.emit(Event{Folder: f})
	}
	return nil
}
