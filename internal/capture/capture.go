// Package capture writes canvas captures and preset documents to files the
// user picks.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/ncruces/zenity"
)

// Dialog asks for a file path. It returns zenity.ErrCanceled when the user
// backs out.
type Dialog func(defaultName string, patterns []string) (string, error)

// SaveDialog is the native "save as" dialog.
func SaveDialog(defaultName string, patterns []string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save "+defaultName),
		zenity.Filename(defaultName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: defaultName, Patterns: patterns}},
	)
}

// OpenDialog is the native "open" dialog.
func OpenDialog(_ string, patterns []string) (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open preset"),
		zenity.FileFilters{{Name: "Preset", Patterns: patterns}},
	)
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Saver writes files to paths chosen through Save and Open dialogs.
type Saver struct {
	Save Dialog
	Open Dialog
	Log  *slog.Logger
}

func NewSaver(log *slog.Logger) *Saver {
	return &Saver{Save: SaveDialog, Open: OpenDialog, Log: log}
}

// SaveImage encodes img as PNG at a user-chosen path, suggesting name.
// It returns "" and no error when the user cancels.
func (s *Saver) SaveImage(name string, img image.Image) (string, error) {
	return s.write(name, []string{"*.png"}, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}

// SavePreset writes a preset document.
func (s *Saver) SavePreset(name string, doc []byte) (string, error) {
	return s.write(name, []string{"*.json"}, func(w io.Writer) error {
		_, err := w.Write(doc)
		return err
	})
}

// LoadPreset reads a preset document the user picks. It returns nil and no
// error when the user cancels.
func (s *Saver) LoadPreset() ([]byte, error) {
	path, err := s.Open("", []string{"*.json"})
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			s.Log.Debug("load canceled")
			return nil, nil
		}
		return nil, fmt.Errorf("open dialog: %w", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	s.Log.Info("preset read", "path", path, "bytes", len(b))
	return b, nil
}

func (s *Saver) write(name string, patterns []string, encode func(io.Writer) error) (string, error) {
	path, err := s.Save(name, patterns)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			s.Log.Debug("save canceled", "name", name)
			return "", nil
		}
		return "", fmt.Errorf("save dialog: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	s.Log.Info("file saved", "path", path)
	return path, nil
}
