package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/alga/internal/shader"
)

// ebitenTarget draws points into an offscreen scene and composites it into
// frame with the aberration shader.
type ebitenTarget struct {
	scene  *ebiten.Image
	frame  *ebiten.Image
	shader *ebiten.Shader
}

func newEbitenTarget(size int) (*ebitenTarget, error) {
	s, err := ebiten.NewShader(shader.Source)
	if err != nil {
		return nil, fmt.Errorf("compile aberration shader: %w", err)
	}
	return &ebitenTarget{
		scene:  ebiten.NewImage(size, size),
		frame:  ebiten.NewImage(size, size),
		shader: s,
	}, nil
}

func (t *ebitenTarget) Fill(c color.Color) { t.scene.Fill(c) }

func (t *ebitenTarget) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(t.scene, x, y, w, h, c, false)
}

func (t *ebitenTarget) Composite(aberration float64) {
	b := t.scene.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = t.scene
	op.Uniforms = shader.Uniforms(aberration, b.Dx(), b.Dy())
	op.Blend = ebiten.BlendCopy
	t.frame.DrawRectShader(b.Dx(), b.Dy(), t.shader, op)
}

// snapshot reads back the last composited frame.
func (t *ebitenTarget) snapshot() *image.RGBA {
	img := image.NewRGBA(t.frame.Bounds())
	t.frame.ReadPixels(img.Pix)
	return img
}
