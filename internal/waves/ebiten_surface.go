package waves

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenProvider allocates offscreen ebiten images as wave surfaces.
type EbitenProvider struct{}

func (EbitenProvider) Acquire(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	return &EbitenSurface{img: ebiten.NewImage(width, height)}, nil
}

// EbitenSurface is an offscreen image the game composites under its UI.
type EbitenSurface struct {
	img *ebiten.Image
}

func (s *EbitenSurface) Resize(width, height int) {
	if s.img == nil || width <= 0 || height <= 0 {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(width, height)
}

func (s *EbitenSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *EbitenSurface) StrokePolyline(pts []Point, clr color.NRGBA, width float32) {
	if s.img == nil {
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.img, a.X, a.Y, b.X, b.Y, width, clr, true)
	}
}

func (s *EbitenSurface) Release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

// DrawTo composites the surface onto screen. It does nothing once released.
func (s *EbitenSurface) DrawTo(screen *ebiten.Image) {
	if s.img == nil {
		return
	}
	screen.DrawImage(s.img, nil)
}
