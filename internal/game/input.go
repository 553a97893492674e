package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/prefs"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHover = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight
	if g.buttonHover && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.promptSearch()
	}

	just := inpututil.IsKeyJustPressed
	switch {
	case just(ebiten.KeySlash), just(ebiten.KeyEnter):
		g.promptSearch()
	case just(ebiten.KeyE):
		g.pickEngine()
	case just(ebiten.KeyL):
		g.pickColor(prefs.KeyLineColor, "settings.wave_color")
	case just(ebiten.KeyB):
		g.pickColor(prefs.KeyBackgroundColor, "settings.background_color")
	case just(ebiten.KeyV):
		g.toggleBackground()
	case just(ebiten.KeyF):
		g.pickFont()
	case just(ebiten.KeyG):
		g.pickLanguage()
	case just(ebiten.KeyC):
		g.toggleCursorReaction()
	case just(ebiten.KeyA):
		g.promptShortcut()
	case just(ebiten.KeyH):
		g.footerHidden = true
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for i, k := range digitKeys {
		if !just(k) {
			continue
		}
		if shift {
			g.removeShortcut(i)
		} else {
			g.openShortcut(i)
		}
		break
	}
	return nil
}
