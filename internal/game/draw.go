package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/prefs"
	"github.com/iburimskiy/purpletab/internal/search"
	"github.com/iburimskiy/purpletab/internal/theme"
	"github.com/iburimskiy/purpletab/internal/waves"
)

const (
	lineHeight    = 16
	charWidth     = 6 // debug font advance
	shortcutsTop  = 130
	shortcutChars = 72
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	if g.renderer != nil {
		if s, ok := g.renderer.Surface().(*waves.EbitenSurface); ok {
			s.DrawTo(screen)
		}
	}

	ebitenutil.DebugPrintAt(screen, g.tr.T("help.keys"), 12, 12)
	ebitenutil.DebugPrintAt(screen, g.tr.T("search.prompt"), config.ButtonX, config.ButtonY-lineHeight-4)
	g.drawButton(screen)
	ebitenutil.DebugPrintAt(screen,
		g.tr.Tf("search.engine.current", search.FindEngine(g.engine).Name),
		config.ButtonX+config.ButtonWidth+16, config.ButtonY+12)

	g.drawSettings(screen, config.ButtonY+config.ButtonHeight+12)
	g.drawShortcuts(screen, shortcutsTop)

	if g.toast != "" {
		x := (g.width - len([]rune(g.toast))*charWidth) / 2
		ebitenutil.DebugPrintAt(screen, g.toast, max(x, 12), g.height-3*lineHeight)
	}
	if !g.footerHidden {
		footer := g.tr.Tf("footer.copyright", year(), theme.ColorName(g.prefs.LineColor)) +
			"  [H] " + g.tr.T("footer.hide")
		ebitenutil.DebugPrintAt(screen, footer, 12, g.height-lineHeight-4)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	bg := color.RGBA{R: 100, G: 120, B: 160, A: 255}
	if g.buttonHover {
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bg, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2,
		color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := g.tr.T("search.button")
	textX := config.ButtonX + (config.ButtonWidth-len([]rune(text))*charWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-lineHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawSettings(screen *ebiten.Image, y int) {
	bgKey := "settings.background.dynamic"
	if g.prefs.BackgroundType == prefs.BackgroundSolid {
		bgKey = "settings.background.solid"
	}
	cursor := "off"
	if g.prefs.CursorReaction {
		cursor = "on"
	}
	line := fmt.Sprintf("%s: %s   %s: %s   %s: %s   %s: %s   %s: %s",
		g.tr.T("settings.background"), g.tr.T(bgKey),
		g.tr.T("settings.wave_color"), g.prefs.LineColor,
		g.tr.T("settings.font"), theme.FindFont(g.prefs.Font).Name,
		g.tr.T("settings.cursor_reaction"), cursor,
		g.tr.T("settings.language"), g.prefs.Language,
	)
	ebitenutil.DebugPrintAt(screen, fitText(line, (g.width-24)/charWidth), config.ButtonX, y)
}

func (g *Game) drawShortcuts(screen *ebiten.Image, y int) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s (%d/%d)", g.tr.T("shortcuts.title"), len(g.prefs.Shortcuts), config.MaxShortcuts),
		config.ButtonX, y)
	for i, s := range g.prefs.Shortcuts {
		label := "  "
		if i < len(digitKeys) {
			label = fmt.Sprintf("%d ", i+1)
		}
		ebitenutil.DebugPrintAt(screen, label+fitText(s.URL, shortcutChars), config.ButtonX, y+(i+1)*lineHeight)
	}
}
