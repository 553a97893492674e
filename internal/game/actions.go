package game

import (
	"errors"
	"image/color"
	"strconv"

	"github.com/iburimskiy/purpletab/internal/prefs"
	"github.com/iburimskiy/purpletab/internal/search"
	"github.com/iburimskiy/purpletab/internal/shortcuts"
	"github.com/iburimskiy/purpletab/internal/theme"
	"github.com/ncruces/zenity"
)

func (g *Game) submitSearch(query string) {
	address, err := search.Resolve(query, g.engine)
	if errors.Is(err, search.ErrEmptyQuery) {
		return
	}
	if err != nil {
		g.fail(err)
		return
	}
	if err := g.open(address); err != nil {
		g.fail(err)
	}
}

func (g *Game) setPref(key, value string) {
	p := g.prefs
	if err := p.Set(key, value, g.tr); err != nil {
		g.fail(err)
		return
	}
	g.commit(p)
}

func (g *Game) addShortcut(raw string) {
	list := shortcuts.NewList(g.prefs.Shortcuts)
	if _, err := list.Add(raw); err != nil {
		g.showToast(g.tr.T(shortcutMessage(err)))
		return
	}
	p := g.prefs
	p.Shortcuts = list.Items()
	g.commit(p)
}

func (g *Game) removeShortcut(i int) {
	list := shortcuts.NewList(g.prefs.Shortcuts)
	if _, err := list.Remove(i); err != nil {
		return
	}
	p := g.prefs
	p.Shortcuts = list.Items()
	g.commit(p)
}

func (g *Game) openShortcut(i int) {
	if i < 0 || i >= len(g.prefs.Shortcuts) {
		return
	}
	if err := g.open(g.prefs.Shortcuts[i].URL); err != nil {
		g.fail(err)
	}
}

func (g *Game) toggleBackground() {
	next := prefs.BackgroundSolid
	if g.prefs.BackgroundType == prefs.BackgroundSolid {
		next = prefs.BackgroundDynamic
	}
	g.setPref(prefs.KeyBackgroundType, string(next))
}

func (g *Game) toggleCursorReaction() {
	g.setPref(prefs.KeyCursorReaction, strconv.FormatBool(!g.prefs.CursorReaction))
}

func shortcutMessage(err error) string {
	switch {
	case errors.Is(err, shortcuts.ErrLimitReached):
		return "shortcuts.limit"
	case errors.Is(err, shortcuts.ErrDuplicate):
		return "shortcuts.duplicate"
	default:
		return "shortcuts.invalid"
	}
}

// dialogDone turns a dialog error into the result applied on the game
// goroutine. Cancelling is silent.
func dialogDone(err error) func(*Game) {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return func(g *Game) { g.fail(err) }
}

func (g *Game) promptSearch() {
	d := g.dialogs
	title, prompt := g.tr.T("search.button"), g.tr.T("search.placeholder")
	g.background(func() func(*Game) {
		q, err := d.Entry(title, prompt)
		if err != nil {
			return dialogDone(err)
		}
		return func(g *Game) { g.submitSearch(q) }
	})
}

func (g *Game) promptShortcut() {
	d := g.dialogs
	title, prompt := g.tr.T("shortcuts.add"), g.tr.T("shortcuts.prompt")
	g.background(func() func(*Game) {
		raw, err := d.Entry(title, prompt)
		if err != nil {
			return dialogDone(err)
		}
		return func(g *Game) { g.addShortcut(raw) }
	})
}

func (g *Game) pickColor(key, titleKey string) {
	d := g.dialogs
	title := g.tr.T(titleKey)
	current, _ := g.prefs.Get(key)
	var initial color.Color = solid(current, color.NRGBA{A: 0xff})
	g.background(func() func(*Game) {
		c, err := d.Color(title, initial)
		if err != nil {
			return dialogDone(err)
		}
		hex := theme.FormatHex(c)
		return func(g *Game) { g.setPref(key, hex) }
	})
}

// choose offers labels and hands the value at the picked index to set.
func (g *Game) choose(titleKey string, labels, values []string, current string, set func(*Game, string)) {
	d := g.dialogs
	title := g.tr.T(titleKey)
	selected := ""
	for i, v := range values {
		if v == current {
			selected = labels[i]
		}
	}
	g.background(func() func(*Game) {
		picked, err := d.Choose(title, labels, selected)
		if err != nil {
			return dialogDone(err)
		}
		for i, l := range labels {
			if l == picked {
				v := values[i]
				return func(g *Game) { set(g, v) }
			}
		}
		return nil
	})
}

func (g *Game) pickFont() {
	var labels, values []string
	for _, f := range theme.Fonts() {
		labels = append(labels, f.Name)
		values = append(values, f.Value)
	}
	g.choose("settings.font", labels, values, g.prefs.Font, func(g *Game, v string) {
		g.setPref(prefs.KeyFont, v)
	})
}

func (g *Game) pickLanguage() {
	langs := g.tr.Languages()
	g.choose("settings.language", langs, langs, g.prefs.Language, func(g *Game, v string) {
		g.setPref(prefs.KeyLanguage, v)
	})
}

func (g *Game) pickEngine() {
	var labels, values []string
	for _, e := range search.Engines() {
		labels = append(labels, e.Name)
		values = append(values, e.Value)
	}
	g.choose("search.engine", labels, values, g.engine, func(g *Game, v string) {
		g.engine = v
	})
}
