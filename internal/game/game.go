// Package game runs the new-tab page as an ebiten game: the wave background,
// the search launcher, shortcuts and the settings dialogs.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/i18n"
	"github.com/iburimskiy/purpletab/internal/prefs"
	"github.com/iburimskiy/purpletab/internal/search"
	"github.com/iburimskiy/purpletab/internal/theme"
	"github.com/iburimskiy/purpletab/internal/waves"
)

// Options configures New. Zero values pick the desktop implementations.
type Options struct {
	Loader     *prefs.Loader
	Translator *i18n.Translator
	Width      int
	Height     int

	Surfaces  waves.SurfaceProvider
	Dialogs   Dialogs
	Modulator waves.Modulator
	Open      func(string) error
	SetTitle  func(string)
}

// Game implements ebiten.Game.
type Game struct {
	loader *prefs.Loader
	tr     *i18n.Translator
	prefs  prefs.Preferences
	engine string

	ticker   *waves.Ticker
	renderer *waves.Renderer
	width    int
	height   int
	bg       color.NRGBA

	pointerIn bool
	pointerX  int
	pointerY  int

	dialogs  Dialogs
	open     func(string) error
	setTitle func(string)
	results  chan func(*Game)
	jobs     sync.WaitGroup
	busy     bool

	toast        string
	toastTicks   int
	footerHidden bool
	buttonHover  bool
}

// New loads preferences and mounts the wave background. A missing drawing
// surface is not fatal: the page falls back to a flat background.
func New(opts Options) (*Game, error) {
	if opts.Loader == nil || opts.Translator == nil {
		return nil, errors.New("game: loader and translator are required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("game: invalid window size %dx%d", opts.Width, opts.Height)
	}
	g := &Game{
		loader:   opts.Loader,
		tr:       opts.Translator,
		engine:   search.Engines()[0].Value,
		ticker:   waves.NewTicker(),
		width:    opts.Width,
		height:   opts.Height,
		dialogs:  opts.Dialogs,
		open:     opts.Open,
		setTitle: opts.SetTitle,
		results:  make(chan func(*Game), 1),
	}
	if g.dialogs == nil {
		g.dialogs = ZenityDialogs{}
	}
	if g.open == nil {
		g.open = search.Open
	}
	if g.setTitle == nil {
		g.setTitle = ebiten.SetWindowTitle
	}
	surfaces := opts.Surfaces
	if surfaces == nil {
		surfaces = waves.EbitenProvider{}
	}

	p := g.loader.Load()
	g.apply(p)

	r, err := waves.Mount(p.WaveConfig(), waves.Options{
		Viewport:  waves.ViewportFunc(func() (int, int) { return g.width, g.height }),
		Surfaces:  surfaces,
		Scheduler: g.ticker,
		Modulator: opts.Modulator,
	})
	if err != nil {
		log.Printf("[Game] %v, using a solid background", err)
	} else {
		g.renderer = r
	}
	return g, nil
}

// Preferences returns the settings in effect.
func (g *Game) Preferences() prefs.Preferences { return g.prefs }

// Renderer returns the wave renderer, or nil when no surface was available.
func (g *Game) Renderer() *waves.Renderer { return g.renderer }

// Title is the window title derived from the wave colour.
func (g *Game) Title() string {
	name := theme.ColorName(g.prefs.LineColor)
	if name == "" {
		name = "Purple"
	}
	return g.tr.Tf("app.title", name)
}

// Close unmounts the renderer and waits for open dialogs to return.
func (g *Game) Close() {
	if g.renderer != nil {
		g.renderer.Unmount()
	}
	g.jobs.Wait()
}

func (g *Game) Update() error {
	g.drainResults()
	g.trackPointer(ebiten.CursorPosition())
	if err := g.handleInput(); err != nil {
		return err
	}
	g.step()
	return nil
}

// step advances one animation frame.
func (g *Game) step() {
	g.ticker.Tick()
	if g.toastTicks > 0 {
		g.toastTicks--
		if g.toastTicks == 0 {
			g.toast = ""
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		if g.renderer != nil {
			g.renderer.OnResize(outsideWidth, outsideHeight)
		}
	}
	return g.width, g.height
}

func (g *Game) trackPointer(x, y int) {
	inside := x >= 0 && y >= 0 && x < g.width && y < g.height
	switch {
	case inside && (!g.pointerIn || x != g.pointerX || y != g.pointerY):
		g.pointerIn, g.pointerX, g.pointerY = true, x, y
		if g.renderer != nil {
			g.renderer.OnPointerMove(float64(x), float64(y))
		}
	case !inside && g.pointerIn:
		g.pointerIn = false
		if g.renderer != nil {
			g.renderer.OnPointerLeave()
		}
	}
}

// apply makes p the active settings without saving them.
func (g *Game) apply(p prefs.Preferences) {
	g.prefs = p
	if err := g.tr.SetLanguage(p.Language); err != nil {
		log.Printf("[Game] %v", err)
	}
	g.bg = solid(p.BackgroundColor, color.NRGBA{A: 0xff})
	if g.renderer != nil {
		g.renderer.UpdateConfiguration(p.WaveConfig())
	}
	g.setTitle(g.Title())
}

// commit applies and saves p.
func (g *Game) commit(p prefs.Preferences) {
	g.apply(p)
	if err := g.loader.Save(p); err != nil {
		g.fail(fmt.Errorf("save preferences: %w", err))
		return
	}
	g.notify(g.tr.T("settings.saved.title"), g.tr.T("settings.saved.description"))
}

// background runs job off the game goroutine. The function it returns is
// applied on the next Update. Only one job runs at a time.
func (g *Game) background(job func() func(*Game)) {
	if g.busy {
		return
	}
	g.busy = true
	g.jobs.Add(1)
	go func() {
		defer g.jobs.Done()
		apply := job()
		g.results <- func(g *Game) {
			g.busy = false
			if apply != nil {
				apply(g)
			}
		}
	}()
}

func (g *Game) drainResults() {
	for {
		select {
		case fn := <-g.results:
			fn(g)
		default:
			return
		}
	}
}

func (g *Game) showToast(msg string) {
	g.toast = msg
	g.toastTicks = config.ToastTicks
}

func (g *Game) notify(title, text string) {
	g.showToast(text)
	d := g.dialogs
	go func() {
		if err := d.Notify(title, text); err != nil {
			log.Printf("[Game] notify: %v", err)
		}
	}()
}

func (g *Game) fail(err error) {
	log.Printf("[Game] %v", err)
	g.showToast(g.tr.T("error.title") + ": " + err.Error())
}

var _ ebiten.Game = (*Game)(nil)

// year is the copyright year shown in the footer.
func year() int { return time.Now().Year() }
