package cmd

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/game"
	"github.com/iburimskiy/purpletab/internal/i18n"
	"github.com/iburimskiy/purpletab/internal/prefs"
	"github.com/iburimskiy/purpletab/internal/waves"
	"github.com/spf13/cobra"
)

var (
	audioPath    string
	windowWidth  int
	windowHeight int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the new tab page",
	RunE:  runPage,
}

func init() {
	addPageFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addPageFlags(c *cobra.Command) {
	c.Flags().StringVar(&audioPath, "audio", "", "loop a wav, mp3 or flac file and let it swell the waves")
	c.Flags().IntVar(&windowWidth, "width", config.WindowWidth, "window width")
	c.Flags().IntVar(&windowHeight, "height", config.WindowHeight, "window height")
}

func runPage(cmd *cobra.Command, args []string) error {
	tr, err := i18n.New()
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		// The page still works, it just forgets settings on exit.
		log.Printf("[Run] %v, preferences will not persist", err)
		store = prefs.NewMemStore()
	}

	var modulator waves.Modulator
	if audioPath != "" {
		amb, err := game.LoadAmbience(audioPath)
		if err != nil {
			log.Printf("[Run] ambience disabled: %v", err)
		} else {
			defer amb.Close()
			modulator = amb
		}
	}

	g, err := game.New(game.Options{
		Loader:     prefs.NewLoader(store, tr),
		Translator: tr,
		Width:      windowWidth,
		Height:     windowHeight,
		Modulator:  modulator,
	})
	if err != nil {
		return err
	}
	defer g.Close()

	log.Printf("[Run] environment %s", config.Environment(envName))
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
