package cmd

import (
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iburimskiy/purpletab/internal/config"
	"github.com/iburimskiy/purpletab/internal/i18n"
	"github.com/iburimskiy/purpletab/internal/prefs"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	plain   bool
	envName string
)

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "A new tab page with an animated wave background",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(0)
		if plain {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
		return config.LoadDotEnv()
	},
	RunE:          runPage,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print without colours")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "environment: production or development (default $PURPLETAB_ENV)")
	addPageFlags(rootCmd)
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(errStyle.Render("Error: " + err.Error()))
		os.Exit(1)
	}
}

// openStore opens the preference storage. Tests replace it.
var openStore = func() (prefs.Store, error) {
	return prefs.OpenGdataStore(config.AppName)
}

func openLoader() (*prefs.Loader, *i18n.Translator, error) {
	tr, err := i18n.New()
	if err != nil {
		return nil, nil, err
	}
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return prefs.NewLoader(store, tr), tr, nil
}
