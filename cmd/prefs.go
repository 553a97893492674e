package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/iburimskiy/purpletab/internal/prefs"
	"github.com/iburimskiy/purpletab/internal/theme"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and change saved preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every preference",
	Args:  cobra.NoArgs,
	RunE:  showPrefs,
}

var prefsSetCmd = &cobra.Command{
	Use:       "set KEY VALUE",
	Short:     "Change one preference",
	Args:      cobra.ExactArgs(2),
	ValidArgs: prefs.Keys,
	RunE:      setPref,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the defaults",
	Args:  cobra.NoArgs,
	RunE:  resetPrefs,
}

var prefsExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write preferences as YAML to FILE or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  exportPrefs,
}

var prefsImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace preferences with a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE:  importPrefs,
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd, prefsResetCmd, prefsExportCmd, prefsImportCmd)
	rootCmd.AddCommand(prefsCmd)
}

func showPrefs(cmd *cobra.Command, args []string) error {
	loader, _, err := openLoader()
	if err != nil {
		return err
	}
	p := loader.Load()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("Preferences"))
	for _, key := range prefs.Keys {
		if key == prefs.KeyShortcuts {
			continue
		}
		v, err := p.Get(key)
		if err != nil {
			return err
		}
		line := keyStyle.Render(key) + swatch(v) + v
		switch key {
		case prefs.KeyLineColor, prefs.KeyBackgroundColor:
			line += faintStyle.Render(" (" + theme.ColorName(v) + ")")
		case prefs.KeyFont:
			line += faintStyle.Render(" (" + theme.FindFont(v).Family + ")")
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, keyStyle.Render(prefs.KeyShortcuts)+fmt.Sprintf("%d saved", len(p.Shortcuts)))
	return nil
}

func setPref(cmd *cobra.Command, args []string) error {
	loader, tr, err := openLoader()
	if err != nil {
		return err
	}
	p := loader.Load()
	if err := p.Set(args[0], args[1], tr); err != nil {
		return err
	}
	if err := loader.Save(p); err != nil {
		return err
	}
	v, _ := p.Get(args[0])
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Saved")+" "+args[0]+" = "+v)
	return nil
}

func resetPrefs(cmd *cobra.Command, args []string) error {
	loader, _, err := openLoader()
	if err != nil {
		return err
	}
	if err := loader.Save(prefs.Defaults()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Preferences reset"))
	return nil
}

func exportPrefs(cmd *cobra.Command, args []string) error {
	loader, _, err := openLoader()
	if err != nil {
		return err
	}
	data, err := prefs.Export(loader.Load())
	if err != nil {
		return err
	}
	if len(args) == 0 {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Exported")+" "+args[0])
	return nil
}

func importPrefs(cmd *cobra.Command, args []string) error {
	loader, tr, err := openLoader()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	p, err := prefs.Import(data, tr)
	if err != nil {
		return err
	}
	if err := loader.Save(p); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Imported")+" "+strings.TrimSpace(args[0]))
	return nil
}
