package cmd

import (
	"fmt"
	"strconv"

	"github.com/iburimskiy/purpletab/internal/shortcuts"
	"github.com/spf13/cobra"
)

var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "Manage the saved site shortcuts",
}

var shortcutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved shortcuts",
	Args:  cobra.NoArgs,
	RunE:  listShortcuts,
}

var shortcutsAddCmd = &cobra.Command{
	Use:   "add URL",
	Short: "Save a shortcut",
	Args:  cobra.ExactArgs(1),
	RunE:  addShortcut,
}

var shortcutsRemoveCmd = &cobra.Command{
	Use:   "remove N",
	Short: "Remove the shortcut at position N (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE:  removeShortcut,
}

func init() {
	shortcutsCmd.AddCommand(shortcutsListCmd, shortcutsAddCmd, shortcutsRemoveCmd)
	rootCmd.AddCommand(shortcutsCmd)
}

func listShortcuts(cmd *cobra.Command, args []string) error {
	loader, _, err := openLoader()
	if err != nil {
		return err
	}
	items := loader.Load().Shortcuts
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, faintStyle.Render("No shortcuts saved"))
		return nil
	}
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Shortcuts (%d/%d)", len(items), shortcuts.MaxShortcuts)))
	for i, s := range items {
		fmt.Fprintf(out, "%s %s\n", faintStyle.Render(fmt.Sprintf("%2d", i+1)), s.URL)
	}
	return nil
}

func addShortcut(cmd *cobra.Command, args []string) error {
	loader, _, err := openLoader()
	if err != nil {
		return err
	}
	p := loader.Load()
	list := shortcuts.NewList(p.Shortcuts)
	s, err := list.Add(args[0])
	if err != nil {
		return err
	}
	p.Shortcuts = list.Items()
	if err := loader.Save(p); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Added")+" "+s.URL)
	return nil
}

func removeShortcut(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid position %q", args[0])
	}
	loader, _, err := openLoader()
	if err != nil {
		return err
	}
	p := loader.Load()
	list := shortcuts.NewList(p.Shortcuts)
	s, err := list.Remove(n - 1)
	if err != nil {
		return err
	}
	p.Shortcuts = list.Items()
	if err := loader.Save(p); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Removed")+" "+s.URL)
	return nil
}
