package game

import (
	"image/color"

	"github.com/ncruces/zenity"
)

// Dialogs shows native prompts. Every method blocks until the user answers
// and returns zenity.ErrCanceled when they dismiss the dialog.
type Dialogs interface {
	Color(title string, initial color.Color) (color.Color, error)
	Choose(title string, items []string, selected string) (string, error)
	Entry(title, prompt string) (string, error)
	Notify(title, text string) error
}

// ZenityDialogs implements Dialogs with the platform's native dialogs.
type ZenityDialogs struct{}

func (ZenityDialogs) Color(title string, initial color.Color) (color.Color, error) {
	return zenity.SelectColor(zenity.Title(title), zenity.Color(initial))
}

func (ZenityDialogs) Choose(title string, items []string, selected string) (string, error) {
	opts := []zenity.Option{zenity.Title(title)}
	if selected != "" {
		opts = append(opts, zenity.DefaultItems(selected))
	}
	return zenity.List(title, items, opts...)
}

func (ZenityDialogs) Entry(title, prompt string) (string, error) {
	return zenity.Entry(prompt, zenity.Title(title))
}

func (ZenityDialogs) Notify(title, text string) error {
	return zenity.Notify(text, zenity.Title(title))
}
