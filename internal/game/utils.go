package game

import (
	"image/color"

	"github.com/iburimskiy/purpletab/internal/theme"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fitText cuts s to at most n runes, marking the cut with "...".
func fitText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// solid parses hex as an opaque colour, using fallback when it is invalid.
func solid(hex string, fallback color.NRGBA) color.NRGBA {
	c, err := theme.ParseHex(hex)
	if err != nil {
		return fallback
	}
	c.A = 0xff
	return c
}
