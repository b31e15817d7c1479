package commands

import "github.com/mgutz/ansi"

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")
var green = ansi.ColorFunc("green+b")

// colorForScore follows the usual red-to-green strength scale: 0-2 red,
// 3 yellow, 4-5 green.
func colorForScore(score int) func(string) string {
	switch {
	case score <= 2:
		return red
	case score == 3:
		return yellow
	}

	return green
}
