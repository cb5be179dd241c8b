// Package config detects the terminal capabilities of the process from its
// environment: output should be colorized only if SHOULD_COLORIZE is true.
package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const APP_NAME = "seqds"

var (
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool

	// set if SHOULD_COLORIZE
	INITIAL_COLORS_SET bool
	INITIAL_FG_COLOR   termenv.Color
	INITIAL_BG_COLOR   termenv.Color
)

func init() {
	// FORCE COLOR

	if s, ok := os.LookupEnv("FORCE_COLOR"); ok {
		FORCE_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	//TERMCOLOR

	TRUECOLOR_COLORTERM = os.Getenv("COLORTERM") == "truecolor"

	//NO_COLOR

	if s, ok := os.LookupEnv("NO_COLOR"); ok {
		NO_COLOR = len(s) != 0 && s != "false" && s != "0"
	}

	//TERM

	term := os.Getenv("TERM")
	if strings.Contains(term, "256color") {
		TERM_256COLOR_CAPABLE = true
	}

	//

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE)

	if SHOULD_COLORIZE {
		INITIAL_COLORS_SET = true
		INITIAL_BG_COLOR = colorOrDefault(termenv.BackgroundColor(), termenv.ANSIBlack)
		INITIAL_FG_COLOR = colorOrDefault(termenv.ForegroundColor(), termenv.ANSIWhite)
	}
}

func colorOrDefault(color termenv.Color, defaultColor termenv.Color) termenv.Color {
	if _, ok := color.(termenv.NoColor); ok {
		return defaultColor
	}
	return color
}
