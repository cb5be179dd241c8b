// Package prettyfmt writes colorized, human-oriented dumps of the containers
// of this module to a terminal.
package prettyfmt

import "github.com/muesli/termenv"

// MAX_PRINTED_ELEMENT_COUNT is the maximum number of elements written by
// WriteElements, additional elements are elided.
const MAX_PRINTED_ELEMENT_COUNT = 10

var (
	DEFAULT_DARKMODE_COLORS = Colors{
		ContainerName: GetFullColorSequence(termenv.ANSIBlue, false),
		Element:       GetFullColorSequence(termenv.ANSIBrightGreen, false),
		DiscreteColor: GetFullColorSequence(termenv.ANSIBrightBlack, false),
		SuccessColor:  GetFullColorSequence(termenv.ANSIBrightGreen, false),
		ErrorColor:    GetFullColorSequence(termenv.ANSIRed, false),
	}

	DEFAULT_LIGHTMODE_COLORS = Colors{
		ContainerName: GetFullColorSequence(termenv.ANSI256Color(26), false),
		Element:       GetFullColorSequence(termenv.ANSI256Color(28), false),
		DiscreteColor: GetFullColorSequence(termenv.ANSIBrightBlack, false),
		SuccessColor:  GetFullColorSequence(termenv.ANSIBrightGreen, false),
		ErrorColor:    GetFullColorSequence(termenv.ANSIRed, false),
	}
)

// Colors holds the ANSI sequences used to colorize each kind of written text.
type Colors struct {
	ContainerName, Element, DiscreteColor,
	SuccessColor, ErrorColor []byte
}

// GetFullColorSequence returns the complete ANSI sequence that sets the
// foreground (or the background if bg is true) to the given color.
func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}
