package prettyfmt

import (
	"bufio"
	"fmt"

	"github.com/inoxlang/seqds/internal/utils"
	"github.com/muesli/termenv"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	THREE_DOTS = []byte{'.', '.', '.'}
)

// A Writer writes to a terminal, colorizing what it writes if Colorize is
// true. The Write* methods panic on write errors.
type Writer struct {
	writer *bufio.Writer

	Colorize bool
	Colors   *Colors
}

func NewWriter(writer *bufio.Writer, colorize bool, colors *Colors) Writer {
	return Writer{
		writer:   writer,
		Colorize: colorize,
		Colors:   colors,
	}
}

func (w Writer) WriteString(str string) {
	utils.Must(w.writer.WriteString(str))
}

func (w Writer) WriteStringF(fmtStr string, args ...any) {
	utils.Must(fmt.Fprintf(w.writer, fmtStr, args...))
}

func (w Writer) WriteBytes(b []byte) {
	utils.Must(w.writer.Write(b))
}

func (w Writer) WriteByte(b byte) {
	utils.PanicIfErr(w.writer.WriteByte(b))
}

func (w Writer) WriteLF() {
	utils.PanicIfErr(w.writer.WriteByte('\n'))
}

func (w Writer) WriteAnsiReset() {
	utils.Must(w.writer.Write(ANSI_RESET_SEQUENCE))
}

// WriteColored writes str surrounded by the given color sequence and the ANSI
// reset sequence, or just str if the writer does not colorize.
func (w Writer) WriteColored(sequence []byte, str string) {
	if !w.Colorize {
		w.WriteString(str)
		return
	}
	w.WriteBytes(sequence)
	w.WriteString(str)
	w.WriteAnsiReset()
}

func (w Writer) Flush() {
	utils.PanicIfErr(w.writer.Flush())
}

// WriteElements writes the elements between brackets, at most
// MAX_PRINTED_ELEMENT_COUNT of them: additional elements are elided.
func WriteElements[T any](w Writer, elements []T) {
	printedCount := utils.Min(len(elements), MAX_PRINTED_ELEMENT_COUNT)

	w.WriteByte('[')
	for i := 0; i < printedCount; i++ {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteColored(w.Colors.Element, fmt.Sprintf("%v", elements[i]))
	}
	if len(elements) > printedCount {
		if printedCount > 0 {
			w.WriteByte(' ')
		}
		w.WriteBytes(THREE_DOTS)
	}
	w.WriteByte(']')
}
