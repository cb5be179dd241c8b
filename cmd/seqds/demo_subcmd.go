package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"github.com/inoxlang/seqds/internal/config"
	"github.com/inoxlang/seqds/internal/prettyfmt"
	"github.com/inoxlang/seqds/internal/utils"
	"github.com/inoxlang/seqds/listcoll"
	"github.com/rs/zerolog"
)

// RunDemo walks through the operations of a positional list: additions at
// both ends, position-relative reads, replacement, deletion, the rejection of
// stale and foreign positions, and iteration. Each step is logged to errW
// and the list state is written to outW.
func RunDemo(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	//read & check arguments
	flags := flag.NewFlagSet(mainSubCommand, flag.ExitOnError)
	var logLevelName string
	var lightMode bool

	flags.StringVar(&logLevelName, "log-level", "info", "minimum level of the step logs")
	flags.BoolVar(&lightMode, "light", false, "use colors suited to light backgrounds")

	moveFlagsStart(mainSubCommandArgs)

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return
	}

	if err := flags.Parse(mainSubCommandArgs); err != nil {
		fmt.Fprintln(errW, err)
		return
	}

	logLevel, err := zerolog.ParseLevel(logLevelName)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	consoleWriter := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = errW
		w.NoColor = !config.SHOULD_COLORIZE
		w.TimeFormat = "15:04:05"
	})
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger().Level(logLevel)

	colors := &prettyfmt.DEFAULT_DARKMODE_COLORS
	if lightMode {
		colors = &prettyfmt.DEFAULT_LIGHTMODE_COLORS
	}

	w := prettyfmt.NewWriter(bufio.NewWriter(outW), config.SHOULD_COLORIZE, colors)
	defer w.Flush()

	//build a small list

	list := listcoll.NewPositionalList[int]()
	logger.Info().Str("op", "create").Str("list", list.ID()).Msg("created an empty positional list")
	writeListState(w, list)

	ten := list.AddLast(10)
	logger.Info().Str("op", "AddLast").Int("element", 10).Msg("added at the back")

	list.AddLast(20)
	logger.Info().Str("op", "AddLast").Int("element", 20).Msg("added at the back")

	five := list.AddFirst(5)
	logger.Info().Str("op", "AddFirst").Int("element", 5).Msg("added at the front")
	writeListState(w, list)

	//positions designate elements, not offsets

	afterFive := utils.Must(list.After(five))
	logger.Info().Str("op", "After").Int("element", afterFive.Element()).Msg("read the element after the front")

	prior := utils.Must(list.Replace(ten, 11))
	logger.Info().Str("op", "Replace").Int("prior", prior).Int("element", 11).Msg("replaced an element, the position is still valid")
	writeListState(w, list)

	twenty := list.Last()
	deleted := utils.Must(list.Delete(twenty))
	logger.Info().Str("op", "Delete").Int("element", deleted).Msg("deleted the back element")
	writeListState(w, list)

	//stale and foreign positions are rejected

	_, err = list.Delete(twenty)
	logger.Info().Str("op", "Delete").Msg("deleted positions are rejected")
	writeError(w, err)

	otherList := listcoll.NewPositionalList[int]()
	foreign := otherList.AddFirst(1)
	_, err = list.Delete(foreign)
	logger.Info().Str("op", "Delete").Msg("positions of other lists are rejected")
	writeError(w, err)

	//iterate

	it := list.Iterator()
	for it.Next() {
		logger.Debug().Int("element", it.Value()).Msg("visited an element")
	}
	if it.Err() != nil {
		writeError(w, it.Err())
		return ERROR_STATUS_CODE
	}

	w.WriteColored(w.Colors.SuccessColor, "done")
	w.WriteLF()
	return 0
}

func writeListState(w prettyfmt.Writer, list *listcoll.PositionalList[int]) {
	w.WriteColored(w.Colors.ContainerName, "list")
	w.WriteByte(' ')
	prettyfmt.WriteElements(w, list.Elements())
	w.WriteColored(w.Colors.DiscreteColor, fmt.Sprintf(" (length %d)", list.Len()))
	w.WriteLF()
	w.Flush()
}

func writeError(w prettyfmt.Writer, err error) {
	w.WriteColored(w.Colors.ErrorColor, err.Error())
	w.WriteLF()
	w.Flush()
}
