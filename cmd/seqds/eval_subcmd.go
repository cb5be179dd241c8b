package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/inoxlang/seqds/exprconv"
	"github.com/inoxlang/seqds/internal/utils"
)

type evaluationResult struct {
	Input string  `json:"input"`
	Form  string  `json:"form"`
	Value float64 `json:"value"`
}

func EvaluateExpression(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	//read & check arguments
	flags := flag.NewFlagSet(mainSubCommand, flag.ExitOnError)
	var form string
	var jsonOutput bool

	flags.StringVar(&form, "form", POSTFIX_FORM, "form of the expression: "+POSTFIX_FORM+" or "+PREFIX_FORM)
	flags.BoolVar(&jsonOutput, "json", false, "print the result as JSON")

	moveFlagsStart(mainSubCommandArgs)

	if showHelp(flags, mainSubCommandArgs, outW) { //only show help
		return
	}

	if err := flags.Parse(mainSubCommandArgs); err != nil {
		fmt.Fprintln(errW, err)
		return
	}

	expr := strings.TrimSpace(flags.Arg(0))
	if expr == "" {
		fmt.Fprintln(errW, "missing expression")
		return ERROR_STATUS_CODE
	}

	var value float64
	var err error

	switch form {
	case POSTFIX_FORM:
		value, err = exprconv.EvaluatePostfix(expr)
	case PREFIX_FORM:
		value, err = exprconv.EvaluatePrefix(expr)
	default:
		fmt.Fprintf(errW, "unknown form '%s': use %s or %s\n", form, POSTFIX_FORM, PREFIX_FORM)
		return ERROR_STATUS_CODE
	}

	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	if jsonOutput {
		result := evaluationResult{
			Input: expr,
			Form:  form,
			Value: value,
		}
		fmt.Fprintf(outW, "%s\n", utils.Must(json.Marshal(result)))
	} else {
		fmt.Fprintln(outW, value)
	}
	return 0
}
