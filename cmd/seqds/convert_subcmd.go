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

type conversionResult struct {
	Input  string `json:"input"`
	Form   string `json:"form"`
	Output string `json:"output"`
}

func ConvertExpression(mainSubCommand string, mainSubCommandArgs []string, outW, errW io.Writer) (exitCode int) {
	//read & check arguments
	flags := flag.NewFlagSet(mainSubCommand, flag.ExitOnError)
	var targetForm string
	var jsonOutput bool

	flags.StringVar(&targetForm, "to", POSTFIX_FORM, "target form: "+POSTFIX_FORM+" or "+PREFIX_FORM)
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

	var converted string
	var err error

	switch targetForm {
	case POSTFIX_FORM:
		converted, err = exprconv.InfixToPostfix(expr)
	case PREFIX_FORM:
		converted, err = exprconv.InfixToPrefix(expr)
	default:
		fmt.Fprintf(errW, "unknown form '%s': use %s or %s\n", targetForm, POSTFIX_FORM, PREFIX_FORM)
		return ERROR_STATUS_CODE
	}

	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	if jsonOutput {
		result := conversionResult{
			Input:  expr,
			Form:   targetForm,
			Output: converted,
		}
		fmt.Fprintf(outW, "%s\n", utils.Must(json.Marshal(result)))
	} else {
		fmt.Fprintln(outW, converted)
	}
	return 0
}
