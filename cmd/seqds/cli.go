package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/inoxlang/seqds/exprconv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

const (
	CONVERT_SUBCMD               = "convert"
	EVAL_SUBCMD                  = "eval"
	EVAL_ALIAS_SUBCMD            = "e"
	DEMO_SUBCMD                  = "demo"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"

	POSTFIX_FORM = "postfix"
	PREFIX_FORM  = "prefix"
)

var (
	SUBCOMMANDS = []string{
		CONVERT_SUBCMD, EVAL_SUBCMD, EVAL_ALIAS_SUBCMD, DEMO_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	SUPPORTED_OPERATORS = strings.Join(exprconv.Operators(), " ")

	CLI_SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{CONVERT_SUBCMD, "convert an infix expression to its " + POSTFIX_FORM + " or " + PREFIX_FORM + " form (operators: " + SUPPORTED_OPERATORS + ")"},
		{EVAL_SUBCMD, "evaluate a " + POSTFIX_FORM + " or " + PREFIX_FORM + " expression (operators: " + SUPPORTED_OPERATORS + ")"},
		{EVAL_ALIAS_SUBCMD, "alias for eval"},
		{DEMO_SUBCMD, "walk through the operations of a positional list"},

		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by adding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	CLI_SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	SEQDS_CMD_HELP = "commands:\n"

	cmd = &complete.Command{
		Sub: map[string]*complete.Command{
			CONVERT_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"to":   predict.Set{POSTFIX_FORM, PREFIX_FORM},
					"json": predict.Nothing,
				},
			},
			EVAL_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"form": predict.Set{POSTFIX_FORM, PREFIX_FORM},
					"json": predict.Nothing,
				},
			},
			EVAL_ALIAS_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"form": predict.Set{POSTFIX_FORM, PREFIX_FORM},
					"json": predict.Nothing,
				},
			},
			DEMO_SUBCMD: {
				Flags: map[string]complete.Predictor{
					"log-level": predict.Set{"trace", "debug", "info", "warn", "error"},
					"light":     predict.Nothing,
				},
			},
			INSTALL_COMPLETIONS_SUBCMD:   {},
			UNINSTALL_COMPLETIONS_SUBCMD: {},
			HELP_SUBCMD:                  {},
		},
	}
)

func init() {
	for _, entry := range CLI_SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		SEQDS_CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	SEQDS_CMD_HELP += "\nType `" + COMMAND_NAME + " help <command>` to get command-specific help.\n"
}

func moveFlagsStart(args []string) {
	index := 0

	for i := range args {
		if args[i] == "--" {
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			temp := args[i]
			args[i] = args[index]
			args[index] = temp
			index++
		}
	}
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {

		cmd := flags.Name()
		if desc, ok := CLI_SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}
