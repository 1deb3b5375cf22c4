package main

import (
	"fmt"
	"io"
)

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	switch cmd := args[0]; cmd {
	case CmdNameFormat:
		fmt.Fprintln(stdout, HelpFormatUsage)
	case CmdNameEscape:
		fmt.Fprintln(stdout, HelpEscapeUsage)
	case CmdNameUnescape:
		fmt.Fprintln(stdout, HelpUnescapeUsage)
	case CmdNameVersion:
		fmt.Fprintln(stdout, HelpVersionUsage)
	case CmdNameHelp:
		fmt.Fprintln(stdout, HelpHelpUsage)
	default:
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, cmd)
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}

	return ExitCodeSuccess
}
