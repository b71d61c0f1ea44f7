package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/skirmish/internal/app"
)

// ExitError carries a specific process exit code alongside its message.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// setFlag collects repeatable -set Name=Value pairs in order.
type setFlag []string

func (s *setFlag) String() string { return strings.Join(*s, ",") }

func (s *setFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating the program should exit cleanly (e.g. -help), or an
// ExitError for invalid input.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("skirmish", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Skirmish - a chess-variant engine configuration core.

Usage:
  skirmish [options]

Prints the engine identity and its full option table in the UCI grammar, or
the XBoard feature grammar when the Protocol option is set to xboard.

Options:
`)
		flagSet.PrintDefaults()
	}

	optionsFlag := flagSet.String("options", "", "Path to an option manifest file or directory. Empty uses the built-in table.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	var sets setFlag
	flagSet.Var(&sets, "set", "Assign an option at startup, as Name=Value. Repeatable.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	config, err := app.NewConfig(app.Config{
		OptionsPath: *optionsFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Sets:        sets,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
