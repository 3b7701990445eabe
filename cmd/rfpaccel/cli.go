package rfpaccel

import (
	"fmt"
	"log"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run parses flags and executes the selected command.
func Run(args []string) {
	setConfigPath(extractFlag(args, "-f", "--config"))
	setLogLevel(extractFlag(args, "", "--log-level"))

	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		// A bare -v/--version has no command; report the version instead
		// of the missing-command error.
		if opts.Version {
			fmt.Println(Version())
			return
		}
		log.Fatalf("%v", err)
	}
	if opts.Version {
		fmt.Println(Version())
	}
}

// extractFlag scans raw args for a flag value before full parsing so that
// sub-command Execute can consume it.
func extractFlag(args []string, short, long string) string {
	for i, arg := range args {
		if (short != "" && arg == short) || arg == long {
			if i+1 < len(args) {
				return args[i+1]
			}
			continue
		}
		if strings.HasPrefix(arg, long+"=") {
			return strings.TrimPrefix(arg, long+"=")
		}
	}
	return ""
}
