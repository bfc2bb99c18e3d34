// Package cliargs implements the lenient argument scan used by the CLI.
// Unknown tokens never fail the scan; they are skipped and the remaining
// arguments are processed normally.
package cliargs

import "github.com/seabed-labs/shrimpsay/internal/logger"

// DefaultName is used when --name is never supplied.
const DefaultName = "World"

// Options is the result of scanning an argument list.
type Options struct {
	Name      string
	Shrimpsay bool
}

// Parse scans args left to right. --name consumes the following argument
// as its value, whatever it looks like; later occurrences overwrite
// earlier ones, and a trailing --name with nothing after it is treated as
// absent. --shrimpsay enables bubble rendering. Parse never fails.
func Parse(args []string) Options {
	opts := Options{Name: DefaultName}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--name":
			if i+1 < len(args) {
				i++
				opts.Name = args[i]
			} else {
				logger.Debug("--name given without a value, ignoring")
			}
		case "--shrimpsay":
			opts.Shrimpsay = true
		default:
			logger.Debug("ignoring argument %q", args[i])
		}
	}

	return opts
}
