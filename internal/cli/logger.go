package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger configures the command logger. Verbose runs log everything at
// debug level, quiet runs discard logs, and the default shows warnings.
func newLogger(verbose, quiet bool, w io.Writer) hclog.Logger {
	switch {
	case verbose:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "brandkit",
			Output: w,
			Level:  hclog.Debug,
		})
	case quiet:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "brandkit",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	default:
		return hclog.New(&hclog.LoggerOptions{
			Name:   "brandkit",
			Output: w,
			Level:  hclog.Warn,
		})
	}
}
