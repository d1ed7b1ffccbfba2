// brandkit - A brand colour palette toolkit
//
// brandkit generates harmonious brand palettes, checks WCAG contrast,
// designs CSS gradients and exports them for web projects.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/brandkit/internal/cli"
)

func main() {
	loadDotEnv(hclog.New(&hclog.LoggerOptions{
		Name:   "brandkit",
		Output: os.Stderr,
		Level:  hclog.Warn,
	}), ".env")

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv loads path into the environment. A missing file is fine since
// BRANDKIT_* variables may come from the shell; anything else is logged.
func loadDotEnv(logger hclog.Logger, path string) {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	logger.Warn("failed to load environment file", "path", path, "error", err)
}
