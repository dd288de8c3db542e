// Package main provides the goxviz CLI.
//
// Usage:
//
//	goxviz build --scene scene.yaml [--config builder.yaml] [--format json|msgpack|yaml] [--out file]
//	goxviz schema
//	goxviz version
//
// Exit codes:
//   - 0: success
//   - 1: usage, I/O or configuration error
//   - 3: a frame failed validation
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:           "goxviz",
		Usage:          "Build and encode XVIZ messages from scene files",
		Version:        version,
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			buildCommand(),
			schemaCommand(),
			{
				Name:  "version",
				Usage: "Show version information",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintln(c.App.Writer, version)
					return err
				},
			},
		},
	}
}

// exitErrHandler preserves exit codes from cli.Exit.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
