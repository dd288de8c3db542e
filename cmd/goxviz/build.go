package main

import (
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	goxviz "github.com/reoring/goxviz"
	"github.com/reoring/goxviz/builder"
	"github.com/reoring/goxviz/codec"
	"github.com/reoring/goxviz/config"
	"github.com/reoring/goxviz/i18n"
	"github.com/reoring/goxviz/log"
	"github.com/reoring/goxviz/scene"
)

const exitValidation = 3

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Replay a scene file through the builder and write one encoded message per frame",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "scene", Aliases: []string{"s"}, Usage: "scene file (YAML)", Required: true},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "builder config (.yaml, .yml or .toml)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: fmt.Sprintf("output format %v", codec.Names())},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every validation issue"},
		},
		Action: buildAction,
	}
}

func buildAction(c *cli.Context) error {
	level := zapcore.ErrorLevel
	if c.Bool("verbose") {
		level = zapcore.DebugLevel
	}
	logger := log.NewLoggerWithWriter(c.App.ErrWriter, level)
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	cfg := config.Default()
	if p := c.String("config"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		cfg = loaded
	}
	i18n.SetLanguage(cfg.Language)

	enc, err := codec.ByName(c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	sc, err := scene.Load(c.String("scene"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var w io.Writer = c.App.Writer
	if p := c.String("out"); p != "" {
		f, err := os.Create(p)
		if err != nil {
			return cli.Exit(fmt.Sprintf("cannot create %s: %v", p, err), 1)
		}
		defer f.Close()
		w = f
	}

	b := builder.New(builder.WithConfig(cfg), builder.WithLogger(logger))
	for i, frame := range sc.Frames {
		b.Reset()
		if err := scene.Apply(b, frame); err != nil {
			return cli.Exit(fmt.Sprintf("frame %d: %v", i, err), 1)
		}
		out, err := b.Encode(enc)
		if err != nil {
			if iss, ok := goxviz.AsIssues(err); ok {
				for _, it := range iss {
					sugar.Errorf("frame %d: %s at %s: %s", i, it.Code, it.Stream, it.Message)
				}
			}
			return cli.Exit(fmt.Sprintf("frame %d: %v", i, err), exitValidation)
		}
		if n := len(b.Validator().Warnings()); n > 0 {
			sugar.Warnf("frame %d: %d warning(s)", i, n)
		}
		if err := writeFrame(w, enc.Name(), i, out); err != nil {
			return err
		}
		sugar.Debugf("frame %d: wrote %d bytes", i, len(out))
	}
	sugar.Infof("built %d frame(s) as %s", len(sc.Frames), enc.Name())
	return nil
}

// writeFrame frames one encoded message: YAML documents are separated by
// "---", JSON messages are newline-delimited, MessagePack is written as is.
func writeFrame(w io.Writer, format string, i int, out []byte) error {
	if format == "yaml" && i > 0 {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return err
		}
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if format == "json" {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON Schema of the scene file format",
		Action: func(c *cli.Context) error {
			out, err := j.MarshalIndent(scene.JSONSchema(), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, string(out))
			return err
		},
	}
}
