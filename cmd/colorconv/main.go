// Command colorconv converts colors between hex, rgb() and hsl() notation.
//
// Usage:
//
//	colorconv [-to hex|rgb|hsl] [-alpha a] color...
//	colorconv [-to hex|rgb|hsl] [-alpha a] -palette brand.yaml
//
// Each argument may be any notation or a CSS color name. With -palette the
// whole YAML palette is converted and written to stdout as YAML.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/colorfmt"
	"github.com/gogpu/colorfmt/internal/config"
	"github.com/gogpu/colorfmt/palette"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load("colorconv", args)
	if err != nil {
		fmt.Fprintf(stderr, "colorconv: %v\n", err)
		return 2
	}
	colorfmt.SetLogger(cfg.Logger(stderr))

	if cfg.Palette != "" {
		if err := convertPalette(cfg, stdout); err != nil {
			fmt.Fprintf(stderr, "colorconv: %v\n", err)
			return 1
		}
		return 0
	}

	if len(cfg.Args) == 0 {
		fmt.Fprintln(stderr, "usage: colorconv [-to hex|rgb|hsl] [-alpha a] [-palette file.yaml] color...")
		return 2
	}

	status := 0
	for _, in := range cfg.Args {
		out, err := colorfmt.Convert(in, cfg.Target, cfg.Options()...)
		if err != nil {
			fmt.Fprintf(stderr, "colorconv: %v\n", err)
			status = 1
			continue
		}
		fmt.Fprintln(stdout, out)
	}
	return status
}

func convertPalette(cfg *config.Config, w io.Writer) error {
	p, err := palette.Load(cfg.Palette)
	if err != nil {
		return err
	}
	converted, convErr := p.Convert(cfg.Target, cfg.Options()...)
	data, err := converted.Encode()
	if err != nil {
		return errors.Join(convErr, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return convErr
}
