//go:build !js
// +build !js

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Settings keys, also readable from BREWFX_* environment variables.
const (
	keyPort      = "port"
	keyStatic    = "static"
	keyMenu      = "menu"
	keyLogFormat = "log-format"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("BREWFX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyPort, 8080)
	v.SetDefault(keyStatic, ".")
	v.SetDefault(keyMenu, "config/menu-config.json")
	v.SetDefault(keyLogFormat, "auto")
	return v
}

// newLogger builds the process logger. "auto" picks the console writer
// when out is a terminal.
func newLogger(format string, out io.Writer) (zerolog.Logger, error) {
	switch format {
	case "json":
	case "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case "auto", "":
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q (want auto, console or json)", format)
	}
	return zerolog.New(out).With().Timestamp().Logger(), nil
}

// app holds what every subcommand shares.
type app struct {
	v      *viper.Viper
	logger zerolog.Logger
	out    io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: newViper(), logger: zerolog.Nop(), out: out}

	root := &cobra.Command{
		Use:           "brewfx",
		Short:         "Serve and inspect the café site's drink-reactive effects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.v.GetString(keyLogFormat), os.Stderr)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String(keyMenu, "config/menu-config.json", "drink catalog file")
	flags.String(keyLogFormat, "auto", "log format: auto, console or json")
	_ = a.v.BindPFlag(keyMenu, flags.Lookup(keyMenu))
	_ = a.v.BindPFlag(keyLogFormat, flags.Lookup(keyLogFormat))

	root.AddCommand(newServeCmd(a), newPalettesCmd(a), newCatalogCmd(a))
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
