// Command monetary formats, parses and rounds monetary amounts.
//
// Usage:
//
//	monetary [-config FILE] [-v] [-log-format text|json|logfmt] COMMAND [ARGS]
//
// Commands:
//
//	format [-style standard|fast|rounded] CURRENCY AMOUNT
//	parse  [-style standard|fast|rounded] TEXT...
//	round  [-cash] [-at RFC3339] [-id ID] TEXT...
//	ids
//
// The format order is read from the dotenv file given by -config and then
// from the environment variable MONETARY_toStringFormatOrder.
//
// The round command uses the default rounding registry. Without -at it
// applies the base roundings; with -at it applies cutovers in effect at that
// time, e.g. SEK cash amounts round to 0.50 before October 2010 and to whole
// kronor afterwards.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/govalues/decimal"
	"github.com/govalues/monetary"
)

const envPrefix = "MONETARY_"

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// env is shared by all commands.
type env struct {
	conf     monetary.Config
	registry *monetary.RoundingRegistry
	logger   *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"format": formatCmd,
	"parse":  parseCmd,
	"round":  roundCmd,
	"ids":    idsCmd,
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("monetary", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "dotenv `file` with format settings")
	verbose := fs.Bool("v", false, "log debug messages")
	logFormat := fs.String("log-format", "text", "log `format`: text, json or logfmt")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: monetary [flags] %v [args]\n", strings.Join(commandNames(), "|"))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := newLogger(stderr, *verbose, *logFormat)
	conf, err := loadConfig(*configFile, logger)
	if err != nil {
		return err
	}
	e := &env{
		conf:     conf,
		registry: monetary.DefaultRoundingRegistry(),
		logger:   logger,
		stdout:   stdout,
		stderr:   stderr,
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing command", errUsage)
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	logger.Debug("running command", "command", name, "args", fs.Args()[1:])
	return cmd(e, fs.Args()[1:])
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newLogger(w io.Writer, verbose bool, format string) *slog.Logger {
	formatters := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"logfmt": log.LogfmtFormatter,
		"text":   log.TextFormatter,
	}
	formatter, ok := formatters[format]
	if !ok {
		formatter = log.TextFormatter
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:     level,
		Prefix:    "monetary",
		Formatter: formatter,
	})
	logger := slog.New(handler)
	if !ok {
		logger.Warn("unknown log format, using text", "format", format)
	}
	return logger
}

// loadConfig chains the dotenv file, if any, before the environment.
func loadConfig(filename string, logger *slog.Logger) (monetary.Config, error) {
	envConf := monetary.EnvConfig{Prefix: envPrefix}
	if filename == "" {
		return envConf, nil
	}
	file, err := monetary.ReadConfigFile(filename)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config file", "file", filename, "keys", len(file))
	return monetary.ChainConfig{file, envConf}, nil
}

func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func styleFlag(fs *flag.FlagSet) *string {
	return fs.String("style", monetary.StandardVariant.String(), "amount `variant`: standard, fast or rounded")
}

func formatCmd(e *env, args []string) error {
	fs := newFlagSet(e, "format")
	style := styleFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: format wants CURRENCY AMOUNT, got %v arguments", errUsage, fs.NArg())
	}
	v, err := monetary.ParseVariant(*style)
	if err != nil {
		return err
	}
	c, err := monetary.ParseCurr(fs.Arg(0))
	if err != nil {
		return err
	}
	d, err := decimal.Parse(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", fs.Arg(1), err)
	}
	a, err := v.New(c, d)
	if err != nil {
		return err
	}
	f := monetary.NewTextFormat(v, e.conf)
	e.logger.Debug("formatting amount", "amount", a.String(), "order", f.Order().String())
	return writeLine(e.stdout, f.Format(&a))
}

func parseCmd(e *env, args []string) error {
	fs := newFlagSet(e, "parse")
	style := styleFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := monetary.ParseVariant(*style)
	if err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	a, err := monetary.NewTextFormat(v, e.conf).Parse(text)
	if err != nil {
		return err
	}
	e.logger.Debug("parsed amount", "text", text, "amount", a.String(), "scale", a.Scale())
	return writeLine(e.stdout, a.String())
}

func roundCmd(e *env, args []string) error {
	fs := newFlagSet(e, "round")
	style := styleFlag(fs)
	cash := fs.Bool("cash", false, "use the cash rounding of the currency")
	at := fs.String("at", "", "resolve cutovers at the RFC 3339 `time`; without it base roundings apply")
	id := fs.String("id", "", "use the custom rounding with the given `id`")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id != "" && (*cash || *at != "") {
		return fmt.Errorf("%w: -id cannot be combined with -cash or -at", errUsage)
	}
	v, err := monetary.ParseVariant(*style)
	if err != nil {
		return err
	}
	a, err := monetary.NewTextFormat(v, e.conf).Parse(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}

	var (
		r     monetary.Rounding
		found bool
	)
	switch {
	case *id != "":
		r, found = e.registry.CustomRounding(*id)
	case *at != "":
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("parsing -at: %w", err)
		}
		if *cash {
			r, found = e.registry.CashRoundingAt(a.Curr(), t)
		} else {
			r, found = e.registry.StandardRoundingAt(a.Curr(), t)
		}
	case *cash:
		r, found = e.registry.CashRounding(a.Curr())
	default:
		r, found = e.registry.StandardRounding(a.Curr())
	}
	if !found {
		return fmt.Errorf("no rounding found for %v", a.Curr())
	}

	b, err := r.Apply(a)
	if err != nil {
		return err
	}
	e.logger.Debug("rounded amount", "rounding", r.String(), "from", a.String(), "to", b.String())
	return writeLine(e.stdout, b.String())
}

func idsCmd(e *env, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: ids takes no arguments", errUsage)
	}
	for _, id := range e.registry.CustomRoundingIDs() {
		if err := writeLine(e.stdout, id); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
