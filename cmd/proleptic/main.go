// Command proleptic converts between proleptic Gregorian civil dates and
// ticks, the seconds elapsed since 0001-01-01 00:00:00 CE.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/reugn/go-proleptic/calendar"
	"github.com/reugn/go-proleptic/logger"
	"github.com/reugn/go-proleptic/schedule"
)

const usage = `Usage: proleptic [-config file] [-v] <command> [flags]

Commands:
  tick    convert a civil date time to a tick
  date    render a tick as a civil date
  offset  shift a tick by calendar units
  cron    list the ticks matched by a cron expression
  batch   evaluate a YAML file of conversion jobs

Run 'proleptic <command> -h' for the flags of a command.
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("proleptic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "path to the YAML configuration file")
	verbose := fs.Bool("v", false, "log at the debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *verbose {
		config.LogLevel = logger.LevelDebug.String()
	}
	l, err := config.newLogger(stderr)
	if err != nil {
		return err
	}
	logger.SetDefault(l)
	logger.Debug("Configuration loaded", "path", *configPath, "level", config.LogLevel)

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	command, rest := fs.Arg(0), fs.Args()[1:]
	switch command {
	case "tick":
		return runTick(rest, stdout, stderr)
	case "date":
		return runDate(rest, stdout, stderr, config)
	case "offset":
		return runOffset(rest, stdout, stderr, config)
	case "cron":
		return runCron(rest, stdout, stderr, config)
	case "batch":
		return runBatchCommand(rest, stdout, stderr, config)
	default:
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runTick(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("tick", stderr)
	year := fs.Int64("year", 1, "year, negative for BCE, never zero")
	month := fs.Int("month", 1, "month [1, 12]")
	day := fs.Int("day", 1, "day of month")
	hour := fs.Int("hour", 0, "hour [0, 23]")
	minute := fs.Int("minute", 0, "minute [0, 59]")
	second := fs.Int("second", 0, "second [0, 59]")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dt, err := calendar.NewDateTime(calendar.Year(*year), *month, *day, *hour, *minute, *second)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, int64(dt.Tick()))
	return err
}

func displayFlagSet(fs *flag.FlagSet, config Config) func() calendar.DisplayFlags {
	date := fs.Bool("date", config.Display.Date, "render the month and day")
	time := fs.Bool("time", config.Display.Time, "render the time of day")
	return func() calendar.DisplayFlags {
		return displayFlags(*date, *time)
	}
}

func runDate(args []string, stdout, stderr io.Writer, config Config) error {
	fs := newFlagSet("date", stderr)
	tick := fs.Int64("tick", 0, "tick to render")
	flags := displayFlagSet(fs, config)
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, err := fmt.Fprintln(stdout, calendar.TickToDisplayString(calendar.Tick(*tick), flags()))
	return err
}

func runOffset(args []string, stdout, stderr io.Writer, config Config) error {
	fs := newFlagSet("offset", stderr)
	tick := fs.Int64("tick", 0, "tick to shift")
	var o calendar.Offset
	fs.Int64Var(&o.Years, "years", 0, "years to add")
	fs.Int64Var(&o.Months, "months", 0, "months to add")
	fs.Int64Var(&o.Days, "days", 0, "days to add")
	fs.Int64Var(&o.Hours, "hours", 0, "hours to add")
	fs.Int64Var(&o.Minutes, "minutes", 0, "minutes to add")
	fs.Int64Var(&o.Seconds, "seconds", 0, "seconds to add")
	flags := displayFlagSet(fs, config)
	if err := fs.Parse(args); err != nil {
		return err
	}

	result := calendar.Tick(*tick).Add(o)
	logger.Debug("Offset applied", "from", *tick, "offset", o, "to", int64(result))
	_, err := fmt.Fprintf(stdout, "%d\t%s\n", int64(result), calendar.TickToDisplayString(result, flags()))
	return err
}

func runCron(args []string, stdout, stderr io.Writer, config Config) error {
	fs := newFlagSet("cron", stderr)
	expression := fs.String("expr", "", "cron expression")
	tick := fs.Int64("tick", 0, "tick to start after")
	n := fs.Int("n", 5, "number of ticks to list")
	flags := displayFlagSet(fs, config)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *expression == "" {
		return fmt.Errorf("%w: missing -expr", errUsage)
	}

	trigger, err := schedule.NewCronTrigger(*expression)
	if err != nil {
		return err
	}
	ticks, err := schedule.Series(trigger, calendar.Tick(*tick), *n)
	if err != nil {
		return err
	}
	for _, t := range ticks {
		if _, err := fmt.Fprintf(stdout, "%d\t%s\n", int64(t), calendar.TickToDisplayString(t, flags())); err != nil {
			return err
		}
	}
	return nil
}

func runBatchCommand(args []string, stdout, stderr io.Writer, config Config) error {
	fs := newFlagSet("batch", stderr)
	path := fs.String("file", "-", "YAML batch file, - for standard input")
	flags := displayFlagSet(fs, config)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if *path != "-" {
		f, err := os.Open(*path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	return runBatch(r, stdout, flags())
}
