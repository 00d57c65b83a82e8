// Command gocli-demo reads its arguments with gocli, then walks a progress
// bar over a number of steps.
//
//	gocli-demo [-v] [--delay=0.02] [--config=args.yaml] [--lang=fr] source [count]
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/napalu/gocli"
	"github.com/napalu/gocli/declare"
	"github.com/napalu/gocli/errs"
	"github.com/napalu/gocli/i18n"
	"github.com/napalu/gocli/progress"
	"github.com/napalu/gocli/style"
	"github.com/napalu/gocli/types"
	"github.com/napalu/gocli/util"
	"golang.org/x/text/language"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "gocli-demo",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if !util.IsTerminal(w) || termenv.EnvNoColor() {
		logger.SetColorProfile(termenv.Ascii)
	}

	return logger
}

func declareArguments(stdout io.Writer, logger *log.Logger) (*gocli.Arguments, error) {
	return gocli.NewWith(
		gocli.WithStdout(stdout),
		gocli.WithLogger(logger),
		gocli.WithDeclaration("source", gocli.Options{
			"description": "name of the task",
			"required":    true,
		}),
		gocli.WithArgument(gocli.MustArg("count",
			gocli.WithDescription("number of steps"),
			gocli.WithCastTo(types.CastInteger),
			gocli.WithDefaultValue(10))),
		gocli.WithArgument(gocli.MustArg("delay",
			gocli.WithDescription("seconds between two steps"),
			gocli.WithLongPrefix("delay"),
			gocli.WithCastTo(types.CastFloat),
			gocli.WithDefaultValue(0.02))),
		gocli.WithArgument(gocli.MustArg("verbose",
			gocli.WithDescription("log parsing details"),
			gocli.WithPrefix("v"),
			gocli.WithLongPrefix("verbose"),
			gocli.SetNoValue(true))),
		gocli.WithArgument(gocli.MustArg("help",
			gocli.WithDescription("show this help"),
			gocli.WithPrefix("h"),
			gocli.WithLongPrefix("help"),
			gocli.SetNoValue(true))),
		gocli.WithArgument(gocli.MustArg("config",
			gocli.WithDescription("YAML or TOML file declaring more arguments"),
			gocli.WithLongPrefix("config"),
			gocli.WithDefaultValue(""))),
		gocli.WithArgument(gocli.MustArg("lang",
			gocli.WithDescription("language of messages"),
			gocli.WithLongPrefix("lang"),
			gocli.WithDefaultValue("en"))),
	)
}

func run(argv []string, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	printer := style.NewAuto(stdout, style.WithLogger(logger))

	args, err := declareArguments(stdout, logger)
	if err != nil {
		printer.Exception(err, true)
		return exitFailure
	}

	parseErr := args.Parse(argv...)
	if verbose, _ := args.GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if lang, _ := args.GetString("lang"); lang != "en" {
		tag := i18n.Default().Match(language.Make(lang))
		args.SetLanguage(tag)
		errs.UpdateMessageProvider(i18n.NewBundleMessageProviderFor(i18n.Default(), tag))
		logger.Debug("language selected", "lang", tag)
		parseErr = args.Parse(argv...)
	}

	if config, _ := args.GetString("config"); config != "" {
		if err := declare.Merge(args, config); err != nil {
			printer.Error(err.Error())
			return exitFailure
		}
		logger.Debug("declarations merged", "file", config, "arguments", args.Count())
		parseErr = args.Parse(argv...)
	}

	if help, _ := args.GetBool("help"); help {
		args.PrintArguments()
		fmt.Fprintln(stdout)
		return exitOK
	}
	if parseErr != nil {
		if errs.IsParseError(parseErr) {
			printer.Error(parseErr.Error())
			args.PrintArguments()
			fmt.Fprintln(stdout)
			return exitUsage
		}
		printer.Exception(parseErr, true)
		return exitFailure
	}

	return work(args, printer, stdout, logger)
}

func work(args *gocli.Arguments, printer *style.Printer, stdout io.Writer, logger *log.Logger) int {
	source, _ := args.GetString("source")
	count, _ := args.GetInt("count")
	delay, _ := args.GetFloat("delay")

	bar, err := progress.New(count,
		progress.WithOutput(stdout),
		progress.WithTitle(source),
		progress.WithTimeDisplay(true),
		progress.WithMemoryDisplay(true),
		progress.WithLogger(logger))
	if err != nil {
		printer.Error(err.Error())
		return exitFailure
	}

	pause := time.Duration(delay * float64(time.Second))
	started := time.Now()
	bar.Start()
	for !bar.IsFinished() {
		time.Sleep(pause)
		bar.Advance(1)
	}
	fmt.Fprintln(stdout)

	printer.Tag(fmt.Sprintf("<b>%s</b>: <fggreen>%d</fggreen> steps in <fgcyan>%s</fgcyan>\n",
		source, bar.Current(), time.Since(started).Round(time.Millisecond)))
	printer.Done()

	return exitOK
}
