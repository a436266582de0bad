package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"golox/internal"

	"github.com/sirupsen/logrus"
)

// Exit codes follow sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("lox", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	logLevel := flags.String("log-level", "", "log level (panic, fatal, error, warning, info, debug, trace)")
	noColor := flags.Bool("no-color", false, "disable colored diagnostics")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: lox [flags] [script]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIOErr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noColor {
		disabled := false
		cfg.Color = &disabled
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	printer := newStdPrinter(cfg.colorEnabled())
	in := internal.NewInterpreter(printer, internal.WithLogger(logger))

	switch flags.NArg() {
	case 0:
		return runPrompt(in, printer, cfg, logger)
	case 1:
		return runFile(in, flags.Arg(0), logger)
	default:
		flags.Usage()
		return exitUsage
	}
}

func newLogger(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.SetLevel(parsed)
	return logger, nil
}

func runFile(in *internal.Interpreter, path string, logger logrus.FieldLogger) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.WithError(err).Error("resolving script path")
		return exitIOErr
	}

	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		logger.WithError(err).WithField("script", absPath).Error("reading script")
		return exitIOErr
	}

	logger.WithField("script", absPath).Debug("running script")
	result := in.Run(string(b))
	in.PrintErrors()

	return exitCode(result)
}

func exitCode(result internal.Result) int {
	switch result {
	case internal.ResultStaticError:
		return exitDataErr
	case internal.ResultRuntimeError:
		return exitSoftware
	}
	return exitOK
}
