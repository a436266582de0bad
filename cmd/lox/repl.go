package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golox/internal"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const replHelp = `:help   show this message
:quit   leave the prompt (Ctrl+D works too)`

// runPrompt reads one line at a time. Globals survive across lines and an
// error on one line leaves the session usable.
func runPrompt(in *internal.Interpreter, printer stdPrinter, cfg config, logger logrus.FieldLogger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	loadHistory(ln, cfg.HistoryFile, logger)
	defer saveHistory(ln, cfg.HistoryFile, logger)

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return exitOK
		}
		if err != nil {
			logger.WithError(err).Error("reading input")
			return exitIOErr
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			if quit := handleCommand(printer, trimmed); quit {
				return exitOK
			}
			continue
		}

		in.Run(line)
		in.PrintErrors()
	}
}

func handleCommand(printer stdPrinter, command string) (quit bool) {
	switch command {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Println(replHelp)
	default:
		printer.notice("Unknown command %s, try :help", command)
	}
	return false
}

func loadHistory(ln *liner.State, path string, logger logrus.FieldLogger) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		logger.WithError(err).WithField("history", path).Warn("reading history")
	}
}

func saveHistory(ln *liner.State, path string, logger logrus.FieldLogger) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		logger.WithError(err).WithField("history", path).Warn("writing history")
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		logger.WithError(err).WithField("history", path).Warn("writing history")
	}
}
