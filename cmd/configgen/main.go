package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/tui"
	"github.com/MKhiriev/dental-site/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	answersPath := flag.String("answers", "", "YAML file with form answers used to prefill the form")
	batch := flag.Bool("batch", false, "print the override for -answers without opening the form")
	logPath := flag.String("log", "", "write logs to this file")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	log, closeLog, err := newLogger(*logPath, *logLevel)
	if err != nil {
		fail(err)
	}

	err = run(*answersPath, *batch, log)
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("configgen failed")
		closeLog()
		fail(err)
	}
	closeLog()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "configgen: %v\n", err)
	os.Exit(1)
}

func run(answersPath string, batch bool, log *logger.Logger) error {
	var prefill *tui.Answers
	if answersPath != "" {
		a, err := tui.LoadAnswers(answersPath)
		if err != nil {
			return err
		}
		prefill = a
	}

	var (
		out tui.Output
		err error
	)
	if batch {
		if prefill == nil {
			return errors.New("-batch requires -answers")
		}
		out, err = tui.Generate(*prefill)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		out, err = tui.New(buildInfo, prefill, log).Run(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Println("=== Minified JSON (SITE_CLINIC_CONFIG) ===")
	fmt.Println(out.Minified)
	fmt.Println()
	fmt.Println("=== Formatted JSON (SITE_CLINIC_CONFIG_FILE) ===")
	fmt.Println(out.Indented)
	return nil
}

// newLogger keeps log lines away from the terminal the form draws on.
func newLogger(path, level string) (*logger.Logger, func(), error) {
	if path == "" {
		return logger.NewWriterLogger(io.Discard, "configgen", level), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	return logger.NewWriterLogger(f, "configgen", level), func() { _ = f.Close() }, nil
}
