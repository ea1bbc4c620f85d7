// Command notifycheck validates a batch of customer records stored in a YAML
// or JSON file and prints the notifications of every invalid record.
//
//	notifycheck [-lang en] [-format text|json] [-env .env] <file.yaml|file.json>
//
// Exit status is 0 when every record is valid, 1 when any notification was
// produced and 2 on usage or input errors.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/notifykit/internal/customer"
	"github.com/dmitrymomot/notifykit/pkg/config"
	"github.com/dmitrymomot/notifykit/pkg/i18n"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/notify"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitUsage   = 2
)

const (
	outputText = "text"
	outputJSON = "json"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	AppName    string `env:"APP_NAME" envDefault:"notifycheck"`
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"LOG_FORMAT"`
	Language   string `env:"NOTIFY_LANG" envDefault:"en"`
	LocalesDir string `env:"NOTIFY_LOCALES_DIR"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, time.Now()))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, now time.Time) int {
	fs := flag.NewFlagSet("notifycheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lang := fs.String("lang", "", "message language (default $NOTIFY_LANG)")
	output := fs.String("format", outputText, "output format: text or json")
	locales := fs.String("locales", "", "directory with message overrides (default $NOTIFY_LOCALES_DIR)")
	envFile := fs.String("env", "", "load variables from this .env file first")
	goNames := fs.Bool("go-names", false, "report Go field names instead of json keys")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: notifycheck [flags] <file.yaml|file.json>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitValid
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	if *output != outputText && *output != outputJSON {
		fmt.Fprintf(stderr, "notifycheck: unknown output format %q\n", *output)
		return exitUsage
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintf(stderr, "notifycheck: %v\n", err)
			return exitUsage
		}
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "notifycheck: %v\n", err)
		return exitUsage
	}
	if *lang == "" {
		*lang = cfg.Language
	}
	if *locales == "" {
		*locales = cfg.LocalesDir
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "notifycheck: %v\n", err)
		return exitUsage
	}

	path := fs.Arg(0)
	ctx = i18n.SetLocale(ctx, *lang)
	log = log.With(logger.Source(path))

	messages, err := notify.LoadMessages(ctx, *locales, i18n.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "failed to load messages", logger.Error(err))
		return exitUsage
	}
	if !messages.Supports(*lang) {
		log.WarnContext(ctx, "language not in catalogue, using default",
			logger.Language(*lang), slog.Any("available", messages.Languages()))
	}

	customers, err := customer.DecodeFile(path)
	if err != nil {
		log.ErrorContext(ctx, "failed to read batch", logger.Error(err))
		return exitUsage
	}

	opts := []notify.Option{
		notify.WithMessages(messages),
		notify.WithContext(ctx),
		notify.WithLogger(log),
	}
	if *goNames {
		opts = append(opts, notify.WithFieldNamer(notify.GoFieldNamer))
	}

	report := customer.ValidateAll(customers, now, opts...)
	for _, r := range report.Results {
		if !r.Valid {
			log.InfoContext(ctx, "invalid record", logger.Record(r.Index), logger.Count("notifications", len(r.Notifications)))
		}
	}
	log.InfoContext(ctx, "batch validated",
		logger.Count("records", len(report.Results)),
		logger.Count("invalid", report.Invalid),
	)

	if err := writeReport(stdout, *output, report); err != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(err))
		return exitUsage
	}

	if !report.OK() {
		return exitInvalid
	}
	return exitValid
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithContextExtractors(logger.ContextString("lang", i18n.GetLocale)),
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

func writeReport(w io.Writer, output string, report customer.Report) error {
	if output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, r := range report.Results {
		if r.Valid {
			continue
		}
		if _, err := fmt.Fprintf(w, "record %d (%s, %s):\n", r.Index+1, r.Name, r.Document); err != nil {
			return err
		}
		for _, n := range r.Notifications {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", n.Field, n.Message); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d records: %d valid, %d invalid\n", len(report.Results), report.Valid, report.Invalid)
	return err
}
