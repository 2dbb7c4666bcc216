package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agbru/exactsum/internal/accumulate"
	"github.com/agbru/exactsum/internal/config"
	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/logging"
	"github.com/agbru/exactsum/internal/metrics"
	"github.com/agbru/exactsum/internal/natural"
	"github.com/agbru/exactsum/internal/ui"
)

// Application represents the exactsum application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *accumulate.Registry
	ErrWriter io.Writer
	// Input is read when no input file is configured.
	Input io.Reader
	// Logger receives diagnostics. It defaults to a component logger on
	// ErrWriter.
	Logger zerolog.Logger

	// gatherer collects the run metrics written to Config.MetricsFile.
	gatherer *prometheus.Registry
	recorder *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets the accumulator registry.
func WithRegistry(r *accumulate.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithInput sets the reader used in place of stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.Input = r }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l zerolog.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line
// arguments. args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, Input: os.Stdin}
	app.Logger = logging.NewLogger(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(errWriter), NoColor: true}, "app").Zerolog()
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = accumulate.DefaultRegistry()
	}

	programName := "exactsum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveSettings(cfg)

	app.gatherer = prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(app.gatherer)
	if err != nil {
		return nil, apperrors.WrapError(err, "registering metrics")
	}
	app.recorder = rec
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	th, err := config.ToThresholds(a.Config)
	if err == nil {
		err = natural.Configure(th)
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	log := logging.NewZerologAdapter(a.Logger)
	log.Debug("thresholds configured",
		logging.Int("karatsuba", th.KaratsubaMul),
		logging.Int("toom", th.ToomCookMul),
		logging.Int("bz", th.BurnikelZiegler),
		logging.Int("max_words", th.MaxWords))

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	code := a.runCalculate(ctx, th, out)

	if a.Config.MetricsFile != "" {
		if err := metrics.WriteTextfile(a.gatherer, a.Config.MetricsFile); err != nil {
			log.Error("writing metrics failed", err, logging.String("path", a.Config.MetricsFile))
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}
	return code
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
