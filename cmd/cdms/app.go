package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cdms/internal/config"
	"cdms/internal/database"
	apperrors "cdms/internal/errors"
	"cdms/internal/middleware"
	"cdms/internal/repositories"
	"cdms/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// application holds everything a command needs
type application struct {
	in       io.Reader
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	errs     *middleware.ErrorHandler

	jsonOutput bool

	db        *database.DB
	customers services.CustomerServiceInterface
	segments  services.SegmentationServiceInterface
	seeder    services.CustomerSeederInterface
	metrics   services.MetricsRecorderInterface
}

func newApplication(in io.Reader, errOut io.Writer) *application {
	cfg := config.Load()
	logger := newLogger(cfg.Log, errOut).With("env", cfg.App.Environment)
	registry := prometheus.NewRegistry()

	return &application{
		in:       in,
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		errs:     middleware.NewErrorHandler(errOut, logger, registry, false),
		metrics:  services.NewPrometheusMetrics(registry),
	}
}

// execute runs the CLI with args and returns the process exit code
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	app := newApplication(in, errOut)
	root := newRootCmd(app)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	cmd, err := root.ExecuteContextC(context.Background())
	if err != nil {
		err = asUserError(err)
	}
	if closeErr := app.close(); err == nil {
		err = closeErr
	}
	if cmd == nil {
		cmd = root
	}
	return app.errs.Handle(err, cmd.Name(), middleware.GetTraceID(cmd))
}

// open validates the configuration, opens the store and wires the services.
// It runs before every command.
func (a *application) open() error {
	a.errs.SetJSON(a.jsonOutput)

	if err := a.cfg.Validate(); err != nil {
		return apperrors.Wrap(apperrors.SystemConfigurationError, err)
	}

	db, err := database.Initialize(a.cfg)
	if err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	a.db = db

	strategy, err := services.ResolveStrategy(a.cfg.Segmentation.Strategy, db)
	if err != nil {
		return err
	}

	repo := repositories.NewCustomerRepository(db.DB)
	customerLogger := services.NewCustomerLogger(a.logger)

	a.customers = services.NewCustomerService(repo, customerLogger, a.metrics)
	a.segments, err = services.NewSegmentationService(repo, strategy, customerLogger, a.metrics)
	if err != nil {
		return err
	}
	a.seeder = services.NewCustomerSeeder(a.customers, 0)

	a.logger.Debug("store opened",
		"path", a.cfg.Database.Path,
		"segment_strategy", strategy,
	)
	return nil
}

// close releases the store and flushes metrics to the textfile when configured
func (a *application) close() error {
	var errs []error
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, apperrors.WrapDatabaseError(err))
		}
		a.db = nil
	}
	if err := services.WriteMetricsTextfile(a.cfg.Metrics.TextfilePath, a.registry); err != nil {
		a.logger.Warn("metrics textfile not written", "error", err.Error())
	}
	return errors.Join(errs...)
}

// run adapts a command handler to cobra, adding the shared middleware
func (a *application) run(h middleware.CommandFunc) func(cmd *cobra.Command, args []string) error {
	return middleware.Chain(h, middleware.PanicRecovery(a.logger))
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// asUserError classifies errors that did not come from the core. Those are
// cobra usage errors such as unknown flags or commands.
func asUserError(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return &apperrors.Error{
		Code:    apperrors.ValidationGeneral,
		Message: apperrors.GetErrorMessage(apperrors.ValidationGeneral),
		Details: []string{err.Error()},
	}
}

// requireArgs accepts exactly len(names) positional arguments
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == len(names) {
			return nil
		}
		if len(names) == 0 {
			return apperrors.New(apperrors.ValidationGeneral,
				fmt.Sprintf("%s takes no arguments, got %d", cmd.Name(), len(args)))
		}
		return apperrors.New(apperrors.ValidationRequiredField,
			fmt.Sprintf("usage: %s %s", cmd.CommandPath(), strings.Join(names, " ")))
	}
}
