package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	_ "mecanica_jobs/docs"
	"mecanica_jobs/internal/adapter/http/routes"
	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/health"
	"mecanica_jobs/internal/infrastructure/config"
	"mecanica_jobs/internal/infrastructure/logger"
	"mecanica_jobs/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Workshop Jobs API
// @version         1.0
// @description     Job board, work orders and quotes for a mechanic workshop, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Id of the user performing the change.

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mecanica-jobs",
		Short:         "Workshop job board API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(newServeCmd(), newHealthReportCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func newHealthReportCmd() *cobra.Command {
	var status, level string
	cmd := &cobra.Command{
		Use:   "health-report",
		Short: "Print every job with its health, most at-risk first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			app, err := routes.NewContainer(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			jobs, err := app.Jobs.ListJobs(cmd.Context(), usecase.ListJobsFilter{
				Status: entities.JobStatus(status),
				Health: health.Level(level),
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tSTATUS\tHEALTH\tDAYS\tREASON")
			for _, j := range jobs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", j.Job.JobNumber, j.Job.Status, j.Health.Health, j.Health.DaysOld, j.Health.Reason)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only jobs in this status")
	cmd.Flags().StringVar(&level, "health", "", "only jobs at this health level")
	return cmd
}

func serve(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("[app] server stopped", zap.Error(err))
		return err
	}
	log.Info("[app] server stopped")
	return nil
}

func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, log, nil
}
