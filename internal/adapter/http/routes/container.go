package routes

import (
	"context"

	"mecanica_jobs/internal/adapter/persistence/repository"
	"mecanica_jobs/internal/infrastructure/config"
	"mecanica_jobs/internal/infrastructure/database"
	"mecanica_jobs/internal/infrastructure/notifications"
	"mecanica_jobs/internal/usecase"
	"mecanica_jobs/internal/usecase/interfaces"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// Container holds the wired use cases shared by the HTTP server and the CLI commands.
type Container struct {
	Jobs     *usecase.JobUseCase
	Catalog  *usecase.CatalogUseCase
	Quotes   *usecase.QuoteUseCase
	Sessions *usecase.WorkOrderSessionUseCase

	closers []func() error
}

func NewContainer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jobRepo := repository.NewJobDynamoRepository(ddb, cfg.JobsTable, cfg.JobWatchInterval, log)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb, cfg.ServicesTable, cfg.PartsTable)
	inventoryRepo := repository.NewInventoryDynamoRepository(ddb, cfg.PartsTable, cfg.StockMovementsTable)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)

	c := &Container{}

	var dispatcher interfaces.INotificationDispatcher
	if len(cfg.KafkaBrokers) > 0 {
		kd := notifications.NewKafkaDispatcher(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic, log)
		c.closers = append(c.closers, kd.Close)
		dispatcher = kd
		log.Info("[app] notifications published to kafka",
			zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaNotificationsTopic))
	} else {
		dispatcher = notifications.NewLogDispatcher(log)
		log.Info("[app] kafka not configured, notifications are logged only")
	}

	c.Jobs = usecase.NewJobUseCase(jobRepo, inventoryRepo, dispatcher, log)
	c.Catalog = usecase.NewCatalogUseCase(catalogRepo, cfg.CatalogCacheTTL, log)
	c.Quotes = usecase.NewQuoteUseCase(quoteRepo)
	c.Sessions = usecase.NewWorkOrderSessionUseCase(c.Jobs, c.Catalog, c.Quotes, cfg.SessionIdleTTL, log)
	c.closers = append(c.closers, func() error {
		c.Sessions.Close()
		return nil
	})
	return c, nil
}

// Close releases background workers and connections in reverse order.
func (c *Container) Close() error {
	var result *multierror.Error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
