package interfaces

import (
	"context"

	"mecanica_jobs/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository.go -package=mock_interfaces

// ICatalogRepository abstracts the shop's service and part price lists.
type ICatalogRepository interface {
	ListActiveServices(ctx context.Context) ([]entities.CatalogService, error)
	ListActiveParts(ctx context.Context) ([]entities.CatalogPart, error)
	GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error)
	GetPartByID(ctx context.Context, id string) (entities.CatalogPart, error)
	AddService(ctx context.Context, draft entities.CatalogService, actorID string) (entities.CatalogService, error)
	AddPart(ctx context.Context, draft entities.CatalogPart, actorID string) (entities.CatalogPart, error)
}
