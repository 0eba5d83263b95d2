package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/internal/domain/workorder"
	"mecanica_jobs/internal/usecase/interfaces"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrInvalidCatalogID    = errors.New("invalid catalog id")
)

const (
	servicesKey = "services"
	partsKey    = "parts"
)

// Catalog is the active price list at one point in time.
type Catalog struct {
	Services []entities.CatalogService
	Parts    []entities.CatalogPart
}

// ICatalogUseCase serves the active catalog to work-order editing and takes
// custom lines back into it.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.CatalogService, error)
	ListParts(ctx context.Context) ([]entities.CatalogPart, error)
	Load(ctx context.Context) (Catalog, error)
	FindService(ctx context.Context, id string) (entities.CatalogService, error)
	FindPart(ctx context.Context, id string) (entities.CatalogPart, error)
	Promote(ctx context.Context, fin workorder.Finalized, actorID string)
}

type servicesCacheValue struct {
	rows []entities.CatalogService
	error
}

type partsCacheValue struct {
	rows []entities.CatalogPart
	error
}

type CatalogUseCase struct {
	repo          interfaces.ICatalogRepository
	log           *zap.Logger
	servicesCache *ttlcache.Cache[string, servicesCacheValue]
	partsCache    *ttlcache.Cache[string, partsCacheValue]
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, ttl time.Duration, log *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		repo:          repo,
		log:           log,
		servicesCache: ttlcache.New(ttlcache.WithTTL[string, servicesCacheValue](ttl), ttlcache.WithDisableTouchOnHit[string, servicesCacheValue]()),
		partsCache:    ttlcache.New(ttlcache.WithTTL[string, partsCacheValue](ttl), ttlcache.WithDisableTouchOnHit[string, partsCacheValue]()),
	}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.CatalogService, error) {
	loader := ttlcache.LoaderFunc[string, servicesCacheValue](
		func(cache *ttlcache.Cache[string, servicesCacheValue], key string) *ttlcache.Item[string, servicesCacheValue] {
			rows, err := u.repo.ListActiveServices(ctx)
			if err != nil {
				// failed loads expire right away
				return cache.Set(key, servicesCacheValue{error: err}, time.Nanosecond)
			}
			return cache.Set(key, servicesCacheValue{rows: rows}, ttlcache.DefaultTTL)
		},
	)
	v := u.servicesCache.Get(servicesKey, ttlcache.WithLoader[string, servicesCacheValue](loader))
	if v == nil {
		return nil, errors.New("failed to load catalog services")
	}
	return v.Value().rows, v.Value().error
}

func (u *CatalogUseCase) ListParts(ctx context.Context) ([]entities.CatalogPart, error) {
	loader := ttlcache.LoaderFunc[string, partsCacheValue](
		func(cache *ttlcache.Cache[string, partsCacheValue], key string) *ttlcache.Item[string, partsCacheValue] {
			rows, err := u.repo.ListActiveParts(ctx)
			if err != nil {
				return cache.Set(key, partsCacheValue{error: err}, time.Nanosecond)
			}
			return cache.Set(key, partsCacheValue{rows: rows}, ttlcache.DefaultTTL)
		},
	)
	v := u.partsCache.Get(partsKey, ttlcache.WithLoader[string, partsCacheValue](loader))
	if v == nil {
		return nil, errors.New("failed to load catalog parts")
	}
	return v.Value().rows, v.Value().error
}

// Load fetches services and parts concurrently.
func (u *CatalogUseCase) Load(ctx context.Context) (Catalog, error) {
	var c Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := u.ListServices(gctx)
		c.Services = rows
		return err
	})
	g.Go(func() error {
		rows, err := u.ListParts(gctx)
		c.Parts = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (u *CatalogUseCase) FindService(ctx context.Context, id string) (entities.CatalogService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogService{}, ErrInvalidCatalogID
	}
	rows, err := u.ListServices(ctx)
	if err != nil {
		return entities.CatalogService{}, err
	}
	for _, s := range rows {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.CatalogService{}, ErrCatalogItemNotFound
}

func (u *CatalogUseCase) FindPart(ctx context.Context, id string) (entities.CatalogPart, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogPart{}, ErrInvalidCatalogID
	}
	rows, err := u.ListParts(ctx)
	if err != nil {
		return entities.CatalogPart{}, err
	}
	for _, p := range rows {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.CatalogPart{}, ErrCatalogItemNotFound
}

// Promote adds the custom lines of a finalized work order to the catalog.
// Lines whose name, or part number for parts, is already active are skipped,
// so finalizing the same work order again adds nothing. Each failure is
// logged and skipped.
func (u *CatalogUseCase) Promote(ctx context.Context, fin workorder.Finalized, actorID string) {
	added := 0
	if len(fin.PromoteServices) > 0 {
		added += u.promoteServices(ctx, fin.PromoteServices, actorID)
	}
	if len(fin.PromoteParts) > 0 {
		added += u.promoteParts(ctx, fin.PromoteParts, actorID)
	}
	if added > 0 {
		u.servicesCache.DeleteAll()
		u.partsCache.DeleteAll()
		u.log.Info("[catalog][usecase] custom lines promoted", zap.Int("count", added))
	}
}

func (u *CatalogUseCase) promoteServices(ctx context.Context, drafts []entities.CatalogService, actorID string) int {
	active, err := u.ListServices(ctx)
	if err != nil {
		u.log.Warn("[catalog][usecase] service promotion skipped", zap.Error(err))
		return 0
	}
	known := mapset.NewThreadUnsafeSet[string]()
	for _, s := range active {
		known.Add(catalogKey(s.Name))
	}
	added := 0
	for _, s := range drafts {
		if !known.Add(catalogKey(s.Name)) {
			continue
		}
		if _, err := u.repo.AddService(ctx, s, actorID); err != nil {
			u.log.Warn("[catalog][usecase] service promotion failed", zap.String("name", s.Name), zap.Error(err))
			continue
		}
		added++
	}
	return added
}

func (u *CatalogUseCase) promoteParts(ctx context.Context, drafts []entities.CatalogPart, actorID string) int {
	active, err := u.ListParts(ctx)
	if err != nil {
		u.log.Warn("[catalog][usecase] part promotion skipped", zap.Error(err))
		return 0
	}
	known := mapset.NewThreadUnsafeSet[string]()
	for _, p := range active {
		known.Add(partKey(p))
	}
	added := 0
	for _, p := range drafts {
		if !known.Add(partKey(p)) {
			continue
		}
		if _, err := u.repo.AddPart(ctx, p, actorID); err != nil {
			u.log.Warn("[catalog][usecase] part promotion failed", zap.String("name", p.Name), zap.Error(err))
			continue
		}
		added++
	}
	return added
}

func catalogKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// partKey prefers the part number; custom parts often have none.
func partKey(p entities.CatalogPart) string {
	if pn := strings.TrimSpace(p.PartNumber); pn != "" {
		return "pn:" + strings.ToUpper(pn)
	}
	return "name:" + catalogKey(p.Name)
}
