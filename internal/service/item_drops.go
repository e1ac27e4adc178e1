package service

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/guregu/null.v3"

	"github.com/collectionlog/backend/internal/app/appconfig"
	"github.com/collectionlog/backend/internal/model"
	modelcache "github.com/collectionlog/backend/internal/model/cache"
	"github.com/collectionlog/backend/internal/pkg/cache"
	"github.com/collectionlog/backend/internal/pkg/observability"
	"github.com/collectionlog/backend/internal/pkg/wikiparse"
	"github.com/collectionlog/backend/internal/repo"
	"github.com/collectionlog/backend/internal/util/droputil"
)

type ItemDrops struct {
	ItemMappingService *ItemMapping
	WikiPageRepo       *repo.WikiPage
	OverrideRepo       *repo.Override

	extractor wikiparse.Extractor
	caches    *modelcache.Registry
	tracer    trace.Tracer
	// one mapping load and one page fetch, each bounded by the client timeout
	buildTimeout time.Duration
}

func NewItemDrops(
	conf *appconfig.Config,
	itemMappingService *ItemMapping,
	wikiPageRepo *repo.WikiPage,
	overrideRepo *repo.Override,
	extractor wikiparse.Extractor,
	caches *modelcache.Registry,
	tp trace.TracerProvider,
) *ItemDrops {
	return &ItemDrops{
		ItemMappingService: itemMappingService,
		WikiPageRepo:       wikiPageRepo,
		OverrideRepo:       overrideRepo,
		extractor:          extractor,
		caches:             caches,
		tracer:             tp.Tracer("service.item_drops"),
		buildTimeout:       conf.UpstreamTimeout * 2,
	}
}

// Cache: itemDrops#itemId:{itemId}, never expires; failures are not cached
//
// Concurrent calls for the same uncached id share one build. The build is
// detached from ctx cancellation so that a disconnecting client does not fail
// the other waiters, and runs under its own deadline of twice the upstream
// timeout, which also bounds the wait on the wiki rate limiter.
func (s *ItemDrops) GetItemDrops(ctx context.Context, itemID int) (*model.ItemDropsResponse, error) {
	var resp model.ItemDropsResponse
	built := false
	calculated, err := s.caches.ItemDrops.MutexGetSet(strconv.Itoa(itemID), &resp, func() (model.ItemDropsResponse, error) {
		built = true
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.buildTimeout)
		defer cancel()
		return s.build(buildCtx, itemID)
	}, cache.NoExpiration)

	switch {
	case built:
		observability.ItemDropsCacheLookups.WithLabelValues("miss").Inc()
	case calculated:
		// waited on a build started by a concurrent caller
		observability.ItemDropsCacheLookups.WithLabelValues("shared").Inc()
	default:
		observability.ItemDropsCacheLookups.WithLabelValues("hit").Inc()
	}

	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CachedCount is the number of items whose drops are cached.
func (s *ItemDrops) CachedCount() int {
	return s.caches.ItemDrops.Count()
}

func (s *ItemDrops) build(ctx context.Context, itemID int) (resp model.ItemDropsResponse, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "service.item_drops.build",
		trace.WithAttributes(attribute.Int("item.id", itemID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		observability.ItemDropsBuildDuration.
			WithLabelValues(observability.Outcome(err)).
			Observe(time.Since(start).Seconds())
	}()

	name, err := s.ItemMappingService.ResolveName(ctx, itemID)
	if err != nil {
		return resp, errors.Wrapf(err, "resolve name of item %d", itemID)
	}

	pageURL := s.WikiPageRepo.PageURL(name)
	page, err := s.fetchPage(ctx, pageURL)
	if err != nil {
		return resp, err
	}

	extraction := s.extract(ctx, page, name)
	overrides := s.OverrideRepo.GetDropSources(extraction.ItemTitle, itemID)

	observability.ExtractedDropSources.WithLabelValues("wiki").Observe(float64(len(extraction.Sources)))
	observability.ExtractedDropSources.WithLabelValues("override").Observe(float64(len(overrides)))

	resp = model.ItemDropsResponse{
		ItemID:    itemID,
		ItemName:  extraction.ItemTitle,
		Sources:   droputil.Merge(overrides, extraction.Sources),
		SourceURL: null.StringFrom(pageURL),
		CachedAt:  time.Now(),
	}
	if resp.Fingerprint, err = droputil.Fingerprint(&resp); err != nil {
		return resp, err
	}

	log.Info().
		Str("evt.name", "service.item_drops.built").
		Int("itemId", itemID).
		Str("itemName", resp.ItemName).
		Int("scraped", len(extraction.Sources)).
		Int("overrides", len(overrides)).
		Int("sources", len(resp.Sources)).
		Dur("took", time.Since(start)).
		Msg("item drops built")

	return resp, nil
}

func (s *ItemDrops) fetchPage(ctx context.Context, pageURL string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "repo.wiki_page.get",
		trace.WithAttributes(attribute.String("url", pageURL)))
	defer span.End()

	start := time.Now()
	page, err := s.WikiPageRepo.GetPage(ctx, pageURL)
	observability.UpstreamFetchDuration.
		WithLabelValues("wiki", observability.Outcome(err)).
		Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return page, nil
}

func (s *ItemDrops) extract(ctx context.Context, page, fallbackItemName string) wikiparse.Extraction {
	_, span := s.tracer.Start(ctx, "wikiparse.extract",
		trace.WithAttributes(attribute.String("extractor.version", s.extractor.Version())))
	defer span.End()

	extraction := s.extractor.Extract(page, fallbackItemName)
	span.SetAttributes(attribute.Int("sources", len(extraction.Sources)))
	return extraction
}
