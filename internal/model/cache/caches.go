package cache

import (
	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/model"
	"github.com/collectionlog/backend/internal/pkg/cache"
)

// Registry holds every in-process cache of the service. It is created once and
// shared through fx.
type Registry struct {
	// ItemDrops is keyed by the decimal item id.
	ItemDrops *cache.Set[model.ItemDropsResponse]

	// ItemNames is the id -> name mapping, loaded at most once successfully.
	ItemNames *cache.Singular[map[int]string]
}

func New() *Registry {
	r := &Registry{
		ItemDrops: cache.NewSet[model.ItemDropsResponse]("itemDrops#itemId"),
		ItemNames: cache.NewSingular[map[int]string]("itemNames"),
	}
	log.Debug().Msg("caches initialized")
	return r
}
