package service

import (
	"github.com/collectionlog/backend/internal/model"
)

type Health struct {
	ItemMappingService *ItemMapping
	ItemDropsService   *ItemDrops
}

func NewHealth(itemMappingService *ItemMapping, itemDropsService *ItemDrops) *Health {
	return &Health{
		ItemMappingService: itemMappingService,
		ItemDropsService:   itemDropsService,
	}
}

// Status never touches upstreams. The process is healthy as long as it serves.
func (s *Health) Status() model.HealthStatus {
	return model.HealthStatus{
		Status:        "ok",
		MappingLoaded: s.ItemMappingService.Loaded(),
		CachedItems:   s.ItemDropsService.CachedCount(),
	}
}
