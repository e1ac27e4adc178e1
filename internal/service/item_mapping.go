package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/collectionlog/backend/internal/constant"
	"github.com/collectionlog/backend/internal/model"
	modelcache "github.com/collectionlog/backend/internal/model/cache"
	"github.com/collectionlog/backend/internal/pkg/cache"
	"github.com/collectionlog/backend/internal/repo"
)

type ItemMapping struct {
	ItemMappingRepo *repo.ItemMapping

	caches *modelcache.Registry
}

func NewItemMapping(itemMappingRepo *repo.ItemMapping, caches *modelcache.Registry) *ItemMapping {
	return &ItemMapping{
		ItemMappingRepo: itemMappingRepo,
		caches:          caches,
	}
}

// Cache: (singular) itemNames, never expires; a failed load is not cached
func (s *ItemMapping) GetNames(ctx context.Context) (map[int]string, error) {
	var names map[int]string
	err := s.caches.ItemNames.MutexGetSet(&names, func() (map[int]string, error) {
		entries, err := s.ItemMappingRepo.GetMapping(ctx)
		if err != nil {
			return nil, err
		}

		named := lo.Filter(entries, func(e model.ItemMappingEntry, _ int) bool {
			return strings.TrimSpace(e.Name) != ""
		})
		return lo.Associate(named, func(e model.ItemMappingEntry) (int, string) {
			return e.ID, e.Name
		}), nil
	}, cache.NoExpiration)
	if err != nil {
		return nil, errors.Wrap(err, "load item mapping")
	}

	return names, nil
}

// ResolveName returns the mapped name of id, or Item_<id> when the mapping
// does not know it.
func (s *ItemMapping) ResolveName(ctx context.Context, id int) (string, error) {
	names, err := s.GetNames(ctx)
	if err != nil {
		return "", err
	}

	if name, ok := names[id]; ok {
		return name, nil
	}
	return fmt.Sprintf(constant.UnmappedItemNameFormat, id), nil
}

func (s *ItemMapping) Loaded() bool {
	return s.caches.ItemNames.Loaded()
}
