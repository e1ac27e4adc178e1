package repo

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/app/appconfig"
	"github.com/collectionlog/backend/internal/model"
)

type ItemMapping struct {
	client    *http.Client
	url       string
	userAgent string
}

func NewItemMapping(conf *appconfig.Config, client *http.Client) *ItemMapping {
	return &ItemMapping{
		client:    client,
		url:       conf.MappingURL,
		userAgent: conf.WikiUserAgent,
	}
}

// GetMapping fetches the full item id -> name mapping. A single attempt is made.
func (r *ItemMapping) GetMapping(ctx context.Context) ([]model.ItemMappingEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "build mapping request")
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch item mapping")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrUpstreamStatus, "item mapping: %s", res.Status)
	}

	var entries []model.ItemMappingEntry
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode item mapping")
	}

	log.Info().
		Str("evt.name", "repo.item_mapping.loaded").
		Int("count", len(entries)).
		Msg("item mapping fetched")

	return entries, nil
}
