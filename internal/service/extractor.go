package service

import (
	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/app/appconfig"
	"github.com/collectionlog/backend/internal/pkg/wikiparse"
)

// NewExtractor selects the page extraction strategy configured by ExtractorVersion.
func NewExtractor(conf *appconfig.Config) (wikiparse.Extractor, error) {
	extractor, err := wikiparse.New(conf.ExtractorVersion, conf.WikiBaseURL)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("evt.name", "service.extractor.selected").
		Str("version", extractor.Version()).
		Msg("wiki page extractor selected")

	return extractor, nil
}
