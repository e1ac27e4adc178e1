package appconfig

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/app/appcontext"
	"github.com/collectionlog/backend/internal/util"
)

const envPrefix = "clog"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process(envPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(envPrefix, &config)
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	if err := util.NewValidator().Struct(config); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
