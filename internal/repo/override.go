package repo

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/app/appconfig"
	"github.com/collectionlog/backend/internal/model"
	"github.com/collectionlog/backend/internal/util/droputil"
)

// Override reads curated monster drop tables from a directory of JSON files.
// Files are read on every call so edits are picked up without a restart.
type Override struct {
	dir  string
	wiki *WikiPage
}

func NewOverride(conf *appconfig.Config, wiki *WikiPage) *Override {
	return &Override{
		dir:  conf.OverrideDir,
		wiki: wiki,
	}
}

// GetDropSources returns one monster DropSource per override entry matching
// either itemID or the exact itemName. A missing directory yields no records
// and broken files are skipped.
func (r *Override) GetDropSources(itemName string, itemID int) []model.DropSource {
	files, err := r.files()
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Warn().Err(err).Str("dir", r.dir).Msg("failed to list override directory")
		}
		return []model.DropSource{}
	}

	sources := []model.DropSource{}
	for _, path := range files {
		file, err := readOverrideFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping unreadable override file")
			continue
		}

		sourceName := strings.TrimSpace(file.Name)
		if sourceName == "" {
			continue
		}

		for _, section := range file.DropTableSections {
			for _, entry := range section.Items {
				if !entry.Matches(itemName, itemID) {
					continue
				}

				source := droputil.NewDropSource(sourceName, model.DropSourceTypeMonster, entry.Rarity)
				source.Notes = droputil.NonEmptyString(section.Header)
				source.WikiURL = droputil.NonEmptyString(r.wiki.PageURL(sourceName))
				sources = append(sources, source)
			}
		}
	}

	return sources
}

// files lists the *.json files of the override directory in lexical order.
func (r *Override) files() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(r.dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}

func readOverrideFile(path string) (*model.OverrideFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read override file")
	}

	var file model.OverrideFile
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, errors.Wrap(err, "decode override file")
	}

	return &file, nil
}
