// Package wikiparse extracts drop sources out of wiki article HTML.
//
// Page layouts change independently of this service, so extraction strategies are
// versioned: each Extractor reports a Version and New selects one by name.
package wikiparse

import (
	"net/url"
	"sort"

	"github.com/pkg/errors"

	"github.com/collectionlog/backend/internal/model"
)

var ErrUnknownVersion = errors.New("unknown extractor version")

type Extractor interface {
	Version() string

	// Extract never fails: malformed or unrelated pages yield fallbackItemName
	// and no sources.
	Extract(page string, fallbackItemName string) Extraction
}

type Extraction struct {
	ItemTitle string
	Sources   []model.DropSource
}

type factory func(origin *url.URL) Extractor

var registry = map[string]factory{
	VersionTableClass: func(origin *url.URL) Extractor {
		return NewTableClassExtractor(origin)
	},
}

// New returns the extractor registered under version. wikiBaseURL is used to
// resolve relative links found in the page.
func New(version string, wikiBaseURL string) (Extractor, error) {
	f, ok := registry[version]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVersion, "%q (available: %v)", version, Versions())
	}

	origin, err := url.Parse(wikiBaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "wikiparse: invalid wiki base url")
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, errors.Errorf("wikiparse: wiki base url must be absolute, got %q", wikiBaseURL)
	}

	return f(origin), nil
}

func Versions() []string {
	versions := make([]string, 0, len(registry))
	for v := range registry {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}
