package repo

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/collectionlog/backend/internal/app/appconfig"
	"github.com/collectionlog/backend/internal/constant"
)

// maxPageSize caps how much of a wiki page body is read.
const maxPageSize = 8 << 20

type WikiPage struct {
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
}

func NewWikiPage(conf *appconfig.Config, client *http.Client) (*WikiPage, error) {
	u, err := url.Parse(conf.WikiBaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid wiki base url")
	}

	return &WikiPage{
		client:    client,
		limiter:   rate.NewLimiter(rate.Limit(conf.WikiRateLimit), conf.WikiRateBurst),
		baseURL:   strings.TrimRight(u.String(), "/"),
		userAgent: conf.WikiUserAgent,
	}, nil
}

// PageURL is the canonical article URL for a page name: spaces become
// underscores and the rest is path-escaped.
func (r *WikiPage) PageURL(name string) string {
	title := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return r.baseURL + constant.WikiPagePathPrefix + url.PathEscape(title)
}

// GetPage performs a single GET of pageURL and returns the body. Any status
// other than 200 is an error.
func (r *WikiPage) GetPage(ctx context.Context, pageURL string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "wiki rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", errors.Wrap(err, "build wiki request")
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html")

	res, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "fetch wiki page")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", errors.Wrapf(ErrUpstreamStatus, "wiki page %s: %s", pageURL, res.Status)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxPageSize))
	if err != nil {
		return "", errors.Wrap(err, "read wiki page")
	}

	log.Debug().
		Str("evt.name", "repo.wiki_page.fetched").
		Str("url", pageURL).
		Int("bytes", len(body)).
		Msg("wiki page fetched")

	return string(body), nil
}
