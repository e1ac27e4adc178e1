package wikiparse

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/collectionlog/backend/internal/constant"
	"github.com/collectionlog/backend/internal/model"
	"github.com/collectionlog/backend/internal/util/droputil"
)

const VersionTableClass = "v1"

const (
	dropRowMinCells = 4
	shopRowMinCells = 2
)

// TableClassExtractor locates drop and shop tables by their class attribute, the
// only part of wiki page layout stable enough to anchor on.
type TableClassExtractor struct {
	DropTableClass string
	ShopTableClass string
	NoDropSentinel string
	Rules          droputil.CategoryRules

	origin *url.URL
}

var _ Extractor = (*TableClassExtractor)(nil)

func NewTableClassExtractor(origin *url.URL) *TableClassExtractor {
	return &TableClassExtractor{
		DropTableClass: constant.WikiDropTableClass,
		ShopTableClass: constant.WikiShopTableClass,
		NoDropSentinel: constant.WikiNoDropSentinel,
		Rules:          droputil.DefaultCategoryRules,
		origin:         origin,
	}
}

func (e *TableClassExtractor) Version() string {
	return VersionTableClass
}

func (e *TableClassExtractor) Extract(page string, fallbackItemName string) Extraction {
	result := Extraction{
		ItemTitle: fallbackItemName,
		Sources:   []model.DropSource{},
	}

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		log.Warn().Err(err).Str("evt.name", "wikiparse.parse").Msg("failed to parse wiki page")
		return result
	}

	if title := e.title(doc); title != "" {
		result.ItemTitle = title
	}

	w := walker{extractor: e}
	w.walk(doc)
	result.Sources = append(result.Sources, w.sources...)

	return result
}

// title prefers the MediaWiki page heading and falls back to the first h1.
func (e *TableClassExtractor) title(doc *html.Node) string {
	heading := findFirst(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.H1 {
			return false
		}
		id, _ := attr(n, "id")
		return id == "firstHeading" || hasClass(n, "firstHeading")
	})
	if heading == nil {
		heading = findFirst(doc, isElement(atom.H1))
	}
	if heading == nil {
		return ""
	}
	return textOf(heading)
}

// walker visits the document in order, remembering the latest section heading so
// rows can be categorized by the section their table appears in.
type walker struct {
	extractor *TableClassExtractor
	heading   string
	sources   []model.DropSource
}

func (w *walker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.H2, atom.H3, atom.H4:
			w.heading = textOf(n)
			return
		case atom.Table:
			switch {
			case hasClass(n, w.extractor.DropTableClass):
				w.dropTable(n)
				return
			case hasClass(n, w.extractor.ShopTableClass):
				w.shopTable(n)
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *walker) dropTable(table *html.Node) {
	e := w.extractor
	for _, row := range rowsOf(table) {
		cells, headerOnly := cellsOf(row)
		if headerOnly || len(cells) < dropRowMinCells {
			continue
		}

		name := textOf(cells[0])
		if name == "" || strings.EqualFold(name, e.NoDropSentinel) {
			continue
		}

		category := e.Rules.Categorize(droputil.CategorySignal{
			Heading:    w.heading,
			SourceName: name,
		}, model.DropSourceTypeMonster)

		source := droputil.NewDropSource(name, category, textOf(cells[2]))
		source.Quantity = droputil.NonEmptyString(textOf(cells[1]))
		source.Notes = droputil.NonEmptyString(textOf(cells[3]))
		source.WikiURL = e.link(cells[0])

		w.sources = append(w.sources, source)
	}
}

func (w *walker) shopTable(table *html.Node) {
	e := w.extractor
	for _, row := range rowsOf(table) {
		cells, headerOnly := cellsOf(row)
		if headerOnly || len(cells) < shopRowMinCells {
			continue
		}

		name := textOf(cells[0])
		if name == "" {
			continue
		}

		source := droputil.NewDropSource(name, model.DropSourceTypeShop, "")
		source.Quantity = droputil.NonEmptyString(textOf(cells[1]))
		source.WikiURL = e.link(cells[0])

		w.sources = append(w.sources, source)
	}
}
