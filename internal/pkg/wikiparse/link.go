package wikiparse

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/guregu/null.v3"
)

// link returns the absolute URL of the anchor in cell that points at the source's
// own page. Text anchors are preferred over image links.
func (e *TableClassExtractor) link(cell *html.Node) null.String {
	var fallback string
	var found string

	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			href, _ := attr(n, "href")
			href = strings.TrimSpace(href)
			if href != "" && !strings.HasPrefix(href, "#") {
				if textOf(n) != "" {
					found = href
					return true
				}
				if fallback == "" {
					fallback = href
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(cell)

	if found == "" {
		found = fallback
	}
	if found == "" {
		return null.String{}
	}
	return e.resolve(found)
}

func (e *TableClassExtractor) resolve(href string) null.String {
	ref, err := url.Parse(href)
	if err != nil {
		return null.String{}
	}

	abs := e.origin.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return null.String{}
	}
	return null.StringFrom(abs.String())
}
