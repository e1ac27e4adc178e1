package wikiparse

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// collapseWhitespace also composes accents so that names compare equal to the item mapping.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(norm.NFC.String(s), " "))
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// skipForText reports whether n contributes nothing to the visible text of a cell:
// footnote markers, section edit links and non-content elements.
func skipForText(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Script, atom.Style:
		return true
	case atom.Sup:
		return hasClass(n, "reference")
	case atom.Span:
		return hasClass(n, "mw-editsection")
	}
	return false
}

// textOf returns the visible text content of n with whitespace collapsed.
func textOf(n *html.Node) string {
	var buf strings.Builder
	extractText(n, &buf)
	return collapseWhitespace(buf.String())
}

func extractText(n *html.Node, buf *strings.Builder) {
	if skipForText(n) {
		return
	}

	switch n.Type {
	case html.TextNode:
		buf.WriteString(n.Data)
	case html.ElementNode:
		if n.DataAtom == atom.Br {
			buf.WriteString(" ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractText(c, buf)
	}
}

// findFirst does a depth-first search for the first node satisfying match.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

// rowsOf returns the rows of table in document order, including those wrapped in
// thead/tbody/tfoot, without descending into nested tables.
func rowsOf(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Tr:
				rows = append(rows, c)
			case atom.Thead, atom.Tbody, atom.Tfoot:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

// cellsOf returns the td/th children of a row, and whether every cell is a header cell.
func cellsOf(row *html.Node) (cells []*html.Node, headerOnly bool) {
	headerOnly = true
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Td:
			headerOnly = false
			cells = append(cells, c)
		case atom.Th:
			cells = append(cells, c)
		}
	}
	return cells, headerOnly
}
