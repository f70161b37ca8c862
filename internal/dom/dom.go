// Package dom locates semantically meaningful regions of the results site's
// pages. The site carries no stable ids or classes, so sections are found by
// matching heading text against a pattern and taking the table that follows
// the heading in document order.
package dom

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// headingSelector covers the element kinds the site uses for section titles.
const headingSelector = "h1, h2, h3, h4"

// Section pairs a matched heading with the data table that follows it.
type Section struct {
	// Heading is the trimmed heading text.
	Heading string
	// Matches holds the pattern's submatches against the heading text;
	// Matches[0] is the full match.
	Matches []string
	// Table is the nearest table after the heading.
	Table *goquery.Selection
}

// FindSections returns every section whose heading matches pattern, in
// document order. An empty result is normal: a page may simply not carry
// the section yet (for example, no cup round scheduled).
func FindSections(doc *goquery.Document, pattern *regexp.Regexp) []Section {
	var sections []Section
	doc.Find(headingSelector).Each(func(_ int, h *goquery.Selection) {
		text := strings.TrimSpace(h.Text())
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			return
		}
		table := nextTable(h)
		if table == nil {
			return
		}
		sections = append(sections, Section{Heading: text, Matches: m, Table: table})
	})
	return sections
}

// FindSection returns the first section matching pattern, or nil when the
// page has none.
func FindSection(doc *goquery.Document, pattern *regexp.Regexp) *Section {
	sections := FindSections(doc, pattern)
	if len(sections) == 0 {
		return nil
	}
	return &sections[0]
}

// nextTable walks the heading's following siblings for a table, then falls
// back to the siblings of the heading's parent (some pages wrap each heading
// in its own container div).
func nextTable(h *goquery.Selection) *goquery.Selection {
	if t := searchSiblings(h); t != nil {
		return t
	}
	return searchSiblings(h.Parent())
}

func searchSiblings(start *goquery.Selection) *goquery.Selection {
	for sib := start.Next(); sib.Length() > 0; sib = sib.Next() {
		if goquery.NodeName(sib) == "table" {
			return sib
		}
		if t := sib.Find("table").First(); t.Length() > 0 {
			return t
		}
		// A later heading starts the next section; stop before stealing
		// its table.
		if sib.Is(headingSelector) {
			return nil
		}
	}
	return nil
}

// DataRows returns the rows of a table that carry td cells, skipping header
// rows made of th elements.
func (s *Section) DataRows() []*goquery.Selection {
	var rows []*goquery.Selection
	s.Table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("td").Length() == 0 {
			return
		}
		rows = append(rows, row)
	})
	return rows
}

// CellText returns the text of the i-th td cell of a row. When the cell
// contains a hyperlink, the link text is the canonical value; the site wraps
// resolved player and team names in links but leaves placeholders as plain
// text.
func CellText(row *goquery.Selection, i int) string {
	cell := row.Find("td").Eq(i)
	if link := cell.Find("a").First(); link.Length() > 0 {
		return strings.TrimSpace(link.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// CellCount returns the number of td cells in a row.
func CellCount(row *goquery.Selection) int {
	return row.Find("td").Length()
}
