package dom

import (
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing test HTML: %v", err)
	}
	return doc
}

func TestFindSectionsMultipleRounds(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<h3>Runde 1 - 15.09.2025</h3>
		<table><tr><td>DC Falken</td><td>DV Adler</td></tr></table>
		<h3>Runde 2 - 22.09.2025</h3>
		<table><tr><td>DSC Eiche</td><td>DC Falken</td></tr></table>
	</body></html>`)

	pattern := regexp.MustCompile(`^Runde (\d+) - (\d{2}\.\d{2}\.\d{4})$`)
	sections := FindSections(doc, pattern)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Matches[1] != "1" || sections[0].Matches[2] != "15.09.2025" {
		t.Errorf("unexpected submatches for first section: %v", sections[0].Matches)
	}
	if got := CellText(sections[1].DataRows()[0], 0); got != "DSC Eiche" {
		t.Errorf("second section table mismatch: got %q", got)
	}
}

func TestFindSectionAbsentIsNil(t *testing.T) {
	doc := parseDoc(t, `<html><body><h2>Einzel</h2><table><tr><td>x</td></tr></table></body></html>`)

	if sec := FindSection(doc, regexp.MustCompile(`^Pokalrunde`)); sec != nil {
		t.Errorf("expected nil for absent section, got %+v", sec)
	}
}

func TestFindSectionWrappedHeading(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div><h2>Average</h2></div>
		<div><table><tr><th>Platz</th></tr><tr><td>1</td><td>Hans Meier</td></tr></table></div>
	</body></html>`)

	sec := FindSection(doc, regexp.MustCompile(`^Average$`))
	if sec == nil {
		t.Fatal("expected section with wrapped heading to be found")
	}
	rows := sec.DataRows()
	if len(rows) != 1 {
		t.Fatalf("expected header row to be skipped, got %d data rows", len(rows))
	}
}

func TestFindSectionDoesNotStealNextSectionsTable(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<h2>Average</h2>
		<h2>Einzel</h2>
		<table><tr><td>1</td></tr></table>
	</body></html>`)

	if sec := FindSection(doc, regexp.MustCompile(`^Average$`)); sec != nil {
		t.Errorf("heading without own table must yield no section, got %+v", sec)
	}
}

func TestCellTextPrefersLinkText(t *testing.T) {
	doc := parseDoc(t, `<html><body><table>
		<tr><td><a href="/player?id=7">Hans Meier</a> (C)</td><td>[Spieler 4]</td></tr>
	</table></body></html>`)

	row := doc.Find("tr").First()
	if got := CellText(row, 0); got != "Hans Meier" {
		t.Errorf("expected link text, got %q", got)
	}
	if got := CellText(row, 1); got != "[Spieler 4]" {
		t.Errorf("expected plain cell text, got %q", got)
	}
	if got := CellText(row, 5); got != "" {
		t.Errorf("expected empty text for missing cell, got %q", got)
	}
}
