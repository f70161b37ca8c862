// Package venue resolves where a team plays its home matches. The league
// site publishes one venue directory page per season; lookups scrape that
// page and are memoized in a TTL cache so every team-view build does not
// refetch it.
package venue

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tkessler/liga-stats/internal/dom"
	"github.com/tkessler/liga-stats/internal/fetch"
)

// The venue directory under the "Spielstätten" heading:
//
//	0: team, 1: venue name, 2: street address, 3: city
var venueHeading = regexp.MustCompile(`^Spielstätten$`)

// Info describes a team's home venue.
type Info struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// Client looks up venues on the league site.
type Client struct {
	fetcher *fetch.Client
	url     string
	cache   *Cache
}

// NewClient creates a venue client for the given directory URL.
func NewClient(fetcher *fetch.Client, url string) *Client {
	return &Client{
		fetcher: fetcher,
		url:     url,
		cache:   NewCache(),
	}
}

// NewClientWithCache creates a client around an existing cache.
func NewClientWithCache(fetcher *fetch.Client, url string, cache *Cache) *Client {
	c := NewClient(fetcher, url)
	c.cache = cache
	return c
}

// Lookup returns the venue for a team, or nil when the directory does not
// list it.
func (c *Client) Lookup(ctx context.Context, team string) (*Info, error) {
	if cached, ok := c.cache.Get(team); ok {
		return cached, nil
	}

	doc, err := c.fetcher.Get(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("fetching venue directory: %w", err)
	}

	sec := dom.FindSection(doc, venueHeading)
	if sec == nil {
		return nil, nil
	}

	var found *Info
	for _, row := range sec.DataRows() {
		rowTeam := dom.CellText(row, 0)
		if rowTeam == "" {
			continue
		}
		info := &Info{
			Name:    dom.CellText(row, 1),
			Address: dom.CellText(row, 2),
			City:    dom.CellText(row, 3),
		}
		// Cache every row while we have the page; sibling branches of the
		// same run will ask for other teams.
		c.cache.Set(rowTeam, info)
		if strings.EqualFold(rowTeam, team) {
			found = info
		}
	}

	if found == nil {
		// Negative result is cached too, so an unlisted team does not
		// trigger a refetch per build.
		c.cache.Set(team, nil)
	}
	return found, nil
}
