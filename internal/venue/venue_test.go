package venue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tkessler/liga-stats/internal/fetch"
)

const directoryHTML = `<html><body>
<h2>Spielstätten</h2>
<table>
	<tr><th>Team</th><th>Lokal</th><th>Adresse</th><th>Ort</th></tr>
	<tr><td><a href="team.php?name=DC+Falken">DC Falken</a></td><td>Gaststätte Krone</td><td>Hauptstraße 12</td><td>Neustadt</td></tr>
	<tr><td>DV Adler</td><td>Sportheim Adler</td><td>Am Ring 4</td><td>Altdorf</td></tr>
</table>
</body></html>`

func newTestClient(t *testing.T) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(directoryHTML))
	}))
	t.Cleanup(srv.Close)
	return NewClient(fetch.New(), srv.URL), &calls
}

func TestLookup(t *testing.T) {
	client, _ := newTestClient(t)

	info, err := client.Lookup(context.Background(), "DC Falken")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if info == nil {
		t.Fatal("expected venue info")
	}
	if info.Name != "Gaststätte Krone" || info.City != "Neustadt" {
		t.Errorf("unexpected venue: %+v", info)
	}
}

func TestLookupCachesDirectory(t *testing.T) {
	client, calls := newTestClient(t)

	if _, err := client.Lookup(context.Background(), "DC Falken"); err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	// Second team was cached from the same page.
	info, err := client.Lookup(context.Background(), "DV Adler")
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}
	if info == nil || info.Name != "Sportheim Adler" {
		t.Errorf("unexpected cached venue: %+v", info)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 directory fetch, got %d", got)
	}
}

func TestLookupUnknownTeamCachedNegative(t *testing.T) {
	client, calls := newTestClient(t)

	for i := 0; i < 2; i++ {
		info, err := client.Lookup(context.Background(), "Unbekannt")
		if err != nil {
			t.Fatalf("lookup %d failed: %v", i, err)
		}
		if info != nil {
			t.Errorf("expected nil for unlisted team, got %+v", info)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("negative result not cached: %d fetches", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCacheWithTTL(10 * time.Millisecond)
	cache.Set("DC Falken", &Info{Name: "Gaststätte Krone"})

	if _, ok := cache.Get("DC Falken"); !ok {
		t.Fatal("expected fresh entry to be cached")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("DC Falken"); ok {
		t.Error("expected entry to expire")
	}
	if cache.Size() != 0 {
		t.Errorf("expired entry not evicted, size = %d", cache.Size())
	}
}

func TestCacheKeyNormalization(t *testing.T) {
	cache := NewCache()
	cache.Set("  DC Falken ", &Info{Name: "Gaststätte Krone"})

	info, ok := cache.Get("dc falken")
	if !ok || info == nil || info.Name != "Gaststätte Krone" {
		t.Errorf("expected normalized key hit, got %v (%v)", info, ok)
	}
}
