package location

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"wthrr.klederson.com/internal/fetch"
)

// DefaultSearchURL is the Open-Meteo forward geocoding endpoint.
const DefaultSearchURL = "https://geocoding-api.open-meteo.com/v1/search"

// ErrNotFound is returned when an address resolves to no place.
var ErrNotFound = errors.New("location not found")

// Location is a resolved place.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

// Geocoder resolves a free-form address into a Location.
type Geocoder interface {
	Get(ctx context.Context, address, language string) (Location, error)
}

// Client geocodes addresses against the Open-Meteo search API and keeps
// recent answers in an expiring LRU cache.
type Client struct {
	SearchURL string
	HTTP      *http.Client
	Log       logrus.FieldLogger

	cache *expirable.LRU[string, Location]
}

// NewClient creates a geocoding client caching up to size results for ttl.
func NewClient(httpClient *http.Client, log logrus.FieldLogger, size int, ttl time.Duration) *Client {
	return &Client{
		SearchURL: DefaultSearchURL,
		HTTP:      httpClient,
		Log:       log.WithField("component", "geocoder"),
		cache:     expirable.NewLRU[string, Location](size, nil, ttl),
	}
}

type searchResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Admin1    string  `json:"admin1"`
	Country   string  `json:"country"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

func cacheKey(address, language string) string {
	return strings.ToLower(strings.TrimSpace(address)) + "|" + strings.ToLower(language)
}

// Get resolves address, answering from the cache when possible.
func (c *Client) Get(ctx context.Context, address, language string) (Location, error) {
	key := cacheKey(address, language)
	if loc, ok := c.cache.Get(key); ok {
		c.Log.WithField("address", address).Debug("geocode cache hit")
		return loc, nil
	}

	q := url.Values{}
	q.Set("name", strings.TrimSpace(address))
	q.Set("count", "1")
	q.Set("language", language)
	q.Set("format", "json")

	var resp searchResponse
	if err := fetch.JSON(ctx, c.HTTP, c.Log, c.SearchURL+"?"+q.Encode(), &resp); err != nil {
		return Location{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(resp.Results) == 0 {
		return Location{}, fmt.Errorf("%w: %q", ErrNotFound, address)
	}

	r := resp.Results[0]
	loc := Location{
		Name: displayName(r.Name, r.Admin1, r.Country),
		Lat:  r.Latitude,
		Lon:  r.Longitude,
	}
	c.cache.Add(key, loc)
	return loc, nil
}

// displayName joins the non-empty parts, dropping a region that repeats
// the place name.
func displayName(name, region, country string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{name, region, country} {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(parts) > 0 && strings.EqualFold(parts[len(parts)-1], p) {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

// Demo resolves any address to stable pseudo coordinates without network
// access.
type Demo struct{}

// Get derives coordinates from a hash of the address.
func (Demo) Get(ctx context.Context, address, language string) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}
	name := strings.TrimSpace(address)
	if name == "" {
		return Location{}, fmt.Errorf("%w: empty address", ErrNotFound)
	}

	h := sha256.Sum256([]byte(strings.ToLower(name)))
	lat := float64(binary.BigEndian.Uint32(h[:4]))/float64(math.MaxUint32)*120 - 60
	lon := float64(binary.BigEndian.Uint32(h[4:8]))/float64(math.MaxUint32)*360 - 180
	return Location{Name: name, Lat: lat, Lon: lon}, nil
}
