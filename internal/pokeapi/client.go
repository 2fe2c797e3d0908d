package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ErrUnavailable is returned when the species data provider cannot be
// reached or answers with a server error.
var ErrUnavailable = errors.New("species provider unavailable")

// ErrNotFound is returned when the provider does not know the resource.
var ErrNotFound = errors.New("species resource not found")

// Client talks to a PokeAPI-shaped provider and memoizes every lookup in a
// bounded LRU with TTL eviction.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, any]
}

// New creates a client with the given cache capacity and entry TTL.
func New(baseURL string, cacheSize int, ttl time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      expirable.NewLRU[string, any](cacheSize, nil, ttl),
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d for %s", ErrUnavailable, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

// Pokemon fetches a creature descriptor by numeric id or name.
func (c *Client) Pokemon(ctx context.Context, idOrName string) (*Pokemon, error) {
	key := "pokemon:" + idOrName
	if v, ok := c.cache.Get(key); ok {
		return v.(*Pokemon), nil
	}

	var wire pokemonWire
	if err := c.get(ctx, "/pokemon/"+idOrName, &wire); err != nil {
		return nil, err
	}
	p := wire.flatten()
	c.cache.Add(key, p)
	return p, nil
}

// Species fetches species-level data (capture rate) by id or name.
func (c *Client) Species(ctx context.Context, idOrName string) (*Species, error) {
	key := "species:" + idOrName
	if v, ok := c.cache.Get(key); ok {
		return v.(*Species), nil
	}

	var s Species
	if err := c.get(ctx, "/pokemon-species/"+idOrName, &s); err != nil {
		return nil, err
	}
	c.cache.Add(key, &s)
	return &s, nil
}

// SpeciesCount returns the size of the species catalog.
func (c *Client) SpeciesCount(ctx context.Context) (int, error) {
	const key = "species-count"
	if v, ok := c.cache.Get(key); ok {
		return v.(int), nil
	}

	var out struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/pokemon-species?limit=0", &out); err != nil {
		return 0, err
	}
	c.cache.Add(key, out.Count)
	return out.Count, nil
}

// Move fetches a single move descriptor by id or name.
func (c *Client) Move(ctx context.Context, idOrName string) (*Move, error) {
	key := "move:" + idOrName
	if v, ok := c.cache.Get(key); ok {
		return v.(*Move), nil
	}

	var wire moveWire
	if err := c.get(ctx, "/move/"+idOrName, &wire); err != nil {
		return nil, err
	}
	m := wire.flatten()
	c.cache.Add(key, m)
	return m, nil
}

// Moves resolves up to limit of a creature's learnable moves.
func (c *Client) Moves(ctx context.Context, p *Pokemon, limit int) ([]Move, error) {
	if limit > len(p.MoveNames) {
		limit = len(p.MoveNames)
	}

	moves := make([]Move, 0, limit)
	for _, name := range p.MoveNames[:limit] {
		m, err := c.Move(ctx, name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, *m)
	}
	return moves, nil
}

// TypeRelations fetches the offensive damage relations for a move type.
func (c *Client) TypeRelations(ctx context.Context, typeName string) (*TypeRelations, error) {
	key := "type:" + typeName
	if v, ok := c.cache.Get(key); ok {
		return v.(*TypeRelations), nil
	}

	var wire typeWire
	if err := c.get(ctx, "/type/"+typeName, &wire); err != nil {
		return nil, err
	}
	rel := wire.flatten()
	c.cache.Add(key, rel)
	return rel, nil
}

// Invalidate evicts a single cached entry, e.g. "pokemon:pikachu".
func (c *Client) Invalidate(key string) bool {
	return c.cache.Remove(key)
}

// Purge drops every cached entry.
func (c *Client) Purge() {
	c.cache.Purge()
}

// CacheLen reports the number of live cache entries.
func (c *Client) CacheLen() int {
	return c.cache.Len()
}
