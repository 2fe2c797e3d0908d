package pokeapi

import "context"

// starterNames maps each region to its three starter species.
var starterNames = map[string][]string{
	"kanto":  {"bulbasaur", "charmander", "squirtle"},
	"johto":  {"chikorita", "cyndaquil", "totodile"},
	"hoenn":  {"treecko", "torchic", "mudkip"},
	"sinnoh": {"turtwig", "chimchar", "piplup"},
	"unova":  {"snivy", "tepig", "oshawott"},
	"kalos":  {"chespin", "fennekin", "froakie"},
	"alola":  {"rowlet", "litten", "popplio"},
	"galar":  {"grookey", "scorbunny", "sobble"},
}

// Starter is the reduced descriptor shown during starter selection.
type Starter struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`
	Sprite string   `json:"sprite"`
	Stats  Stats    `json:"stats"`
}

// Starters resolves the full starter catalog, keyed by region.
func (c *Client) Starters(ctx context.Context) (map[string][]Starter, error) {
	catalog := make(map[string][]Starter, len(starterNames))
	for region, names := range starterNames {
		for _, name := range names {
			p, err := c.Pokemon(ctx, name)
			if err != nil {
				return nil, err
			}
			catalog[region] = append(catalog[region], Starter{
				ID:     p.ID,
				Name:   p.Name,
				Types:  p.Types,
				Sprite: p.Sprites.FrontDefault,
				Stats:  p.Stats,
			})
		}
	}
	return catalog, nil
}

// IsStarter reports whether a species name is a known starter.
func IsStarter(name string) bool {
	for _, names := range starterNames {
		for _, n := range names {
			if n == name {
				return true
			}
		}
	}
	return false
}
