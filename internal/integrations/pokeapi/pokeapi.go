// Package pokeapi integrates with the external read-only Pokémon catalog.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pokevault/pokedex-service/internal/config"
	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Client handles integration with the catalog API
type Client struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewClient initializes a new catalog client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.PokeAPIURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// pokemonResponse mirrors the catalog's pokemon payload
type pokemonResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
}

// Get fetches a single Pokémon by its catalog id
func (c *Client) Get(ctx context.Context, id int64) (*models.Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)

	var raw pokemonResponse
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	pokemon := &models.Pokemon{
		ID:        raw.ID,
		Name:      raw.Name,
		SpriteURL: raw.Sprites.FrontDefault,
	}
	for _, t := range raw.Types {
		pokemon.Types = append(pokemon.Types, t.Type.Name)
	}
	for _, a := range raw.Abilities {
		pokemon.Abilities = append(pokemon.Abilities, a.Ability.Name)
	}
	for _, s := range raw.Stats {
		switch s.Stat.Name {
		case "hp":
			pokemon.Stats.HP = s.BaseStat
		case "attack":
			pokemon.Stats.Attack = s.BaseStat
		case "defense":
			pokemon.Stats.Defense = s.BaseStat
		case "special-attack":
			pokemon.Stats.SpecialAttack = s.BaseStat
		case "special-defense":
			pokemon.Stats.SpecialDefense = s.BaseStat
		case "speed":
			pokemon.Stats.Speed = s.BaseStat
		}
	}
	return pokemon, nil
}

// List fetches one page of the catalog listing
func (c *Client) List(ctx context.Context, limit, offset int) (*models.PokemonList, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)

	list := &models.PokemonList{}
	if err := c.getJSON(ctx, url, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from catalog: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
