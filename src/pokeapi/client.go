package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/BielosX/wombat/pokedex/src/httpreq"
	"go.uber.org/zap"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2"

// Client builds PokeAPI endpoint URLs and delegates every fetch to the shared transport.
// Transport errors are returned as is.
type Client struct {
	baseUrl   string
	transport *httpreq.Client
	sugar     *zap.SugaredLogger
}

func NewClient(transport *httpreq.Client, baseUrl string, sugar *zap.SugaredLogger) *Client {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	if transport == nil {
		transport = httpreq.NewClient(sugar)
	}
	return &Client{
		baseUrl:   normalizeBaseUrl(baseUrl),
		transport: transport,
		sugar:     sugar,
	}
}

func normalizeBaseUrl(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseUrl
	}
	return strings.TrimSuffix(raw, "/")
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

func (c *Client) ListUrl(limit, offset int32) string {
	return fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseUrl, limit, offset)
}

func (c *Client) DetailUrl(nameOrId string) string {
	return fmt.Sprintf("%s/pokemon/%s", c.baseUrl, nameOrId)
}

// ListPokemons returns one raw page of the listing. limit and offset are forwarded verbatim.
func (c *Client) ListPokemons(ctx context.Context, limit, offset int32) (*PokemonListResult, error) {
	result, err := httpreq.Get[PokemonListResult](ctx, c.transport, c.ListUrl(limit, offset), nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetPokemon(ctx context.Context, nameOrId string) (*PokemonResponse, error) {
	pokemon, err := httpreq.Get[PokemonResponse](ctx, c.transport, c.DetailUrl(nameOrId), nil)
	if err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// GetByUrl fetches an arbitrary absolute URL and returns the undecoded JSON body.
func (c *Client) GetByUrl(ctx context.Context, url string) (json.RawMessage, error) {
	return FetchByUrl[json.RawMessage](ctx, c, url)
}

// FetchByUrl fetches an arbitrary absolute URL, such as a species reference, into T.
// The host is not checked.
func FetchByUrl[T any](ctx context.Context, c *Client, url string) (T, error) {
	return httpreq.Get[T](ctx, c.transport, url, nil)
}

func (c *Client) GetPokemonSpecies(ctx context.Context, species NamedResource) (*PokemonSpecies, error) {
	pokemonSpecies, err := FetchByUrl[PokemonSpecies](ctx, c, species.Url)
	if err != nil {
		return nil, err
	}
	return &pokemonSpecies, nil
}

func (c *Client) GetPokemonGeneration(ctx context.Context, species NamedResource) (int32, error) {
	pokemonSpecies, err := c.GetPokemonSpecies(ctx, species)
	if err != nil {
		return 0, err
	}
	generation, err := FetchByUrl[PokemonGeneration](ctx, c, pokemonSpecies.Generation.Url)
	if err != nil {
		return 0, err
	}
	return generation.Id, nil
}

// ListPokemonDetails lists one page and fetches every entry's details concurrently.
// Results keep the listing order; failures are joined.
func (c *Client) ListPokemonDetails(ctx context.Context, limit, offset int32) ([]PokemonResponse, error) {
	result, err := c.ListPokemons(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	results := make([]PokemonResponse, len(result.Results))
	errs := make([]error, len(result.Results))
	var waitGroup sync.WaitGroup
	for i, entry := range result.Results {
		waitGroup.Add(1)
		go func(i int, url string) {
			defer waitGroup.Done()
			c.sugar.Infof("Fetching PokemonResponse %s", url)
			pokemon, err := FetchByUrl[PokemonResponse](ctx, c, url)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = pokemon
		}(i, entry.Url)
	}
	waitGroup.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
