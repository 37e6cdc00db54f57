package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BielosX/wombat/pokedex/src/pokeapi"
)

const artworkUrlTemplate = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"

var ErrInvalidId = errors.New("invalid pokemon id")

// Pokemon is a card: a listing entry with its id and artwork derived from the url.
type Pokemon struct {
	Name  string   `json:"name"`
	Url   string   `json:"url"`
	Id    int      `json:"id"`
	Image string   `json:"image"`
	Types []string `json:"types"`
}

// ParseId reads the last non-empty path segment of url as a base-10 integer.
func ParseId(url string) (int, error) {
	segments := strings.FieldsFunc(url, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidId, url)
	}
	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidId, url)
	}
	return id, nil
}

func ImageUrl(id int) string {
	return fmt.Sprintf(artworkUrlTemplate, id)
}

// ToCards maps a listing page to cards in input order. A single unparsable url fails the whole page.
func ToCards(result *pokeapi.PokemonListResult) ([]Pokemon, error) {
	if result == nil {
		return []Pokemon{}, nil
	}
	cards := make([]Pokemon, 0, len(result.Results))
	for _, entry := range result.Results {
		id, err := ParseId(entry.Url)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", entry.Name, err)
		}
		cards = append(cards, Pokemon{
			Name:  entry.Name,
			Url:   entry.Url,
			Id:    id,
			Image: ImageUrl(id),
			Types: []string{},
		})
	}
	return cards, nil
}

// CardFromDetail builds a card for a fetched detail. baseUrl is the API root the detail was fetched from.
func CardFromDetail(detail PokemonDetail, baseUrl string) Pokemon {
	types := make([]string, len(detail.Types))
	copy(types, detail.Types)
	return Pokemon{
		Name:  detail.Name,
		Url:   fmt.Sprintf("%s/pokemon/%d/", strings.TrimRight(baseUrl, "/"), detail.Id),
		Id:    detail.Id,
		Image: detail.DisplayImage(),
		Types: types,
	}
}
