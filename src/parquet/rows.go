package parquet

import (
	"fmt"

	"github.com/BielosX/wombat/pokedex/src/helper"
)

// ToPokemon expands a detail record into one row per type.
func ToPokemon(detail helper.PokemonDetail, generation int32) ([]Pokemon, error) {
	if len(detail.Types) == 0 {
		return nil, fmt.Errorf("pokemon %s has no types", detail.Name)
	}
	image := detail.DisplayImage()
	entries := make([]Pokemon, 0, len(detail.Types))
	for _, typeName := range detail.Types {
		entries = append(entries, Pokemon{
			Id:         int32(detail.Id),
			Name:       detail.Name,
			Weight:     detail.Weight,
			Height:     detail.Height,
			Type:       typeName,
			Generation: generation,
			Image:      image,
		})
	}
	return entries, nil
}
