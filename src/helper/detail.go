package helper

import "github.com/BielosX/wombat/pokedex/src/pokeapi"

type Sprites struct {
	Primary         *string `json:"primary"`
	OfficialArtwork *string `json:"officialArtwork"`
	Home            *string `json:"home"`
}

type Stat struct {
	Name     string `json:"name"`
	BaseStat int32  `json:"baseStat"`
}

// PokemonDetail is the flattened detail record. Height is in decimeters, weight in hectograms.
type PokemonDetail struct {
	Id         int      `json:"id"`
	Name       string   `json:"name"`
	Sprites    Sprites  `json:"sprites"`
	Types      []string `json:"types"`
	Height     int32    `json:"height"`
	Weight     int32    `json:"weight"`
	Abilities  []string `json:"abilities"`
	Stats      []Stat   `json:"stats"`
	Moves      []string `json:"moves"`
	SpeciesUrl string   `json:"speciesUrl"`
}

func ToDetail(resp *pokeapi.PokemonResponse) PokemonDetail {
	detail := PokemonDetail{
		Id:         int(resp.Id),
		Name:       resp.Name,
		Sprites:    Sprites{Primary: resp.Sprites.FrontDefault},
		Types:      make([]string, 0, len(resp.Types)),
		Height:     resp.Height,
		Weight:     resp.Weight,
		Abilities:  make([]string, 0, len(resp.Abilities)),
		Stats:      make([]Stat, 0, len(resp.Stats)),
		Moves:      make([]string, 0, len(resp.Moves)),
		SpeciesUrl: resp.Species.Url,
	}
	if other := resp.Sprites.Other; other != nil {
		if other.OfficialArtwork != nil {
			detail.Sprites.OfficialArtwork = other.OfficialArtwork.FrontDefault
		}
		if other.Home != nil {
			detail.Sprites.Home = other.Home.FrontDefault
		}
	}
	for _, t := range resp.Types {
		detail.Types = append(detail.Types, t.Type.Name)
	}
	for _, a := range resp.Abilities {
		detail.Abilities = append(detail.Abilities, a.Ability.Name)
	}
	for _, s := range resp.Stats {
		detail.Stats = append(detail.Stats, Stat{Name: s.Stat.Name, BaseStat: s.BaseStat})
	}
	for _, m := range resp.Moves {
		detail.Moves = append(detail.Moves, m.Move.Name)
	}
	return detail
}

// DisplayImage picks official artwork, then home, then the primary sprite, then the artwork url convention.
func (d PokemonDetail) DisplayImage() string {
	for _, candidate := range []*string{d.Sprites.OfficialArtwork, d.Sprites.Home, d.Sprites.Primary} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return ImageUrl(d.Id)
}
