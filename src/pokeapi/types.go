package pokeapi

// NamedResource is the {name, url} reference PokeAPI uses for every linked resource.
type NamedResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type PokemonListResult struct {
	Count    int32           `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

type PokemonType struct {
	Slot int32         `json:"slot"`
	Type NamedResource `json:"type"`
}

type PokemonAbility struct {
	Slot     int32         `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

type PokemonStat struct {
	BaseStat int32         `json:"base_stat"`
	Effort   int32         `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type PokemonMove struct {
	Move NamedResource `json:"move"`
}

type SpriteVariant struct {
	FrontDefault *string       `json:"front_default"`
}

type OtherSprites struct {
	OfficialArtwork *SpriteVariant `json:"official-artwork,omitempty"`
	Home            *SpriteVariant `json:"home,omitempty"`
}

type PokemonSprites struct {
	FrontDefault *string       `json:"front_default"`
	Other        *OtherSprites `json:"other,omitempty"`
}

// PokemonResponse is the raw body of /pokemon/{id or name}.
type PokemonResponse struct {
	Id        int32            `json:"id"`
	Name      string           `json:"name"`
	Weight    int32            `json:"weight"`
	Height    int32            `json:"height"`
	Sprites   PokemonSprites   `json:"sprites"`
	Types     []PokemonType    `json:"types"`
	Abilities []PokemonAbility `json:"abilities"`
	Stats     []PokemonStat    `json:"stats"`
	Moves     []PokemonMove    `json:"moves"`
	Species   NamedResource    `json:"species"`
}

type PokemonSpecies struct {
	Id         int32         `json:"id"`
	Name       string        `json:"name"`
	Generation NamedResource `json:"generation"`
}

type PokemonGeneration struct {
	Id   int32  `json:"id"`
	Name string `json:"name"`
}
