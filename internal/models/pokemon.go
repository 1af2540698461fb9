package models

// Pokemon is the subset of catalog data the service works with
type Pokemon struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Types     []string     `json:"types"`
	Abilities []string     `json:"abilities"`
	Stats     PokemonStats `json:"stats"`
	SpriteURL string       `json:"spriteUrl"`
}

// PokemonStats holds base battle stats from the catalog
type PokemonStats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
	Speed          int `json:"speed"`
}

// PokemonListEntry is a single entry of a catalog list page
type PokemonListEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonList is one page of the catalog listing
type PokemonList struct {
	Count   int                `json:"count"`
	Results []PokemonListEntry `json:"results"`
}
