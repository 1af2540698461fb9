package models

import "time"

// CollectionItem is a catalog entry saved into a user's collection
type CollectionItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	PokemonID int64     `json:"pokemonId"`
	Name      string    `json:"name"`
	SpriteURL string    `json:"spriteUrl"`
	Note      *string   `json:"note,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

// AddPokemonRequest is the payload for POST /api/collection
type AddPokemonRequest struct {
	PokemonID int64   `json:"pokemonId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	SpriteURL string  `json:"spriteUrl" validate:"required,url"`
	Note      *string `json:"note,omitempty"`
}

// CollectionStats is the response for GET /api/collection/stats
type CollectionStats struct {
	TotalCount int64 `json:"totalCount"`
}
