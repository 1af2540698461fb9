package service

import (
	"context"

	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

// BrowseCatalog proxies one page of the external catalog listing
func (s *Service) BrowseCatalog(ctx context.Context, limit, offset int) (*models.PokemonList, error) {
	list, err := s.catalog.List(ctx, limit, offset)
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}
	return list, nil
}

// CatalogPokemon proxies a single catalog entry
func (s *Service) CatalogPokemon(ctx context.Context, id int64) (*models.Pokemon, error) {
	pokemon, err := s.catalog.Get(ctx, id)
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}
	return pokemon, nil
}
