package service

import (
	"context"
	"errors"

	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

// ListCollection returns all items owned by userID, ordered by catalog
// pokemon id ascending.
func (s *Service) ListCollection(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	items, err := s.store.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}
	return items, nil
}

// AddToCollection saves a catalog entry into the user's collection. The
// storage-level unique constraint on (user, pokemon id) rejects duplicates
// even when two adds race.
func (s *Service) AddToCollection(ctx context.Context, userID int64, req models.AddPokemonRequest) (*models.CollectionItem, error) {
	item := &models.CollectionItem{
		UserID:    userID,
		PokemonID: req.PokemonID,
		Name:      req.Name,
		SpriteURL: req.SpriteURL,
		Note:      req.Note,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, serviceerrors.NewDuplicateItem()
		}
		return nil, serviceerrors.NewInternal(err)
	}

	s.log.Infof("Pokemon %d added to collection of user %d", item.PokemonID, userID)
	return item, nil
}

// RemoveFromCollection deletes an item scoped to its owner. A missing item
// and an item owned by someone else are indistinguishable to the caller.
func (s *Service) RemoveFromCollection(ctx context.Context, userID, itemID int64) error {
	if err := s.store.DeleteItem(ctx, itemID, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return serviceerrors.NewNotFoundOrUnauthorized()
		}
		return serviceerrors.NewInternal(err)
	}

	s.log.Infof("Item %d removed from collection of user %d", itemID, userID)
	return nil
}

// CollectionStats returns the number of items the user owns
func (s *Service) CollectionStats(ctx context.Context, userID int64) (*models.CollectionStats, error) {
	count, err := s.store.CountItemsByUser(ctx, userID)
	if err != nil {
		return nil, serviceerrors.NewInternal(err)
	}
	return &models.CollectionStats{TotalCount: count}, nil
}
