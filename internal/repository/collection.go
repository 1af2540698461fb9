package repository

import (
	"context"
	"fmt"

	"github.com/pokevault/pokedex-service/internal/models"
)

// CreateItem inserts a new collection item. The (user_id, pokemon_id) unique
// constraint guarantees at most one row per pair even under concurrent adds;
// a violation surfaces as models.ErrDuplicate.
func (r *Repository) CreateItem(ctx context.Context, item *models.CollectionItem) error {
	query := `
		INSERT INTO collection_items (user_id, pokemon_id, name, sprite_url, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, added_at`
	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.PokemonID, item.Name, item.SpriteURL, item.Note).
		Scan(&item.ID, &item.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicate
		}
		return fmt.Errorf("failed to create collection item: %w", err)
	}
	return nil
}

// ListItemsByUser retrieves all items owned by userID, ordered by catalog
// pokemon id ascending.
func (r *Repository) ListItemsByUser(ctx context.Context, userID int64) ([]models.CollectionItem, error) {
	query := `
		SELECT id, user_id, pokemon_id, name, sprite_url, note, added_at
		FROM collection_items
		WHERE user_id = $1
		ORDER BY pokemon_id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection items: %w", err)
	}
	defer rows.Close()

	items := []models.CollectionItem{}
	for rows.Next() {
		var item models.CollectionItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.PokemonID,
			&item.Name, &item.SpriteURL, &item.Note, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list collection items: %w", err)
	}
	return items, nil
}

// ListRecentItems retrieves the latest additions of a user, newest first.
// Used by the digest scheduler.
func (r *Repository) ListRecentItems(ctx context.Context, userID int64, limit int) ([]models.CollectionItem, error) {
	query := `
		SELECT id, user_id, pokemon_id, name, sprite_url, note, added_at
		FROM collection_items
		WHERE user_id = $1
		ORDER BY added_at DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent items: %w", err)
	}
	defer rows.Close()

	items := []models.CollectionItem{}
	for rows.Next() {
		var item models.CollectionItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.PokemonID,
			&item.Name, &item.SpriteURL, &item.Note, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list recent items: %w", err)
	}
	return items, nil
}

// DeleteItem deletes the item only when it is owned by userID.
// Returns models.ErrNotFound when no row matched, which deliberately does not
// distinguish a missing item from one owned by another user.
func (r *Repository) DeleteItem(ctx context.Context, id, userID int64) error {
	query := `
		DELETE FROM collection_items
		WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete collection item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete collection item: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CountItemsByUser returns the number of items owned by userID
func (r *Repository) CountItemsByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM collection_items
		WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count collection items: %w", err)
	}
	return count, nil
}
