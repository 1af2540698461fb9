// Package service holds the business logic: registration and login,
// collection ownership and uniqueness rules, and the AI prompt glue.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/auth"
	"github.com/pokevault/pokedex-service/internal/models"
)

// Store is the persistence surface the service depends on.
// *repository.Repository satisfies it.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)

	CreateItem(ctx context.Context, item *models.CollectionItem) error
	ListItemsByUser(ctx context.Context, userID int64) ([]models.CollectionItem, error)
	DeleteItem(ctx context.Context, id, userID int64) error
	CountItemsByUser(ctx context.Context, userID int64) (int64, error)
}

// TextGenerator is the opaque text-generation call to the LLM provider
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Catalog is the external read-only Pokémon catalog
type Catalog interface {
	Get(ctx context.Context, id int64) (*models.Pokemon, error)
	List(ctx context.Context, limit, offset int) (*models.PokemonList, error)
}

// Service handles business logic
type Service struct {
	store   Store
	tokens  *auth.TokenManager
	ai      TextGenerator
	catalog Catalog
	log     *logrus.Logger
}

// NewService initializes a new service. All external collaborators are
// injected here once at startup.
func NewService(store Store, tokens *auth.TokenManager, ai TextGenerator, catalog Catalog, log *logrus.Logger) *Service {
	return &Service{
		store:   store,
		tokens:  tokens,
		ai:      ai,
		catalog: catalog,
		log:     log,
	}
}
