package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/models"
)

// fakeStore is an in-memory Store with the same uniqueness behavior the
// postgres constraints enforce.
type fakeStore struct {
	users      map[int64]*models.User
	items      map[int64]*models.CollectionItem
	nextUserID int64
	nextItemID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[int64]*models.User),
		items: make(map[int64]*models.CollectionItem),
	}
}

func (s *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.ErrDuplicate
		}
	}
	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = time.Now()
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakeStore) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *fakeStore) CreateItem(_ context.Context, item *models.CollectionItem) error {
	for _, existing := range s.items {
		if existing.UserID == item.UserID && existing.PokemonID == item.PokemonID {
			return models.ErrDuplicate
		}
	}
	s.nextItemID++
	item.ID = s.nextItemID
	item.AddedAt = time.Now()
	clone := *item
	s.items[item.ID] = &clone
	return nil
}

func (s *fakeStore) ListItemsByUser(_ context.Context, userID int64) ([]models.CollectionItem, error) {
	items := []models.CollectionItem{}
	for _, item := range s.items {
		if item.UserID == userID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PokemonID < items[j].PokemonID })
	return items, nil
}

func (s *fakeStore) DeleteItem(_ context.Context, id, userID int64) error {
	item, ok := s.items[id]
	if !ok || item.UserID != userID {
		return models.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *fakeStore) CountItemsByUser(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, item := range s.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

// fakeAI records the last prompt and returns a canned completion
type fakeAI struct {
	lastPrompt string
	reply      string
	err        error
}

func (a *fakeAI) Complete(_ context.Context, prompt string) (string, error) {
	a.lastPrompt = prompt
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

// fakeCatalog serves canned catalog entries
type fakeCatalog struct {
	pokemon map[int64]*models.Pokemon
	err     error
}

func (c *fakeCatalog) Get(_ context.Context, id int64) (*models.Pokemon, error) {
	if c.err != nil {
		return nil, c.err
	}
	pokemon, ok := c.pokemon[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return pokemon, nil
}

func (c *fakeCatalog) List(_ context.Context, limit, offset int) (*models.PokemonList, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &models.PokemonList{Count: len(c.pokemon)}, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
