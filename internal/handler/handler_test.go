package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/auth"
	"github.com/pokevault/pokedex-service/internal/config"
	"github.com/pokevault/pokedex-service/internal/handler"
	"github.com/pokevault/pokedex-service/internal/middleware"
	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/pokevault/pokedex-service/internal/service"
)

// memStore is an in-memory service.Store mirroring the database constraints
type memStore struct {
	users      map[int64]*models.User
	items      map[int64]*models.CollectionItem
	nextUserID int64
	nextItemID int64
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[int64]*models.User),
		items: make(map[int64]*models.CollectionItem),
	}
}

func (s *memStore) CreateUser(_ context.Context, user *models.User) error {
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

func (s *memStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *memStore) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *memStore) CreateItem(_ context.Context, item *models.CollectionItem) error {
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

func (s *memStore) ListItemsByUser(_ context.Context, userID int64) ([]models.CollectionItem, error) {
	items := []models.CollectionItem{}
	for _, item := range s.items {
		if item.UserID == userID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PokemonID < items[j].PokemonID })
	return items, nil
}

func (s *memStore) DeleteItem(_ context.Context, id, userID int64) error {
	item, ok := s.items[id]
	if !ok || item.UserID != userID {
		return models.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memStore) CountItemsByUser(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, item := range s.items {
		if item.UserID == userID {
			count++
		}
	}
	return count, nil
}

type stubAI struct{ reply string }

func (a *stubAI) Complete(_ context.Context, _ string) (string, error) {
	return a.reply, nil
}

type stubCatalog struct{ pokemon map[int64]*models.Pokemon }

func (c *stubCatalog) Get(_ context.Context, id int64) (*models.Pokemon, error) {
	pokemon, ok := c.pokemon[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return pokemon, nil
}

func (c *stubCatalog) List(_ context.Context, limit, offset int) (*models.PokemonList, error) {
	return &models.PokemonList{Count: len(c.pokemon)}, nil
}

// newTestServer builds the full HTTP surface over the in-memory store
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{
		Env:       "development",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	ai := &stubAI{reply: "**Charizard**\nsolid pick"}
	catalog := &stubCatalog{pokemon: map[int64]*models.Pokemon{
		25: {ID: 25, Name: "pikachu", Types: []string{"electric"}},
	}}
	svc := service.NewService(newMemStore(), tokens, ai, catalog, log)
	h := handler.NewHandler(svc, cfg, log)

	srv := httptest.NewServer(h.Router(middleware.NewAuthMiddleware(tokens)))
	t.Cleanup(srv.Close)

	return srv, newClientWithJar(t, srv)
}

// newClientWithJar returns a client with its own cookie jar, i.e. its
// own session.
func newClientWithJar(t *testing.T, srv *httptest.Server) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar, Timeout: 5 * time.Second}
}
