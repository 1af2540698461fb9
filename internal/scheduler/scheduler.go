// Package scheduler runs the periodic collection digest job.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/models"
)

const recentItemsPerDigest = 5

// DigestStore is the persistence surface the digest job reads from
type DigestStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CountItemsByUser(ctx context.Context, userID int64) (int64, error)
	ListRecentItems(ctx context.Context, userID int64, limit int) ([]models.CollectionItem, error)
}

// DigestSender delivers a digest to one user
type DigestSender interface {
	SendCollectionDigest(to string, total int64, recent []models.CollectionItem) error
}

// Scheduler wires the digest job into a cron runner
type Scheduler struct {
	store  DigestStore
	sender DigestSender
	cron   *cron.Cron
	log    *logrus.Logger
}

// NewScheduler creates a scheduler; Start registers and runs the digest job
func NewScheduler(store DigestStore, sender DigestSender, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		sender: sender,
		cron:   cron.New(),
		log:    log,
	}
}

// Start registers the digest job with the given cron spec and starts the
// runner. Returns an error only for an invalid spec.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunDigest); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Digest scheduler started with spec %q", spec)
	return nil
}

// Stop halts the cron runner
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunDigest emails every user with a non-empty collection a summary.
// Per-user failures are logged and skipped so one bad address cannot stall
// the rest of the run.
func (s *Scheduler) RunDigest() {
	ctx := context.Background()

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.log.Errorf("Digest run failed to list users: %v", err)
		return
	}

	for _, user := range users {
		total, err := s.store.CountItemsByUser(ctx, user.ID)
		if err != nil {
			s.log.Errorf("Digest for %s failed to count items: %v", user.Email, err)
			continue
		}
		if total == 0 {
			continue
		}

		recent, err := s.store.ListRecentItems(ctx, user.ID, recentItemsPerDigest)
		if err != nil {
			s.log.Errorf("Digest for %s failed to load recent items: %v", user.Email, err)
			continue
		}

		if err := s.sender.SendCollectionDigest(user.Email, total, recent); err != nil {
			s.log.Errorf("Digest for %s failed to send: %v", user.Email, err)
		}
	}
}
