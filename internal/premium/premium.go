// Package premium owns the premium entitlement: whether the user bought the
// lifetime unlock and therefore may track more than FreePlantLimit plants.
//
// The flag is persisted under common.PremiumStorageKey as the string "true".
// Every change goes through one update path that persists first and only
// then flips the in-memory value.
package premium

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/plantparent/internal/common"
	"github.com/dmitrijs2005/plantparent/internal/logging"
	"github.com/dmitrijs2005/plantparent/internal/storage/kv"
)

const (
	// FreePlantLimit is how many plants a non-premium user may track.
	FreePlantLimit = 3

	// ProductID identifies the lifetime unlock in the store listing.
	ProductID = "plant_parent_premium_lifetime"

	storedTrue = "true"
)

type Service struct {
	repo kv.Repository
	log  logging.Logger

	mu      sync.RWMutex
	premium bool
}

func New(repo kv.Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log.With("component", "premium")}
}

// Load reads the persisted flag. A read failure is logged and treated as
// not premium.
func (s *Service) Load(ctx context.Context) bool {
	v, err := s.repo.Get(ctx, common.PremiumStorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read premium status", "error", err)
		v = nil
	}

	s.mu.Lock()
	s.premium = string(v) == storedTrue
	s.mu.Unlock()

	return s.IsPremium()
}

func (s *Service) IsPremium() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.premium
}

// CanAddPlant reports whether one more plant may be added when currentCount
// plants already exist.
func (s *Service) CanAddPlant(_ context.Context, currentCount int) error {
	if s.IsPremium() || currentCount < FreePlantLimit {
		return nil
	}
	return fmt.Errorf("%w: free plan allows %d plants", common.ErrLimitReached, FreePlantLimit)
}

// Purchase simulates buying ProductID. It reports false when the unlock
// could not be persisted.
func (s *Service) Purchase(ctx context.Context) (bool, error) {
	s.log.Info(ctx, "purchasing premium", "product", ProductID)

	if err := s.setPremium(ctx, true); err != nil {
		return false, fmt.Errorf("purchase failed: %w", err)
	}
	return true, nil
}

func (s *Service) EnableForTesting(ctx context.Context) error {
	return s.setPremium(ctx, true)
}

func (s *Service) setPremium(ctx context.Context, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if v {
		err = s.repo.Set(ctx, common.PremiumStorageKey, []byte(storedTrue))
	} else {
		err = s.repo.Delete(ctx, common.PremiumStorageKey)
	}
	if err != nil {
		return fmt.Errorf("failed to persist premium status: %w", err)
	}

	s.premium = v
	return nil
}
