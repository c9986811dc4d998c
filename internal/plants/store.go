package plants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/plantparent/internal/common"
	"github.com/dmitrijs2005/plantparent/internal/logging"
	"github.com/dmitrijs2005/plantparent/internal/models"
	"github.com/dmitrijs2005/plantparent/internal/storage/kv"
)

// Entitlements decides whether another plant may be added.
type Entitlements interface {
	CanAddPlant(ctx context.Context, currentCount int) error
}

type Clock func() time.Time

type IDGenerator func() string

type Option func(*Store)

func WithClock(c Clock) Option {
	return func(s *Store) { s.now = c }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.newID = g }
}

type request struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	resp chan error
}

type Store struct {
	repo  kv.Repository
	ent   Entitlements
	log   logging.Logger
	now   Clock
	newID IDGenerator

	reqs      chan request
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	// owned by the run goroutine
	plants []models.Plant
}

// New starts the store's writer goroutine. A nil ent places no limit on
// the number of plants. Call Close to stop it.
func New(repo kv.Repository, ent Entitlements, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		ent:     ent,
		log:     log.With("component", "plants"),
		now:     defaultClock,
		newID:   uuid.NewString,
		reqs:    make(chan request),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		plants:  []models.Plant{},
	}
	for _, o := range opts {
		o(s)
	}

	go s.run()
	return s
}

func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *Store) run() {
	defer close(s.stopped)
	for {
		select {
		case r := <-s.reqs:
			r.resp <- r.fn(r.ctx)
		case <-s.done:
			return
		}
	}
}

// Close stops the writer goroutine. Calls made afterwards fail with
// ErrClosed.
func (s *Store) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	<-s.stopped
	return nil
}

func (s *Store) do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resp := make(chan error, 1)

	select {
	case s.reqs <- request{ctx: ctx, fn: fn, resp: resp}:
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-resp:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Load replaces the in-memory collection with the stored document. Missing
// or unparsable data yields an empty collection; a failed read keeps the
// current one. Neither is reported as an error.
func (s *Store) Load(ctx context.Context) error {
	return s.do(ctx, func(ctx context.Context) error {
		raw, err := s.repo.Get(ctx, common.PlantsStorageKey)
		if err != nil {
			s.log.Warn(ctx, "failed to load plants", "error", err)
			return nil
		}
		s.plants = s.decode(ctx, raw)
		s.log.Debug(ctx, "plants loaded", "count", len(s.plants))
		return nil
	})
}

func (s *Store) decode(ctx context.Context, raw []byte) []models.Plant {
	if len(raw) == 0 {
		return []models.Plant{}
	}

	var plants []models.Plant
	if err := json.Unmarshal(raw, &plants); err != nil {
		s.log.Warn(ctx, "stored plants are unreadable, starting empty", "error", err)
		return []models.Plant{}
	}
	if plants == nil {
		return []models.Plant{}
	}
	for i := range plants {
		plants[i].Normalize()
	}
	return plants
}

// mutate applies fn to the stored collection inside one read-modify-write
// and, once the write is confirmed, adopts the result as the in-memory
// state. Errors from fn are returned as is; write failures wrap ErrPersist.
func (s *Store) mutate(ctx context.Context, fn func(plants []models.Plant) ([]models.Plant, error)) error {
	var opErr error
	stored, err := s.repo.Update(ctx, common.PlantsStorageKey, func(current []byte) ([]byte, error) {
		next, err := fn(s.decode(ctx, current))
		if err != nil {
			opErr = err
			return nil, err
		}
		return json.Marshal(next)
	})

	if opErr != nil {
		if errors.Is(opErr, errUnchanged) {
			return nil
		}
		return opErr
	}
	if err != nil {
		s.log.Error(ctx, "failed to save plants", "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	s.plants = s.decode(ctx, stored)
	return nil
}

func (s *Store) find(id string) (models.Plant, bool) {
	i := indexOf(s.plants, id)
	if i < 0 {
		return models.Plant{}, false
	}
	return s.plants[i].Clone(), true
}

func indexOf(plants []models.Plant, id string) int {
	return slices.IndexFunc(plants, func(p models.Plant) bool { return p.ID == id })
}

// Add stores a new plant built from d. A non-premium user at the plant
// limit gets ErrPlantLimitReached and nothing is written.
func (s *Store) Add(ctx context.Context, d models.PlantDraft) (models.Plant, error) {
	if err := d.Validate(); err != nil {
		return models.Plant{}, err
	}

	var added models.Plant
	err := s.do(ctx, func(ctx context.Context) error {
		var id string
		err := s.mutate(ctx, func(plants []models.Plant) ([]models.Plant, error) {
			if s.ent != nil {
				if err := s.ent.CanAddPlant(ctx, len(plants)); err != nil {
					return nil, err
				}
			}
			id = s.newID()
			return append(plants, models.NewPlant(id, d, s.now())), nil
		})
		if err != nil {
			return err
		}
		added, _ = s.find(id)
		return nil
	})
	if err != nil {
		return models.Plant{}, err
	}

	s.log.Info(ctx, "plant added", "id", added.ID, "name", added.Name)
	return added, nil
}

// Update merges patch into the plant with the given id. An unknown id or an
// empty patch changes nothing.
func (s *Store) Update(ctx context.Context, id string, patch models.PlantPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	return s.do(ctx, func(ctx context.Context) error {
		return s.mutate(ctx, func(plants []models.Plant) ([]models.Plant, error) {
			i := indexOf(plants, id)
			if i < 0 {
				return nil, errUnchanged
			}
			patch.Apply(&plants[i])
			return plants, nil
		})
	})
}

// Delete removes the plant with the given id, if present.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.do(ctx, func(ctx context.Context) error {
		return s.mutate(ctx, func(plants []models.Plant) ([]models.Plant, error) {
			i := indexOf(plants, id)
			if i < 0 {
				return nil, errUnchanged
			}
			return slices.Delete(plants, i, i+1), nil
		})
	})
	if err == nil {
		s.log.Info(ctx, "plant deleted", "id", id)
	}
	return err
}

// AddPhoto appends a photo to the plant's timeline.
func (s *Store) AddPhoto(ctx context.Context, id, uri string) (models.Photo, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return models.Photo{}, fmt.Errorf("%w: photo uri is required", common.ErrValidation)
	}

	var ph models.Photo
	err := s.do(ctx, func(ctx context.Context) error {
		return s.mutate(ctx, func(plants []models.Plant) ([]models.Plant, error) {
			i := indexOf(plants, id)
			if i < 0 {
				return nil, fmt.Errorf("%w: plant %s", ErrNotFound, id)
			}
			ph = models.Photo{ID: s.newID(), URI: uri, Timestamp: s.now()}
			plants[i].AddPhoto(ph)
			return plants, nil
		})
	})
	if err != nil {
		return models.Photo{}, err
	}
	return ph, nil
}

// LogCare records a care event. The log entry and the matching
// last-care timestamp change in the same write.
func (s *Store) LogCare(ctx context.Context, id string, c models.CareType) (models.CareEntry, error) {
	if err := c.Validate(); err != nil {
		return models.CareEntry{}, err
	}

	var e models.CareEntry
	err := s.do(ctx, func(ctx context.Context) error {
		return s.mutate(ctx, func(plants []models.Plant) ([]models.Plant, error) {
			i := indexOf(plants, id)
			if i < 0 {
				return nil, fmt.Errorf("%w: plant %s", ErrNotFound, id)
			}
			e = models.CareEntry{ID: s.newID(), Type: c, Timestamp: s.now()}
			plants[i].RecordCare(e)
			return plants, nil
		})
	})
	if err != nil {
		return models.CareEntry{}, err
	}

	s.log.Info(ctx, "care logged", "id", id, "type", c)
	return e, nil
}

// List returns a copy of every plant in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Plant, error) {
	var out []models.Plant
	err := s.do(ctx, func(context.Context) error {
		out = make([]models.Plant, 0, len(s.plants))
		for _, p := range s.plants {
			out = append(out, p.Clone())
		}
		return nil
	})
	return out, err
}

func (s *Store) Get(ctx context.Context, id string) (models.Plant, error) {
	var p models.Plant
	err := s.do(ctx, func(context.Context) error {
		var ok bool
		if p, ok = s.find(id); !ok {
			return fmt.Errorf("%w: plant %s", ErrNotFound, id)
		}
		return nil
	})
	return p, err
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.do(ctx, func(context.Context) error {
		n = len(s.plants)
		return nil
	})
	return n, err
}
