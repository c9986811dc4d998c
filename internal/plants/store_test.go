package plants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrijs2005/plantparent/internal/common"
	"github.com/dmitrijs2005/plantparent/internal/logging"
	"github.com/dmitrijs2005/plantparent/internal/models"
	"github.com/dmitrijs2005/plantparent/internal/premium"
	"github.com/dmitrijs2005/plantparent/internal/storage"
	"github.com/dmitrijs2005/plantparent/internal/storage/kv"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var t0 = time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func seqIDs() IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// faultyRepo fails Update when failUpdate is set.
type faultyRepo struct {
	kv.Repository
	mu         sync.Mutex
	failUpdate bool
	getErr     error
}

func (f *faultyRepo) setFail(v bool) {
	f.mu.Lock()
	f.failUpdate = v
	f.mu.Unlock()
}

func (f *faultyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Repository.Get(ctx, key)
}

func (f *faultyRepo) Update(ctx context.Context, key string, fn kv.UpdateFunc) ([]byte, error) {
	f.mu.Lock()
	fail := f.failUpdate
	f.mu.Unlock()
	if fail {
		return f.Repository.Update(ctx, key, func(current []byte) ([]byte, error) {
			if _, err := fn(current); err != nil {
				return nil, err
			}
			return nil, kv.ErrUnavailable
		})
	}
	return f.Repository.Update(ctx, key, fn)
}

type fixture struct {
	store *Store
	repo  kv.Repository
	clock *fakeClock
	prem  *premium.Service
}

func newFixture(t *testing.T, repo kv.Repository) *fixture {
	t.Helper()
	if repo == nil {
		repo = kv.NewMemoryRepository()
	}
	clock := &fakeClock{now: t0}
	prem := premium.New(repo, logging.Discard())
	s := New(repo, prem, logging.Discard(), WithClock(clock.Now), WithIDGenerator(seqIDs()))
	t.Cleanup(func() { _ = s.Close() })
	return &fixture{store: s, repo: repo, clock: clock, prem: prem}
}

func draft(name string) models.PlantDraft {
	return models.PlantDraft{
		Name:                 name,
		Species:              "Monstera deliciosa",
		Location:             "living-room",
		Notes:                "near the window",
		WateringFrequency:    "7",
		FertilizingFrequency: "30",
	}
}

func storedPlants(t *testing.T, repo kv.Repository) []models.Plant {
	t.Helper()
	raw, err := repo.Get(context.Background(), common.PlantsStorageKey)
	require.NoError(t, err)
	if raw == nil {
		return nil
	}
	var out []models.Plant
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestLoad_MissingDocumentIsEmpty(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.store.Load(ctx))
	got, err := f.store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_CorruptDocumentIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, common.PlantsStorageKey, []byte("{not json")))
	f := newFixture(t, repo)

	require.NoError(t, f.store.Load(ctx))
	n, err := f.store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoad_ReadFailureKeepsCurrentState(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{Repository: kv.NewMemoryRepository()}
	f := newFixture(t, repo)

	_, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	repo.getErr = kv.ErrUnavailable
	require.NoError(t, f.store.Load(ctx))

	n, err := f.store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoad_RepairsLegacyDocument(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	doc := `[{"id":"1727000000000","name":"Ivy","wateringFrequency":7,
		"careLog":[{"id":"c1","type":"water","timestamp":"2025-08-30T10:00:00.000Z"}]}]`
	require.NoError(t, repo.Set(ctx, common.PlantsStorageKey, []byte(doc)))
	f := newFixture(t, repo)

	require.NoError(t, f.store.Load(ctx))
	p, err := f.store.Get(ctx, "1727000000000")
	require.NoError(t, err)

	assert.Equal(t, models.Frequency("7"), p.WateringFrequency)
	assert.NotNil(t, p.Photos)
	require.NotNil(t, p.LastWatered)
	assert.Equal(t, time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC), *p.LastWatered)
	assert.Nil(t, p.LastFertilized)
}

func TestAdd_RoundTripThroughLoad(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	added, err := f.store.Add(ctx, draft("Monstera"))
	require.NoError(t, err)

	reopened := New(f.repo, nil, logging.Discard())
	defer reopened.Close()
	require.NoError(t, reopened.Load(ctx))

	got, err := reopened.List(ctx)
	require.NoError(t, err)

	want := []models.Plant{{
		ID:                   "id-1",
		Name:                 "Monstera",
		Species:              "Monstera deliciosa",
		Location:             "living-room",
		Notes:                "near the window",
		WateringFrequency:    "7",
		FertilizingFrequency: "30",
		CreatedAt:            t0,
		Photos:               []models.Photo{},
		CareLog:              []models.CareEntry{},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded plants mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[0], added); diff != "" {
		t.Errorf("Add() result mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_ValidationFailsBeforeWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	_, err := f.store.Add(ctx, models.PlantDraft{Name: "   "})
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Nil(t, storedPlants(t, f.repo))
}

func TestAdd_FreeLimitBlocksBeforePersistence(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	for i := 0; i < premium.FreePlantLimit; i++ {
		_, err := f.store.Add(ctx, draft(fmt.Sprintf("Plant %d", i)))
		require.NoError(t, err)
	}

	_, err := f.store.Add(ctx, draft("One too many"))
	assert.ErrorIs(t, err, ErrPlantLimitReached)

	n, err := f.store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, storedPlants(t, f.repo), 3)
}

func TestAdd_PremiumLiftsLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.prem.EnableForTesting(ctx))

	for i := 0; i < 5; i++ {
		_, err := f.store.Add(ctx, draft(fmt.Sprintf("Plant %d", i)))
		require.NoError(t, err)
	}
	assert.Len(t, storedPlants(t, f.repo), 5)
}

func TestUpdate_MergesFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	p, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	loc := "bathroom"
	freq := models.Frequency("3")
	require.NoError(t, f.store.Update(ctx, p.ID, models.PlantPatch{Location: &loc, WateringFrequency: &freq}))

	got, err := f.store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "bathroom", got.Location)
	assert.Equal(t, models.Frequency("3"), got.WateringFrequency)
	assert.Equal(t, "Fern", got.Name)
	assert.Equal(t, "bathroom", storedPlants(t, f.repo)[0].Location)
}

func TestUpdate_EmptyPatchIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	p, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)
	before := storedPlants(t, f.repo)

	require.NoError(t, f.store.Update(ctx, p.ID, models.PlantPatch{}))
	require.NoError(t, f.store.Update(ctx, p.ID, models.PlantPatch{}))

	got, err := f.store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, before, storedPlants(t, f.repo))
}

func TestUpdate_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	_, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	name := "Ghost"
	require.NoError(t, f.store.Update(ctx, "missing", models.PlantPatch{Name: &name}))
	assert.Equal(t, "Fern", storedPlants(t, f.repo)[0].Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	a, err := f.store.Add(ctx, draft("A"))
	require.NoError(t, err)
	b, err := f.store.Add(ctx, draft("B"))
	require.NoError(t, err)

	require.NoError(t, f.store.Delete(ctx, a.ID))
	require.NoError(t, f.store.Delete(ctx, "missing"))

	got, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	_, err = f.store.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddPhoto(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	p, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	ph, err := f.store.AddPhoto(ctx, p.ID, "file:///photos/fern.jpg")
	require.NoError(t, err)
	assert.Equal(t, models.Photo{ID: "id-2", URI: "file:///photos/fern.jpg", Timestamp: t0.Add(time.Hour)}, ph)

	got, err := f.store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Photo{ph}, got.Photos)

	_, err = f.store.AddPhoto(ctx, "missing", "file:///x.jpg")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.store.AddPhoto(ctx, p.ID, " ")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLogCare_WaterTouchesOnlyLastWatered(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	p, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	_, err = f.store.LogCare(ctx, p.ID, models.CareFertilize)
	require.NoError(t, err)
	fertilizedAt := t0

	f.clock.Advance(48 * time.Hour)
	e, err := f.store.LogCare(ctx, p.ID, models.CareWater)
	require.NoError(t, err)

	got, err := f.store.Get(ctx, p.ID)
	require.NoError(t, err)

	require.Len(t, got.CareLog, 2)
	assert.Equal(t, e, got.CareLog[1])
	assert.Equal(t, models.CareWater, e.Type)
	require.NotNil(t, got.LastWatered)
	assert.Equal(t, t0.Add(48*time.Hour), *got.LastWatered)
	assert.Equal(t, e.Timestamp, *got.LastWatered)
	require.NotNil(t, got.LastFertilized)
	assert.Equal(t, fertilizedAt, *got.LastFertilized)
}

func TestLogCare_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	p, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	_, err = f.store.LogCare(ctx, p.ID, models.CareType("prune"))
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.store.LogCare(ctx, "missing", models.CareWater)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersistFailure_RollsBackMemory(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{Repository: kv.NewMemoryRepository()}
	f := newFixture(t, repo)
	p, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	repo.setFail(true)

	_, err = f.store.LogCare(ctx, p.ID, models.CareWater)
	assert.ErrorIs(t, err, ErrPersist)

	_, err = f.store.Add(ctx, draft("Ivy"))
	assert.ErrorIs(t, err, ErrPersist)

	got, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].CareLog)
	assert.Nil(t, got[0].LastWatered)

	repo.setFail(false)
	_, err = f.store.LogCare(ctx, p.ID, models.CareWater)
	require.NoError(t, err)
}

func TestMutationsStartFromStoredDocument(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	_, err := f.store.Add(ctx, draft("A"))
	require.NoError(t, err)

	// another writer appends behind the store's back
	other := New(f.repo, nil, logging.Discard(), WithIDGenerator(func() string { return "other" }))
	defer other.Close()
	_, err = other.Add(ctx, draft("B"))
	require.NoError(t, err)

	_, err = f.store.Add(ctx, draft("C"))
	require.NoError(t, err)

	var names []string
	for _, p := range storedPlants(t, f.repo) {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestConcurrentLogCare_NoLostUpdates(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	s := New(repo, nil, logging.Discard())
	defer s.Close()

	p, err := s.Add(ctx, draft("Fern"))
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.LogCare(ctx, p.ID, models.CareWater)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.CareLog, n)
}

func TestSQLiteBackedStore(t *testing.T) {
	ctx := context.Background()
	repos, err := storage.Open(ctx, "file:plants_store_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	f := newFixture(t, repos.KV)
	p, err := f.store.Add(ctx, draft("Fern"))
	require.NoError(t, err)
	_, err = f.store.LogCare(ctx, p.ID, models.CareWater)
	require.NoError(t, err)

	stored := storedPlants(t, repos.KV)
	require.Len(t, stored, 1)
	assert.Len(t, stored[0].CareLog, 1)
	assert.NotNil(t, stored[0].LastWatered)
}

func TestClosedStore(t *testing.T) {
	s := New(kv.NewMemoryRepository(), nil, logging.Discard())
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.List(context.Background())
	assert.True(t, errors.Is(err, ErrClosed))
}

func TestCanceledContext(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.store.Count(ctx)
	assert.Error(t, err)
}
