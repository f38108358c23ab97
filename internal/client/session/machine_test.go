package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/store"
	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is a minimal store.Store keeping decoded values by key.
type fakeStore struct {
	mu      sync.Mutex
	values  map[store.Key]any
	corrupt map[store.Key]bool
	readErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[store.Key]any{}, corrupt: map[store.Key]bool{}}
}

func (f *fakeStore) Get(_ context.Context, key store.Key, v any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return false, f.readErr
	}
	if f.corrupt[key] {
		return false, &common.StorageError{Op: "read", Key: string(key), Err: common.ErrCorruptRecord}
	}
	val, ok := f.values[key]
	if !ok {
		return false, nil
	}
	switch dst := v.(type) {
	case *string:
		*dst = val.(string)
	case *models.User:
		*dst = val.(models.User)
	}
	return true, nil
}

func (f *fakeStore) Put(_ context.Context, key store.Key, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = v
	return nil
}

func (f *fakeStore) Remove(_ context.Context, key store.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeStore) Clear(ctx context.Context, keys ...store.Key) error {
	for _, k := range keys {
		_ = f.Remove(ctx, k)
	}
	return nil
}

func (f *fakeStore) Reset(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.values)
	return nil
}

func bootedMachine(t *testing.T, st store.Store) *Machine {
	t.Helper()
	m := NewMachine(st, WithSplash(time.Hour))
	t.Cleanup(m.Close)
	g, err := m.Start(context.Background())
	require.NoError(t, err)
	require.Equal(t, GateSplash, g)
	return m
}

func TestMachine_BootShowsSplashThenHome(t *testing.T) {
	st := newFakeStore()
	st.values[store.KeyOnboarding] = store.OnboardingCompleted
	st.values[store.KeyUser] = models.User{ID: "user_1", ProfileComplete: true}

	m := bootedMachine(t, st)
	assert.Equal(t, GateSplash, m.Gate())

	g, err := m.Dispatch(context.Background(), EventSplashElapsed)
	require.NoError(t, err)
	assert.Equal(t, GateHome, g)
}

func TestMachine_EventsBeforeSplashStayOnSplash(t *testing.T) {
	st := newFakeStore()
	m := bootedMachine(t, st)

	st.values[store.KeyOnboarding] = store.OnboardingCompleted
	g, err := m.Dispatch(context.Background(), EventOnboardingComplete)
	require.NoError(t, err)
	assert.Equal(t, GateSplash, g)
}

func TestMachine_FullFlow(t *testing.T) {
	st := newFakeStore()
	m := bootedMachine(t, st)
	ctx := context.Background()

	var mu sync.Mutex
	var seen []Gate
	m.Subscribe(func(_, to Gate) {
		mu.Lock()
		seen = append(seen, to)
		mu.Unlock()
	})

	g, err := m.Dispatch(ctx, EventSplashElapsed)
	require.NoError(t, err)
	assert.Equal(t, GateOnboarding, g)

	st.values[store.KeyOnboarding] = store.OnboardingCompleted
	require.NoError(t, m.OnOnboardingComplete(ctx))
	assert.Equal(t, GateAuth, m.Gate())

	st.values[store.KeyUser] = models.User{ID: "user_1"}
	require.NoError(t, m.OnAuthenticated(ctx))
	assert.Equal(t, GateProfileSetup, m.Gate())

	st.values[store.KeyUser] = models.User{ID: "user_1", ProfileComplete: true}
	require.NoError(t, m.OnProfileComplete(ctx))
	assert.Equal(t, GateHome, m.Gate())

	require.NoError(t, st.Clear(ctx, store.SessionKeys...))
	require.NoError(t, m.OnLogout(ctx))
	assert.Equal(t, GateAuth, m.Gate())

	// no-op dispatch does not notify
	require.NoError(t, m.OnLogout(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Gate{GateOnboarding, GateAuth, GateProfileSetup, GateHome, GateAuth}, seen)
}

func TestMachine_SplashTimerFires(t *testing.T) {
	st := newFakeStore()
	st.values[store.KeyOnboarding] = store.OnboardingCompleted

	m := NewMachine(st, WithSplash(10*time.Millisecond))
	t.Cleanup(m.Close)
	_, err := m.Start(context.Background())
	require.NoError(t, err)

	require.Eventually(t, func() bool { return m.Gate() == GateAuth }, time.Second, 5*time.Millisecond)
}

func TestMachine_CloseCancelsSplash(t *testing.T) {
	m := NewMachine(newFakeStore(), WithSplash(20*time.Millisecond))
	_, err := m.Start(context.Background())
	require.NoError(t, err)
	m.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, GateSplash, m.Gate())

	g, err := m.Dispatch(context.Background(), EventSplashElapsed)
	require.NoError(t, err)
	assert.Equal(t, GateSplash, g)
}

func TestMachine_RebootRearmsSplash(t *testing.T) {
	st := newFakeStore()
	m := bootedMachine(t, st)
	ctx := context.Background()

	_, err := m.Dispatch(ctx, EventSplashElapsed)
	require.NoError(t, err)
	assert.Equal(t, GateOnboarding, m.Gate())

	g, err := m.Dispatch(ctx, EventBoot)
	require.NoError(t, err)
	assert.Equal(t, GateSplash, g)
}

func TestMachine_CorruptUserTreatedAsAbsent(t *testing.T) {
	st := newFakeStore()
	st.values[store.KeyOnboarding] = store.OnboardingCompleted
	st.corrupt[store.KeyUser] = true

	m := bootedMachine(t, st)
	g, err := m.Dispatch(context.Background(), EventSplashElapsed)
	require.NoError(t, err)
	assert.Equal(t, GateAuth, g)
}

func TestMachine_ReadFailureKeepsGate(t *testing.T) {
	st := newFakeStore()
	m := bootedMachine(t, st)
	ctx := context.Background()

	_, err := m.Dispatch(ctx, EventSplashElapsed)
	require.NoError(t, err)

	st.readErr = &common.StorageError{Op: "read", Err: errors.New("io")}
	g, err := m.Dispatch(ctx, EventSignalsChanged)
	require.Error(t, err)
	assert.Equal(t, GateOnboarding, g)
	assert.Equal(t, GateOnboarding, m.Gate())
}

func TestMachine_WithRealStoreLogoutKeepsOnboarding(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Put(ctx, store.KeyOnboarding, store.OnboardingCompleted))
	require.NoError(t, st.Put(ctx, store.KeyUser, models.User{ID: "user_1", Name: "User", Email: "a@b.c", ProfileComplete: true}))
	require.NoError(t, st.Put(ctx, store.KeyHistory, []models.HistoryEntry{}))

	m := bootedMachine(t, st)
	g, err := m.Dispatch(ctx, EventSplashElapsed)
	require.NoError(t, err)
	require.Equal(t, GateHome, g)

	require.NoError(t, st.Clear(ctx, store.SessionKeys...))
	require.NoError(t, m.OnLogout(ctx))
	assert.Equal(t, GateAuth, m.Gate())

	// a fresh boot lands on AUTH too
	m2 := bootedMachine(t, st)
	g, err = m2.Dispatch(ctx, EventSplashElapsed)
	require.NoError(t, err)
	assert.Equal(t, GateAuth, g)
}
