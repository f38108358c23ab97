package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/collections"
	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/store"
	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/dmitrijs2005/signon/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *store.KVStore {
	t.Helper()
	s, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newAccount(t *testing.T, st store.Store) (AccountService, *collections.Manager) {
	t.Helper()
	lists := collections.New(st)
	return NewAccountService(st, lists, "admin123", logging.Nop()), lists
}

// clearFailStore fails removal of selected keys.
type clearFailStore struct {
	store.Store
	fail map[store.Key]bool
}

func (c *clearFailStore) Clear(ctx context.Context, keys ...store.Key) error {
	var errs []error
	for _, k := range keys {
		if c.fail[k] {
			errs = append(errs, errors.New("locked"))
			continue
		}
		if err := c.Store.Remove(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &common.StorageError{Op: "clear", Err: errors.Join(errs...)}
}

func TestAccount_Login(t *testing.T) {
	st := openStore(t)
	svc, _ := newAccount(t, st)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginForm{Email: "", Password: ""})
	ve, ok := common.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")

	_, err = svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	u, err := svc.Login(ctx, LoginForm{Email: " asha@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.ID, "user_"))
	assert.Equal(t, "User", u.Name)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.False(t, u.ProfileComplete)

	got, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(u, got); diff != "" {
		t.Errorf("stored user mismatch (-want +got):\n%s", diff)
	}
}

func TestAccount_SignUp(t *testing.T) {
	svc, _ := newAccount(t, openStore(t))
	ctx := context.Background()

	_, err := svc.SignUp(ctx, SignUpForm{Name: "Asha", Email: "asha@example.com", Password: "secret1", ConfirmPassword: "secret2"})
	ve, ok := common.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "must match password", ve.Fields["confirmPassword"])

	_, err = svc.SignUp(ctx, SignUpForm{Name: "Asha", Email: "asha@example.com", Phone: "12345", Password: "secret1", ConfirmPassword: "secret1"})
	ve, ok = common.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "phone")

	u, err := svc.SignUp(ctx, SignUpForm{Name: " Asha ", Email: "asha@example.com", Phone: "+919876543210", Password: "secret1", ConfirmPassword: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)
	assert.Equal(t, "+919876543210", u.Phone)
	assert.False(t, u.ProfileComplete)
}

func TestAccount_CompleteProfile(t *testing.T) {
	svc, _ := newAccount(t, openStore(t))
	ctx := context.Background()

	_, err := svc.CompleteProfile(ctx, models.Profile{ISLName: "Ashu"})
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = svc.Login(ctx, LoginForm{Email: "a@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.CompleteProfile(ctx, models.Profile{ISLName: "   "})
	ve, ok := common.IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "islName")

	cur, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, cur.ProfileComplete, "failed validation must not persist")

	u, err := svc.CompleteProfile(ctx, models.Profile{ISLName: "Ashu", Age: 30, ISLLevel: models.LevelBeginner})
	require.NoError(t, err)
	assert.True(t, u.ProfileComplete)
	assert.Equal(t, "Ashu", u.DisplayName())

	u, err = svc.UpdateProfile(ctx, models.Profile{ISLName: "Ashu", Bio: "learning"})
	require.NoError(t, err)
	assert.True(t, u.ProfileComplete)
	assert.Equal(t, "learning", u.Bio)
	assert.Zero(t, u.Age)
}

func TestAccount_LogoutKeepsOnboarding(t *testing.T) {
	st := openStore(t)
	svc, lists := newAccount(t, st)
	ctx := context.Background()

	require.NoError(t, svc.CompleteOnboarding(ctx))
	_, err := svc.Login(ctx, LoginForm{Email: "a@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = lists.History.Add(ctx, collections.HistoryDraft{Kind: models.KindText, Input: "a", Output: "b"})
	require.NoError(t, err)
	_, err = lists.Favorites.Add(ctx, collections.FavoriteDraft{Kind: models.KindText, Content: "a", Translation: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	n, err := lists.History.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = lists.Favorites.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	var marker string
	found, err := st.Get(ctx, store.KeyOnboarding, &marker)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAccount_LogoutPartialFailure(t *testing.T) {
	inner := openStore(t)
	st := &clearFailStore{Store: inner, fail: map[store.Key]bool{store.KeyHistory: true}}
	svc, lists := newAccount(t, st)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginForm{Email: "a@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = lists.History.Add(ctx, collections.HistoryDraft{Kind: models.KindText, Input: "a", Output: "b"})
	require.NoError(t, err)

	err = svc.Logout(ctx)
	require.Error(t, err)
	assert.True(t, common.IsStorage(err))

	// user still removed even though history failed
	_, err = svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestAccount_ResetRemovesOnboarding(t *testing.T) {
	st := openStore(t)
	svc, _ := newAccount(t, st)
	ctx := context.Background()

	require.NoError(t, svc.CompleteOnboarding(ctx))
	require.NoError(t, svc.Reset(ctx))

	var marker string
	found, err := st.Get(ctx, store.KeyOnboarding, &marker)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAccount_Stats(t *testing.T) {
	svc, lists := newAccount(t, openStore(t))
	ctx := context.Background()

	for _, k := range []models.Kind{models.KindAudio, models.KindAudio, models.KindText} {
		_, err := lists.History.Add(ctx, collections.HistoryDraft{Kind: k, Input: "i", Output: "o"})
		require.NoError(t, err)
	}
	_, err := lists.Favorites.Add(ctx, collections.FavoriteDraft{Kind: models.KindVideo, Content: "c", Translation: "t"})
	require.NoError(t, err)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	want := Stats{
		Translations: 3,
		Favorites:    1,
		ByKind:       map[models.Kind]int{models.KindAudio: 2, models.KindVideo: 0, models.KindText: 1},
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestAccount_UnlockAdmin(t *testing.T) {
	svc, _ := newAccount(t, openStore(t))

	require.NoError(t, svc.UnlockAdmin("admin123"))
	assert.ErrorIs(t, svc.UnlockAdmin("admin"), common.ErrAdminDenied)

	disabled := NewAccountService(openStore(t), nil, "", logging.Nop())
	assert.ErrorIs(t, disabled.UnlockAdmin(""), common.ErrAdminDenied)
}

func TestGreeting(t *testing.T) {
	day := func(h int) time.Time { return time.Date(2024, 1, 1, h, 0, 0, 0, time.UTC) }
	assert.Equal(t, "Good morning", Greeting(day(6)))
	assert.Equal(t, "Good afternoon", Greeting(day(12)))
	assert.Equal(t, "Good evening", Greeting(day(20)))
}

func TestIsUserFacing(t *testing.T) {
	assert.True(t, IsUserFacing(common.NewValidationError("email", "is required")))
	assert.True(t, IsUserFacing(&common.StorageError{Op: "write", Err: common.ErrQuotaExceeded}))
	assert.True(t, IsUserFacing(common.ErrAdminDenied))
	assert.False(t, IsUserFacing(errors.New("boom")))
}
