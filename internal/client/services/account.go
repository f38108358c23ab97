package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/signon/internal/client/collections"
	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/store"
	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/dmitrijs2005/signon/internal/cryptox"
	"github.com/dmitrijs2005/signon/internal/logging"
	"github.com/dmitrijs2005/signon/internal/validation"
	"github.com/google/uuid"
)

// AccountService covers everything that changes the persisted session
// signals, plus read-only profile helpers.
//
// Contract:
//   - every mutating call validates input before touching the store;
//   - a returned error leaves the store as it was, except Logout, which is
//     best effort and reports partial failures;
//   - Logout keeps the onboarding marker, Reset removes it too.
type AccountService interface {
	CompleteOnboarding(ctx context.Context) error
	Login(ctx context.Context, form LoginForm) (*models.User, error)
	SignUp(ctx context.Context, form SignUpForm) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	CompleteProfile(ctx context.Context, p models.Profile) (*models.User, error)
	UpdateProfile(ctx context.Context, p models.Profile) (*models.User, error)
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
	UnlockAdmin(password string) error
}

// Stats summarizes the signed-in user's activity.
type Stats struct {
	Translations int
	Favorites    int
	ByKind       map[models.Kind]int
}

type accountService struct {
	store  store.Store
	lists  *collections.Manager
	logger logging.Logger

	adminSalt     []byte
	adminVerifier []byte
}

// NewAccountService builds an AccountService. An empty adminPassword
// disables admin unlock.
func NewAccountService(st store.Store, lists *collections.Manager, adminPassword string, logger logging.Logger) AccountService {
	s := &accountService{store: st, lists: lists, logger: logger}
	if adminPassword != "" {
		s.adminSalt = common.GenerateRandByteArray(cryptox.SaltSize)
		pw := []byte(adminPassword)
		s.adminVerifier = cryptox.MakeVerifier(cryptox.DeriveKey(pw, s.adminSalt))
		common.WipeByteArray(pw)
	}
	return s
}

func (s *accountService) CompleteOnboarding(ctx context.Context) error {
	if err := s.store.Put(ctx, store.KeyOnboarding, store.OnboardingCompleted); err != nil {
		return err
	}
	s.logger.Info(ctx, "onboarding completed")
	return nil
}

// Login accepts any well-formed credentials and starts a fresh user.
func (s *accountService) Login(ctx context.Context, form LoginForm) (*models.User, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := validation.Struct(form); err != nil {
		return nil, err
	}
	u := &models.User{ID: newUserID(), Name: "User", Email: form.Email}
	if err := s.store.Put(ctx, store.KeyUser, u); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user logged in", "user_id", u.ID)
	return u, nil
}

func (s *accountService) SignUp(ctx context.Context, form SignUpForm) (*models.User, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	if err := validation.Struct(form); err != nil {
		return nil, err
	}
	u := &models.User{ID: newUserID(), Name: form.Name, Email: form.Email, Phone: form.Phone}
	if err := s.store.Put(ctx, store.KeyUser, u); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user signed up", "user_id", u.ID)
	return u, nil
}

func (s *accountService) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	found, err := s.store.Get(ctx, store.KeyUser, &u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.ErrNotAuthenticated
	}
	return &u, nil
}

// CompleteProfile stores the profile and marks it complete.
func (s *accountService) CompleteProfile(ctx context.Context, p models.Profile) (*models.User, error) {
	return s.saveProfile(ctx, p, "profile completed")
}

// UpdateProfile edits an existing profile.
func (s *accountService) UpdateProfile(ctx context.Context, p models.Profile) (*models.User, error) {
	return s.saveProfile(ctx, p, "profile updated")
}

func (s *accountService) saveProfile(ctx context.Context, p models.Profile, msg string) (*models.User, error) {
	p.ISLName = strings.TrimSpace(p.ISLName)
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	u.Profile = p
	u.ProfileComplete = true
	if err := s.store.Put(ctx, store.KeyUser, u); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, msg, "user_id", u.ID)
	return u, nil
}

// Logout removes the user, history and favorites. Each key is attempted even
// if an earlier one fails.
func (s *accountService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx, store.SessionKeys...); err != nil {
		s.logger.Warn(ctx, "logout incomplete", "error", err)
		return err
	}
	s.logger.Info(ctx, "user logged out")
	return nil
}

// Reset removes every record, onboarding marker included.
func (s *accountService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		s.logger.Warn(ctx, "reset failed", "error", err)
		return err
	}
	s.logger.Info(ctx, "local data reset")
	return nil
}

func (s *accountService) Stats(ctx context.Context) (Stats, error) {
	history, err := s.lists.History.List(ctx, collections.Filter{})
	if err != nil {
		return Stats{}, err
	}
	favs, err := s.lists.Favorites.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Translations: len(history), Favorites: favs, ByKind: make(map[models.Kind]int, len(models.Kinds))}
	for _, k := range models.Kinds {
		st.ByKind[k] = 0
	}
	for _, h := range history {
		st.ByKind[h.Kind]++
	}
	return st, nil
}

func (s *accountService) UnlockAdmin(password string) error {
	if s.adminVerifier == nil {
		return fmt.Errorf("%w: admin access disabled", common.ErrAdminDenied)
	}
	pw := []byte(password)
	defer common.WipeByteArray(pw)
	if !cryptox.Verify(pw, s.adminSalt, s.adminVerifier) {
		return common.ErrAdminDenied
	}
	return nil
}

// Greeting picks a salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func newUserID() string {
	return "user_" + uuid.NewString()
}

// IsUserFacing reports whether err should be shown to the user as a notice
// rather than treated as a bug.
func IsUserFacing(err error) bool {
	if _, ok := common.IsValidation(err); ok {
		return true
	}
	return common.IsStorage(err) ||
		errors.Is(err, common.ErrNotAuthenticated) ||
		errors.Is(err, common.ErrAdminDenied) ||
		errors.Is(err, common.ErrNoTranslation)
}
