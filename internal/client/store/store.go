package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/signon/internal/client/repositories/records"
	"github.com/dmitrijs2005/signon/internal/common"
	"github.com/dmitrijs2005/signon/internal/dbx"
	"github.com/dmitrijs2005/signon/internal/logging"
)

// DefaultQuota mirrors the usual browser local storage allowance.
const DefaultQuota = 5 << 20

// Store is the persisted store contract the rest of the client depends on.
type Store interface {
	// Get decodes the record under key into v. found is false when the key is
	// absent; v is then left untouched.
	Get(ctx context.Context, key Key, v any) (found bool, err error)
	Put(ctx context.Context, key Key, v any) error
	Remove(ctx context.Context, key Key) error
	// Clear removes every key given. See KVStore.Clear for failure semantics.
	Clear(ctx context.Context, keys ...Key) error
	// Reset removes every record, the onboarding marker included.
	Reset(ctx context.Context) error
}

// KVStore implements Store over a records.Repository.
type KVStore struct {
	repo    records.Repository
	db      *sql.DB
	schemas schemaSet
	logger  logging.Logger

	quota  int64
	atomic bool
}

var _ Store = (*KVStore)(nil)

type Option func(*KVStore)

// WithQuota caps the total size of all stored values. Zero or less disables
// the check.
func WithQuota(bytes int64) Option {
	return func(s *KVStore) { s.quota = bytes }
}

// WithAtomicClear makes Clear run in one transaction when the store owns a
// database handle.
func WithAtomicClear(on bool) Option {
	return func(s *KVStore) { s.atomic = on }
}

func WithLogger(l logging.Logger) Option {
	return func(s *KVStore) { s.logger = l }
}

// New builds a store over repo. Clear is always best effort for a store
// built this way since there is no handle to open a transaction on.
func New(repo records.Repository, opts ...Option) (*KVStore, error) {
	schemas, err := loadSchemas()
	if err != nil {
		return nil, err
	}
	s := &KVStore{
		repo:    repo,
		schemas: schemas,
		logger:  logging.Nop(),
		quota:   DefaultQuota,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *KVStore) Get(ctx context.Context, key Key, v any) (bool, error) {
	raw, err := s.repo.Get(ctx, string(key))
	if err != nil {
		return false, &common.StorageError{Op: "read", Key: string(key), Err: err}
	}
	if raw == nil {
		return false, nil
	}
	if err := s.schemas.check(key, raw); err != nil {
		s.logger.Warn(ctx, "record failed schema check", "key", key, "error", err)
		return false, &common.StorageError{Op: "read", Key: string(key), Err: fmt.Errorf("%w: %v", common.ErrCorruptRecord, err)}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, &common.StorageError{Op: "read", Key: string(key), Err: fmt.Errorf("%w: %v", common.ErrCorruptRecord, err)}
	}
	return true, nil
}

func (s *KVStore) Put(ctx context.Context, key Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &common.StorageError{Op: "encode", Key: string(key), Err: err}
	}
	// Never write what Get would refuse to read back.
	if err := s.schemas.check(key, raw); err != nil {
		s.logger.Warn(ctx, "write failed schema check", "key", key, "error", err)
		return &common.StorageError{Op: "encode", Key: string(key), Err: fmt.Errorf("%w: %v", common.ErrInvalidRecord, err)}
	}

	if s.quota > 0 {
		used, err := s.repo.Size(ctx, string(key))
		if err != nil {
			return &common.StorageError{Op: "write", Key: string(key), Err: err}
		}
		if used+int64(len(raw)) > s.quota {
			s.logger.Warn(ctx, "write rejected", "key", key, "size", len(raw), "used", used, "quota", s.quota)
			return &common.StorageError{Op: "write", Key: string(key), Err: common.ErrQuotaExceeded}
		}
	}

	if err := s.repo.Set(ctx, string(key), raw); err != nil {
		s.logger.Warn(ctx, "write failed", "key", key, "error", err)
		return &common.StorageError{Op: "write", Key: string(key), Err: err}
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key Key) error {
	if err := s.repo.Delete(ctx, string(key)); err != nil {
		return &common.StorageError{Op: "remove", Key: string(key), Err: err}
	}
	return nil
}

// Clear removes keys. By default it is best effort: every key is attempted
// and the failures are joined into one StorageError. With WithAtomicClear on
// a database-backed store all keys go in one transaction, so either all are
// removed or none.
func (s *KVStore) Clear(ctx context.Context, keys ...Key) error {
	if s.atomic && s.db != nil {
		return s.ClearAtomic(ctx, keys...)
	}

	var errs []error
	for _, key := range keys {
		if err := s.repo.Delete(ctx, string(key)); err != nil {
			s.logger.Warn(ctx, "remove failed", "key", key, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &common.StorageError{Op: "clear", Err: errors.Join(errs...)}
}

// ClearAtomic removes keys inside a single transaction.
func (s *KVStore) ClearAtomic(ctx context.Context, keys ...Key) error {
	if s.db == nil {
		return &common.StorageError{Op: "clear", Err: errors.New("atomic clear needs a database handle")}
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := records.NewSQLiteRepository(tx)
		for _, key := range keys {
			if err := repo.Delete(ctx, string(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &common.StorageError{Op: "clear", Err: err}
	}
	return nil
}

// Reset removes every record including the onboarding marker, along with
// rows under keys this version no longer knows. It is a single statement, so
// it either removes everything or nothing.
func (s *KVStore) Reset(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "reset failed", "error", err)
		return &common.StorageError{Op: "clear", Err: err}
	}
	return nil
}

// Usage reports the stored size in bytes of each record.
func (s *KVStore) Usage(ctx context.Context) (map[Key]int64, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, &common.StorageError{Op: "read", Err: err}
	}
	out := make(map[Key]int64, len(all))
	for k, v := range all {
		out[Key(k)] = int64(len(v))
	}
	return out, nil
}
