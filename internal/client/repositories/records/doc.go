// Package records provides the key/value persistence layer underneath the
// signon store.
//
// Each row of the records table holds one whole JSON document (the user, the
// onboarding marker, the history list or the favorites list) keyed by its
// storage key. A write replaces the row in a single upsert, so per-key writes
// are atomic.
//
// SQLiteRepository works over a dbx.DBTX, so the same code runs against a
// *sql.DB or inside a *sql.Tx.
//
// Typical Usage
//
//	repo := records.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "signOnUser", raw)
//	raw, _ := repo.Get(ctx, "signOnUser") // nil, nil when absent
//	_ = repo.Delete(ctx, "signOnUser")
package records
