// Package store is the typed, key-based persisted store of the signon client.
//
// Four records live under fixed keys (see Key): the user, the onboarding
// marker, the history list and the favorites list. Values are JSON encoded in
// full before the backend is touched, so a failed encode never writes. Every
// write replaces the whole record in one upsert.
//
// Reads are validated against embedded JSON schemas; a record that fails
// validation is reported as common.ErrCorruptRecord rather than decoded into a
// half-valid value. Backend failures are returned as *common.StorageError.
//
// Nothing is cached: every Get goes to the backend, so state held by callers
// can never drift from what is persisted.
package store
