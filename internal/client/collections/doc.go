// Package collections manages the two persisted lists of the signon client:
// translation history and favorites.
//
// Both lists are stored newest first as a single record each. Every mutation
// reads the current list from the store, changes a copy and writes the whole
// list back before returning; nothing is cached between calls, so a failed
// write leaves callers looking at exactly what is persisted.
//
// Entry ids come from a monotonic ULID generator, so two entries added in the
// same clock tick still get distinct, increasing ids.
package collections
