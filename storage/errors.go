package storage

import "errors"

// Sentinel errors shared by every Store implementation, matching the
// teacher's storage/errors.go convention of a small fixed error vocabulary
// wrapped with fmt.Errorf at call sites rather than ad hoc strings.
var (
	// ErrAlreadyExists is returned by a Store* call when proofCID already
	// names a different record. Resubmitting the byte-identical record is
	// treated as a no-op success rather than an error (content-addressing
	// intent honored), but a conflicting resubmission under a reused CID is
	// rejected instead of silently overwritten.
	ErrAlreadyExists = errors.New("proof CID already used")

	// ErrDataMismatch is returned internally when a decoded record fails a
	// structural sanity check (e.g. badger record corruption).
	ErrDataMismatch = errors.New("stored data for key is corrupted")
)
