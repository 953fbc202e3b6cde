package store

import (
	"context"

	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/domain/curriculum"
)

// DefaultListLimit applies when a caller does not specify a limit.
const DefaultListLimit = 100

// MaxListLimit caps a single listing regardless of the requested limit.
// Full-log reads go through ListAllAttemptsByOwner instead.
const MaxListLimit = 1000

// ListFilter narrows an attempt-log listing. The zero value matches all
// records for the owner.
type ListFilter struct {
	Subject *curriculum.Subject
	Correct *bool
}

// Store persists the per-owner attempt log. Records are append-only: the
// only mutation besides insert is the owner-scoped bulk delete. Owner
// scoping is enforced here, in SQL, not left to callers.
type Store interface {
	// AppendAttempt validates rec, assigns it a fresh id and the current
	// time, and persists it. Returns the assigned id.
	AppendAttempt(ctx context.Context, ownerID string, rec *attempt.Record) (string, error)

	// ListAttemptsByOwner returns up to limit records for ownerID,
	// newest first. limit <= 0 means DefaultListLimit; limits above
	// MaxListLimit are clamped.
	ListAttemptsByOwner(ctx context.Context, ownerID string, filter ListFilter, limit int) ([]attempt.Record, error)

	// ListAllAttemptsByOwner returns every record for ownerID in insertion
	// order (oldest first), in a single scan so counts derived from the
	// result are mutually consistent. Feeds the aggregation engine.
	ListAllAttemptsByOwner(ctx context.Context, ownerID string) ([]attempt.Record, error)

	// DeleteAttemptsByOwner removes every record for ownerID in one
	// statement and reports how many were deleted.
	DeleteAttemptsByOwner(ctx context.Context, ownerID string) (int64, error)

	Close() error
}
