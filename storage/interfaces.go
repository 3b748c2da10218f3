package storage

import (
	"context"

	"github.com/poiesic/zakaut/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CaseRepository is the append-only audit log of answered eligibility cases.
// Records are never updated or deleted once written.
type CaseRepository interface {
	Repository

	// AddCase appends a case record. The ID is assigned from a sequence; a
	// zero CreatedAt is stamped with the current UTC time. Returns the record
	// with its assigned ID.
	AddCase(ctx context.Context, record *core.CaseRecord) (*core.CaseRecord, error)

	// GetCase retrieves a single case record by ID.
	// Returns ErrNotFound if no record exists.
	GetCase(ctx context.Context, id core.ID) (*core.CaseRecord, error)

	// RecentCases retrieves the N most recently created case records,
	// newest first.
	RecentCases(ctx context.Context, limit int) ([]*core.CaseRecord, error)

	// CasesByRun retrieves every case record written under a run ID, in
	// insertion order.
	CasesByRun(ctx context.Context, runID string) ([]*core.CaseRecord, error)
}

// RouteCache stores classification results keyed by the content ID of the
// intake document, so a repeated intake skips the classifier call.
type RouteCache interface {
	// Get retrieves the cached route for a document content ID.
	// Returns nil, nil when no entry exists.
	Get(ctx context.Context, docID core.ID) (*core.RouteResult, error)

	// Put stores the route for a document content ID, overwriting any
	// previous entry.
	Put(ctx context.Context, docID core.ID, result *core.RouteResult) error
}
