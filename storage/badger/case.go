package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/zakaut/core"
	"github.com/poiesic/zakaut/storage"
)

// CaseRepository implements storage.CaseRepository for BadgerDB.
// The case log is append-only: records are never updated or deleted.
type CaseRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.CaseRepository = (*CaseRepository)(nil)

// NewCaseRepository creates a new CaseRepository.
func NewCaseRepository(backend *Backend) (storage.CaseRepository, error) {
	idSeq, err := backend.GetSequence(caseRecordIDSeq)
	if err != nil {
		return nil, err
	}

	return &CaseRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *CaseRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *CaseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddCase appends a case record to the audit log.
func (r *CaseRepository) AddCase(ctx context.Context, record *core.CaseRecord) (*core.CaseRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Always generate new ID from sequence
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		record.Id = core.ID(nextID)

		if record.CreatedAt.IsZero() {
			record.CreatedAt = time.Now().UTC()
		}

		// Store primary record
		key := makeCaseRecordKey(record.Id)
		value, err := storage.MarshalCaseRecord(record)
		if err != nil {
			return err
		}
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Update date index
		dateKey := makeCaseDateKey(record.CreatedAt, record.Id)
		if err := tx.Set(dateKey, storage.MarshalID(record.Id)); err != nil {
			return err
		}

		// Update run index
		if record.RunID != "" {
			runKey := makeCaseRunKey(record.RunID, record.Id)
			if err := tx.Set(runKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}

		return tx.Commit()
	}, true)

	return record, err
}

// GetCase retrieves a single case record by ID.
func (r *CaseRepository) GetCase(ctx context.Context, id core.ID) (*core.CaseRecord, error) {
	var result *core.CaseRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCaseRecordKey(id)
		var err error
		result, err = r.readCaseRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// RecentCases retrieves the N most recently created case records, newest first.
func (r *CaseRepository) RecentCases(ctx context.Context, limit int) ([]*core.CaseRecord, error) {
	var results []*core.CaseRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent records first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makePartialCaseDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		// Prefix for case date index keys
		prefix := []byte(caseRecordDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the case date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeCaseRecordKey(recordID)
			record, err := r.readCaseRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// CasesByRun retrieves every case record written under a run ID, in insertion
// order. Record IDs come from one sequence, so key order is insertion order.
func (r *CaseRepository) CasesByRun(ctx context.Context, runID string) ([]*core.CaseRecord, error) {
	var results []*core.CaseRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialCaseRunKey(runID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			// Check if key still has our runID prefix
			if len(key) < len(startKey) {
				break
			}
			if slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the recordID from the value
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeCaseRecordKey(recordID)
			record, err := r.readCaseRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// readCaseRecord reads a case record from the transaction.
func (r *CaseRepository) readCaseRecord(tx *badger.Txn, key []byte) (*core.CaseRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.CaseRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalCaseRecord(val)
		return unmarshalErr
	})
	return record, err
}
