// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/zakaut/core"
	"github.com/poiesic/zakaut/storage"
)

// RouteCache implements storage.RouteCache for BadgerDB.
type RouteCache struct {
	backend *Backend
}

var _ storage.RouteCache = (*RouteCache)(nil)

// NewRouteCache creates a new RouteCache.
func NewRouteCache(backend *Backend) storage.RouteCache {
	return &RouteCache{
		backend: backend,
	}
}

// Put stores the route for a document content ID, overwriting any previous
// entry.
func (r *RouteCache) Put(ctx context.Context, docID core.ID, result *core.RouteResult) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRouteKey(docID)
		value, err := storage.MarshalRouteResult(result)
		if err != nil {
			return err
		}
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Get retrieves the cached route for a document content ID.
// Returns nil, nil if no entry exists.
func (r *RouteCache) Get(ctx context.Context, docID core.ID) (*core.RouteResult, error) {
	var result *core.RouteResult
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRouteKey(docID)
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalRouteResult(val)
			return unmarshalErr
		})
	}, false)

	return result, err
}
