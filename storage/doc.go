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


// Package storage provides the storage abstraction layer for zakaut.
//
// Criteria documents are never persisted; they are loaded fresh for every
// run. What is stored is the byproduct of answering: an append-only audit
// log of answered cases, and a cache of classification results keyed by
// intake content, so a repeated intake does not pay for a second model call.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple storage backend
// implementations:
//
//	cases, err := badger.NewCaseRepository(backend)  // returns storage.CaseRepository
//
// This design decision prioritizes:
//   - Abstraction: Prevents accidental coupling to BadgerDB specifics
//   - Swappability: Easy to add alternative backends (PostgreSQL, in-memory, etc.)
//   - Testing: Consumers can use mock implementations without modification
//
// # Architecture
//
//   - Repository: transaction support and lifecycle shared by repositories
//   - CaseRepository: append-only case records with recency and run lookups
//   - RouteCache: classification results keyed by document content ID
//
// Values are stored as JSON envelopes: case records and routes are
// model-derived audit data, and keeping them readable with standard badger
// tooling outweighs a few bytes of encoding overhead. Index values are
// fixed-width big-endian IDs so key order matches numeric order.
//
// # Usage
//
// Create the stores on one backend:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cases, err := badger.NewCaseRepository(backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cases.Close()
//	defer backend.Close()
//
// Use in tests with in-memory storage:
//
//	cases, routes, backend, err := badger.NewMemoryStores()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
