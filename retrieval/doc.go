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


// Package retrieval matches Hebrew criteria queries against legal/criteria
// documents and returns the best-matching sections with citations.
//
// For each query the Retriever extracts a keyword set, scores every document
// paragraph by counting keyword substring hits against normalized text, and
// keeps each document's best segment (retrying at sentence granularity when no
// paragraph scores above zero). Candidates with a positive score are emitted
// in document order, truncated to a snippet limit, with a section citation
// taken from the segment or from a bounded window around it. A query that
// matches nothing yields a single sentinel record instead.
//
// The engine is read-only over its inputs and fully deterministic: identical
// inputs produce identical output, whether the per-document scans run
// synchronously or fanned out across a worker pool. Per-query results appear
// in input-query order; within a query, candidates keep document order with
// no cross-document re-ranking.
package retrieval
