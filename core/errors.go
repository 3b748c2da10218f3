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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidQuery indicates a query failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidDocument indicates a criteria document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNoQueries indicates an empty query list was supplied.
	ErrNoQueries = errors.New("query list cannot be empty")

	// ErrNoDocuments indicates an empty document list was supplied.
	ErrNoDocuments = errors.New("document list cannot be empty")

	// ErrEmptyQuery indicates a query is empty or whitespace-only.
	ErrEmptyQuery = errors.New("query cannot be blank")

	// ErrEmptyDocumentID indicates a document identifier is empty or whitespace-only.
	ErrEmptyDocumentID = errors.New("document id cannot be blank")

	// ErrEmptyDocumentContent indicates a document body is empty or whitespace-only.
	ErrEmptyDocumentContent = errors.New("document content cannot be blank")

	// ErrEmptyIntake indicates the intake text is empty or whitespace-only.
	ErrEmptyIntake = errors.New("intake text cannot be blank")

	// ErrUnknownCategory indicates a label could not be resolved to a canonical category.
	ErrUnknownCategory = errors.New("unknown category")
)
