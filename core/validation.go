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

import (
	"fmt"
	"strings"
)

// IsBlank reports whether text is empty or whitespace-only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// ValidateQueries validates a retrieval query list.
//
// Validation rules:
//   - The list must not be empty
//   - No query may be empty or whitespace-only
//
// Validation is fail-fast: the first offending query is reported by index and
// no partial processing happens.
func ValidateQueries(queries []string) error {
	if len(queries) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrNoQueries)
	}

	for i, q := range queries {
		if IsBlank(q) {
			return fmt.Errorf("%w: %w (query %d)", ErrInvalidQuery, ErrEmptyQuery, i)
		}
	}

	return nil
}

// ValidateDocument validates a single criteria document.
//
// Validation rules:
//   - ID must not be empty or whitespace-only
//   - Content must not be empty or whitespace-only
func ValidateDocument(doc CriteriaDocument) error {
	if IsBlank(doc.ID) {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocumentID)
	}

	if IsBlank(doc.Content) {
		return fmt.Errorf("%w: %w (document %q)", ErrInvalidDocument, ErrEmptyDocumentContent, doc.ID)
	}

	return nil
}

// ValidateDocuments validates a criteria document list.
//
// Validation rules:
//   - The list must not be empty
//   - Every document must pass ValidateDocument
func ValidateDocuments(docs []CriteriaDocument) error {
	if len(docs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNoDocuments)
	}

	for i, doc := range docs {
		if err := ValidateDocument(doc); err != nil {
			return fmt.Errorf("%w (document %d)", err, i)
		}
	}

	return nil
}

// ValidateRetrievalInput validates the full input of a retrieval run.
// It fails fast before any matching work begins.
func ValidateRetrievalInput(queries []string, docs []CriteriaDocument) error {
	if err := ValidateQueries(queries); err != nil {
		return err
	}
	return ValidateDocuments(docs)
}

// ValidateIntake validates free-text intake (patient) input.
func ValidateIntake(text string) error {
	if IsBlank(text) {
		return ErrEmptyIntake
	}
	return nil
}
