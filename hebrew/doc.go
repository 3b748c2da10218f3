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


// Package hebrew provides the text primitives for matching Hebrew legal and
// criteria documents.
//
// It covers four concerns:
//   - Normalization: stripping niqqud and collapsing whitespace for matching
//   - Segmentation: splitting document content into paragraphs and sentences
//   - Keyword extraction: turning a free-text query into a stop-word-filtered,
//     order-preserving keyword set
//   - Citation detection: finding section references such as "סעיף 3(א)"
//
// The script-specific tables (diacritic range, separators, stop-words,
// citation pattern) are bundled in an immutable Profile. The package-level
// functions use the built-in Hebrew profile; alternative profiles can be
// compiled from a ProfileConfig or loaded from YAML for other scripts or
// jurisdictions.
package hebrew
