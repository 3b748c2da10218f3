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


// Package corpus loads criteria documents from the filesystem.
//
// Documents are plain .txt or .md files; the file name without its extension
// becomes the document ID used in citations. Files are read concurrently but
// results always come back in input order (name order for LoadDirectory), so
// a corpus loads identically on every run. Documents are held in memory only;
// nothing here persists them.
package corpus
