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


// Package answer composes the final Hebrew eligibility answer from the
// question, the patient's details, and the retrieved criteria sections.
//
// With no sections at all there is nothing to reason over, so Generate
// returns a fixed "cannot determine" answer without calling the model.
// Sentinel (no-match) sections are real sections: they go to the composer,
// whose prompt tells the model to state that the information is missing
// rather than invent a citation.
//
// Unlike routing, a composer failure here is a hard error. A missing answer
// cannot be papered over with a fallback label; the caller decides whether
// to retry.
package answer
