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


// Package routing classifies Hebrew intake documents into eligibility
// categories.
//
// The Router asks a classifier to score every allowed category for the
// document, then keeps the categories whose confidence clears a threshold
// (default 0.40), preserving the classifier's order. A repeated intake is
// served from the route cache by its content ID without a second model call.
//
// Classification is deliberately forgiving: if the classifier fails outright
// or produces nothing usable, Route returns the fallback label rather than an
// error, so one flaky model call does not abort a whole pipeline run. Callers
// that need to distinguish the fallback can check RouteResult.Fallback().
//
// Usage:
//
//	router, err := routing.NewRouter(provider.Classifier(),
//	    routing.WithCache(routes),
//	    routing.WithMinConfidence(0.40),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := router.Route(ctx, documentText)
package routing
