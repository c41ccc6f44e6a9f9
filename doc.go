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


// Package rankit is an in-process fuzzy matching and relevance ranking
// engine for typeahead and filter search over small to medium in-memory
// collections: financial line items, vendors, categories.
//
// Callers supply the items, a free-text query, and an Extractor that
// names the text fields of each item. The engine normalizes and
// tokenizes the query once, scores every named field of every item,
// aggregates to a per-item relevance score in [0, 1], drops items under
// a threshold, and returns the rest ordered by score with input order
// preserved among ties.
//
//	results := rankit.Search(invoices, "gpu server", func(inv Invoice) []rankit.Field {
//	    return []rankit.Field{
//	        rankit.NewField("name", inv.Name),
//	        rankit.OptionalField("vendor", inv.Vendor),
//	    }
//	})
//
// Search and Filter are pure functions: deterministic, total over any
// string input, and free of shared mutable state, so concurrent calls
// need no synchronization. For repeated searches over large
// collections, Ranker binds an extractor and options once and can
// spread per-item scoring across a worker pool without changing any
// result.
//
// The engine has no storage, network, or authorization responsibility;
// feeding it records and rendering its results belong to the caller.
package rankit
