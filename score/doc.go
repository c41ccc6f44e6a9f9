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


// Package score implements the text matching pipeline behind rankit:
// normalization, tokenization, token similarity, and per-field scoring.
//
// The pipeline is a chain of pure functions:
//   - Normalize canonicalizes a string (case folding, whitespace
//     trimming, diacritic stripping)
//   - Tokenize splits a normalized string into alphanumeric tokens
//   - TokenSimilarity scores one query token against one field token
//     using exact, prefix, and edit-distance rules
//   - Query compiles a raw query once and scores field values against it
//
// Every function is total over any string input and holds no state, so
// concurrent use requires no synchronization. Score constants live in
// Weights and default to the calibrated values in DefaultWeights.
package score
