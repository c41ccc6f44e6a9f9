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


// Package catalog defines the domain model for searchable financial
// records: line items with a name, free-text description, category, and
// vendor. It provides content-based IDs, validation, binary
// serialization, and the canonical field extraction used by the ranking
// engine. The engine itself never depends on this package; the
// dependency runs the other way.
package catalog
