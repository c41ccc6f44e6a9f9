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


package store

import (
	"github.com/poiesic/rankit/catalog"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id catalog.ID) []byte {
	buf := make([]byte, catalog.IDMUS.Size(id))
	catalog.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (catalog.ID, error) {
	id, _, err := catalog.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalLineItem serializes a LineItem to bytes.
func MarshalLineItem(item *catalog.LineItem) []byte {
	buf := make([]byte, catalog.LineItemMUS.Size(*item))
	catalog.LineItemMUS.Marshal(*item, buf)
	return buf
}

// UnmarshalLineItem deserializes a LineItem from bytes.
func UnmarshalLineItem(data []byte) (*catalog.LineItem, error) {
	item, _, err := catalog.LineItemMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
